package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/config"
	deliveryHttp "github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/http"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/http/handler"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/http/middleware"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/repository"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/infrastructure/cache"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/infrastructure/database"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/infrastructure/metrics"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/infrastructure/seed"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/repository/memory"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/repository/postgres"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/service"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/usecase"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config        *config.Config
	Log           *logrus.Logger
	DB            *gorm.DB
	RedisClient   *redis.Client
	Store         repository.Store
	Handler       http.Handler
	Server        *http.Server
	MetricsServer *http.Server

	localLocker *service.LocalLocker
}

// New loads configuration from the environment and wires the application.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(ctx, cfg)
}

// NewWithConfig wires every layer for cfg. On error everything opened so far
// is closed again.
func NewWithConfig(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	app.Log = NewLogger(cfg.App)
	app.Log.Info("Configuration loaded successfully")

	if err := app.initStore(); err != nil {
		app.Close()
		return nil, err
	}

	if cfg.NeedsRedis() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, app.Log)
		if err != nil {
			app.Close()
			return nil, err
		}
		app.RedisClient = redisClient
	}

	if cfg.Store.SeedDemo {
		if err := seed.Load(ctx, app.Store, app.Log); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	httpHandler, err := app.initHandler()
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Handler = httpHandler

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", metrics.Handler())
	app.MetricsServer = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.MetricsPort),
		Handler:           metricsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return app, nil
}

// NewLogger configures a JSON logrus logger at the configured level.
func NewLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

func (app *App) initStore() error {
	switch app.Config.Store.Driver {
	case config.StoreDriverPostgres:
		if err := Migrate(app.Config.DB, app.Log, func(m *database.Migrator) error { return m.Up() }); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		db, err := database.NewPostgresConnection(app.Config.DB, app.Log)
		if err != nil {
			return err
		}
		app.DB = db
		app.Store = postgres.NewStore(db)
	default:
		app.Store = memory.New()
		app.Log.Info("Using in-memory store")
	}
	return nil
}

func (app *App) initHandler() (http.Handler, error) {
	cfg := app.Config
	log := app.Log

	slots, err := service.ParseSlotTemplate(cfg.Slot.Template, cfg.Slot.Duration)
	if err != nil {
		return nil, fmt.Errorf("invalid slot template %q: %w", cfg.Slot.Template, err)
	}

	// Initialize coordination
	var (
		locker           service.Locker
		idempotencyStore service.IdempotencyStore
	)
	if cfg.Lock.Driver == config.LockDriverRedis {
		locker = service.NewRedisLocker(app.RedisClient, log, cfg.Lock.TTL)
		idempotencyStore = service.NewRedisIdempotencyStore(app.RedisClient)
	} else {
		app.localLocker = service.NewLocalLocker(log)
		locker = app.localLocker
		idempotencyStore = service.NewLocalIdempotencyStore()
	}
	idempotency := service.NewIdempotencyGuard(locker, idempotencyStore, cfg.Idempotency.TTL, log)
	auditService := service.NewAuditService(log)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	store := app.Store
	appointmentUsecase := usecase.NewAppointmentUsecase(store, log, slots, locker, idempotency, auditService, cfg.Booking.MarkPaid)
	processUsecase := usecase.NewProcessUsecase(store, log, idempotency, auditService)
	paymentUsecase := usecase.NewPaymentUsecase(store, log, locker, auditService)
	reviewUsecase := usecase.NewReviewUsecase(store, log, idempotency, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(store, log)
	patientUsecase := usecase.NewPatientUsecase(store, log)
	resourceUsecase := usecase.NewResourceUsecase(store, log, idempotency, auditService)
	medicationUsecase := usecase.NewMedicationUsecase(store, log, auditService)
	adminUsecase := usecase.NewAdminUsecase(store, log)
	reportUsecase := usecase.NewReportUsecase(store, log, idempotency, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(store, log)

	// Initialize router
	router := deliveryHttp.NewRouter(
		deliveryHttp.Handlers{
			Appointment: handler.NewAppointmentHandler(appointmentUsecase, customValidator),
			Doctor:      handler.NewDoctorHandler(doctorUsecase, customValidator),
			Patient:     handler.NewPatientHandler(patientUsecase, paymentUsecase, customValidator),
			Process:     handler.NewProcessHandler(processUsecase, customValidator),
			Review:      handler.NewReviewHandler(reviewUsecase, customValidator),
			Resource:    handler.NewResourceHandler(resourceUsecase, customValidator),
			Medication:  handler.NewMedicationHandler(medicationUsecase, customValidator),
			Admin:       handler.NewAdminHandler(adminUsecase),
			Report:      handler.NewReportHandler(reportUsecase, customValidator),
			AuditLog:    handler.NewAuditLogHandler(auditLogUsecase),
		},
		deliveryHttp.Middlewares{
			CORS:      middleware.NewCORSMiddleware(cfg.App.CORSOrigin),
			Logging:   middleware.NewLoggingMiddleware(log),
			RateLimit: middleware.NewRateLimitMiddleware(cfg.App.RateLimitRPS, cfg.App.RateLimitBurst, cfg.App.TrustProxy),
			Timeout:   middleware.NewTimeoutMiddleware(cfg.App.RequestTimeout),
		},
	)
	return router.Setup(), nil
}

// Run serves the API and metrics until ctx is cancelled or a server fails,
// then shuts both down gracefully.
func (app *App) Run(ctx context.Context) error {
	defer app.Close()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		return serve(app.Server)
	})
	g.Go(func() error {
		app.Log.Infof("Metrics server starting on port %s", app.Config.App.MetricsPort)
		return serve(app.MetricsServer)
	})
	g.Go(func() error {
		<-gctx.Done()
		app.Log.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return errors.Join(
			app.Server.Shutdown(shutdownCtx),
			app.MetricsServer.Shutdown(shutdownCtx),
		)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	app.Log.Info("Server shutdown complete")
	return nil
}

func serve(server *http.Server) error {
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server on %s failed: %w", server.Addr, err)
	}
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.localLocker != nil {
		app.localLocker.Stop()
		app.localLocker = nil
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
		app.DB = nil
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
		app.RedisClient = nil
	}
}

// Migrate opens a migrator for cfg, runs fn and closes it.
func Migrate(cfg config.DBConfig, log *logrus.Logger, fn func(m *database.Migrator) error) error {
	migrator, err := database.NewMigrator(database.MigrationURL(cfg), log)
	if err != nil {
		return err
	}
	defer func() {
		if err := migrator.Close(); err != nil {
			log.Warnf("Failed to close migrator: %+v", err)
		}
	}()
	return fn(migrator)
}
