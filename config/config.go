package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig
	Store       StoreConfig
	DB          DBConfig
	Redis       RedisConfig
	Lock        LockConfig
	Slot        SlotConfig
	Booking     BookingConfig
	Idempotency IdempotencyConfig
}

type AppConfig struct {
	Port           string
	Env            string
	LogLevel       string
	MetricsPort    string
	RequestTimeout time.Duration
	RateLimitRPS   int
	RateLimitBurst int
	CORSOrigin     string
	TrustProxy     bool // key rate limits on X-Forwarded-For; only behind a proxy that sets it
}

// StoreConfig selects the entity store backend: "memory" or "postgres".
type StoreConfig struct {
	Driver   string
	SeedDemo bool
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// LockConfig selects the slot/balance locker: "local" or "redis".
type LockConfig struct {
	Driver string
	TTL    time.Duration
}

// SlotConfig describes the daily slot template, e.g. "09:00-12:00,14:00-16:00".
type SlotConfig struct {
	Template string
	Duration time.Duration
}

// BookingConfig carries booking policy switches.
type BookingConfig struct {
	MarkPaid bool
}

type IdempotencyConfig struct {
	TTL time.Duration
}

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	LockDriverLocal     = "local"
	LockDriverRedis     = "redis"
)

// LoadConfig reads configuration from an optional .env file and the environment.
// Environment variables take precedence over the file.
func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:           v.GetString("APP_PORT"),
			Env:            v.GetString("APP_ENV"),
			LogLevel:       v.GetString("APP_LOG_LEVEL"),
			MetricsPort:    v.GetString("APP_METRICS_PORT"),
			RequestTimeout: durationOr(v.GetString("APP_REQUEST_TIMEOUT"), 10*time.Second),
			RateLimitRPS:   v.GetInt("APP_RATE_LIMIT_RPS"),
			RateLimitBurst: v.GetInt("APP_RATE_LIMIT_BURST"),
			CORSOrigin:     v.GetString("APP_CORS_ORIGIN"),
		},
		Store: StoreConfig{
			Driver:   strings.ToLower(v.GetString("STORE_DRIVER")),
			SeedDemo: v.GetBool("STORE_SEED_DEMO"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Lock: LockConfig{
			Driver: strings.ToLower(v.GetString("LOCK_DRIVER")),
			TTL:    durationOr(v.GetString("LOCK_TTL"), 10*time.Second),
		},
		Slot: SlotConfig{
			Template: v.GetString("SLOT_TEMPLATE"),
			Duration: durationOr(v.GetString("SLOT_DURATION"), 30*time.Minute),
		},
		Booking: BookingConfig{
			MarkPaid: v.GetBool("BOOKING_MARK_PAID"),
		},
		Idempotency: IdempotencyConfig{
			TTL: durationOr(v.GetString("IDEMPOTENCY_TTL"), 24*time.Hour),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects driver names the bootstrap cannot wire.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverPostgres:
	default:
		return errors.New("STORE_DRIVER must be memory or postgres")
	}
	switch c.Lock.Driver {
	case LockDriverLocal, LockDriverRedis:
	default:
		return errors.New("LOCK_DRIVER must be local or redis")
	}
	return nil
}

// NeedsRedis reports whether any configured component talks to Redis.
func (c *Config) NeedsRedis() bool {
	return c.Lock.Driver == LockDriverRedis
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_LOG_LEVEL", "info")
	v.SetDefault("APP_METRICS_PORT", "9090")
	v.SetDefault("APP_RATE_LIMIT_RPS", 50)
	v.SetDefault("APP_RATE_LIMIT_BURST", 100)
	v.SetDefault("APP_CORS_ORIGIN", "*")
	v.SetDefault("APP_TRUST_PROXY", false)
	v.SetDefault("STORE_DRIVER", StoreDriverMemory)
	v.SetDefault("STORE_SEED_DEMO", true)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("LOCK_DRIVER", LockDriverLocal)
	v.SetDefault("SLOT_TEMPLATE", "09:00-12:00,14:00-16:00")
	v.SetDefault("BOOKING_MARK_PAID", true)
}

func durationOr(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
