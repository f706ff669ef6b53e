package http

import (
	"net/http"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/http/handler"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/http/middleware"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Appointment *handler.AppointmentHandler
	Doctor      *handler.DoctorHandler
	Patient     *handler.PatientHandler
	Process     *handler.ProcessHandler
	Review      *handler.ReviewHandler
	Resource    *handler.ResourceHandler
	Medication  *handler.MedicationHandler
	Admin       *handler.AdminHandler
	Report      *handler.ReportHandler
	AuditLog    *handler.AuditLogHandler
}

type Middlewares struct {
	CORS      *middleware.CORSMiddleware
	Logging   *middleware.LoggingMiddleware
	RateLimit *middleware.RateLimitMiddleware
	Timeout   *middleware.TimeoutMiddleware
}

type Router struct {
	router      *mux.Router
	handlers    Handlers
	middlewares Middlewares
}

func NewRouter(handlers Handlers, middlewares Middlewares) *Router {
	return &Router{
		router:      mux.NewRouter(),
		handlers:    handlers,
		middlewares: middlewares,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Doctors
	api.HandleFunc("/doctors", h.Doctor.GetDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", h.Doctor.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/slots", h.Appointment.GetTimeSlots).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/patients", h.Doctor.GetDoctorPatients).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/appointments", h.Appointment.GetDoctorAppointments).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/reviews", h.Review.GetDoctorReviews).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/statistics", h.Doctor.GetDoctorStatistics).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/patients/{patientId}/processes", h.Process.GetDoctorPatientProcesses).Methods(http.MethodGet)

	// Patients
	api.HandleFunc("/patients/{id}", h.Patient.GetPatient).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/doctors", h.Patient.GetPatientDoctors).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/appointments", h.Appointment.GetPatientAppointments).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/processes", h.Process.GetPatientProcesses).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/statistics", h.Patient.GetPatientStatistics).Methods(http.MethodGet)
	api.HandleFunc("/patients/{id}/balance", h.Patient.TopUpBalance).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}/payments", h.Patient.MakePayment).Methods(http.MethodPost)

	// Appointments
	api.HandleFunc("/appointments", h.Appointment.BookAppointment).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", h.Appointment.GetAppointment).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", h.Appointment.UpdateAppointment).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{id}", h.Appointment.CancelAppointment).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/review", h.Review.AddReview).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/processes", h.Process.GetAppointmentProcesses).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/processes", h.Process.AddProcess).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/medications", h.Medication.GetAppointmentMedications).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/medications", h.Medication.PrescribeMedication).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/medications/{name}", h.Medication.RemovePrescription).Methods(http.MethodDelete)

	// Medications
	api.HandleFunc("/medications", h.Medication.ListMedications).Methods(http.MethodGet)

	// Processes and billings
	api.HandleFunc("/processes/{id}/status", h.Process.UpdateProcessStatus).Methods(http.MethodPut)
	api.HandleFunc("/processes/{id}/billing", h.Process.GetProcessBilling).Methods(http.MethodGet)
	api.HandleFunc("/billings/{id}/status", h.Process.UpdateBillingStatus).Methods(http.MethodPut)

	// Resources
	api.HandleFunc("/resources", h.Resource.GetResources).Methods(http.MethodGet)
	api.HandleFunc("/resources/request", h.Resource.RequestResource).Methods(http.MethodPost)
	api.HandleFunc("/resources/{id}/reservations", h.Resource.GetResourceReservations).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id}/status", h.Resource.UpdateReservationStatus).Methods(http.MethodPut)

	// Admin
	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/statistics/appointments", h.Admin.GetAppointmentStatistics).Methods(http.MethodGet)
	admin.HandleFunc("/statistics/revenue", h.Admin.GetRevenueStatistics).Methods(http.MethodGet)
	admin.HandleFunc("/patients", h.Patient.ListPatients).Methods(http.MethodGet)
	admin.HandleFunc("/reports", h.Report.GenerateReport).Methods(http.MethodPost)
	admin.HandleFunc("/reports", h.Report.ListReports).Methods(http.MethodGet)
	admin.HandleFunc("/reports/{id}", h.Report.GetReport).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", h.AuditLog.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	m := r.middlewares
	r.router.Use(m.CORS.Handle)
	r.router.Use(metrics.Middleware)
	r.router.Use(m.Logging.Handle)
	r.router.Use(m.RateLimit.Handle)
	r.router.Use(m.Timeout.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
