package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliveryhttp "github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/http"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/http/handler"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/http/middleware"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/infrastructure/seed"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/repository/memory"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/service"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/usecase"
	"github.com/borayetkin/Hospital-Management-System-sub001/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.New()
	require.NoError(t, seed.Load(context.Background(), store, log))

	locker := service.NewLocalLocker(log)
	t.Cleanup(locker.Stop)
	guard := service.NewIdempotencyGuard(locker, service.NewLocalIdempotencyStore(), time.Hour, log)
	audit := service.NewAuditService(log)
	v := validator.NewValidator()

	appointments := usecase.NewAppointmentUsecase(store, log, service.DefaultSlotTemplate(), locker, guard, audit, true)
	processes := usecase.NewProcessUsecase(store, log, guard, audit)
	payments := usecase.NewPaymentUsecase(store, log, locker, audit)

	router := deliveryhttp.NewRouter(
		deliveryhttp.Handlers{
			Appointment: handler.NewAppointmentHandler(appointments, v),
			Doctor:      handler.NewDoctorHandler(usecase.NewDoctorUsecase(store, log), v),
			Patient:     handler.NewPatientHandler(usecase.NewPatientUsecase(store, log), payments, v),
			Process:     handler.NewProcessHandler(processes, v),
			Review:      handler.NewReviewHandler(usecase.NewReviewUsecase(store, log, guard, audit), v),
			Resource:    handler.NewResourceHandler(usecase.NewResourceUsecase(store, log, guard, audit), v),
			Medication:  handler.NewMedicationHandler(usecase.NewMedicationUsecase(store, log, audit), v),
			Admin:       handler.NewAdminHandler(usecase.NewAdminUsecase(store, log)),
			Report:      handler.NewReportHandler(usecase.NewReportUsecase(store, log, guard, audit), v),
			AuditLog:    handler.NewAuditLogHandler(usecase.NewAuditLogUsecase(store, log)),
		},
		deliveryhttp.Middlewares{
			CORS:      middleware.NewCORSMiddleware("*"),
			Logging:   middleware.NewLoggingMiddleware(log),
			RateLimit: middleware.NewRateLimitMiddleware(1000, 1000, false),
			Timeout:   middleware.NewTimeoutMiddleware(5 * time.Second),
		},
	)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)
	return server
}

func do(t *testing.T, server *httptest.Server, method, path string, body string, headers map[string]string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func bookingBody(patient, start, end string) string {
	return `{"patient_id":"` + seed.ID(patient).String() + `","doctor_id":"` + seed.ID("d1").String() +
		`","date":"2024-07-15","start_time":"` + start + `","end_time":"` + end + `"}`
}

func TestHealth(t *testing.T) {
	server := newTestServer(t)

	resp, err := server.Client().Get(server.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestBookingOverHTTP(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodPost, "/api/v1/appointments", bookingBody("p1", "10:00", "10:30"), nil)
	require.Equal(t, http.StatusCreated, status, env.Message)
	assert.True(t, env.Success)

	var appointment struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &appointment))
	assert.Equal(t, "scheduled", appointment.Status)

	status, env = do(t, server, http.MethodPost, "/api/v1/appointments", bookingBody("p2", "10:00", "10:30"), nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, env.Success)
	assert.Equal(t, "CONFLICT", env.Error["code"])

	status, env = do(t, server, http.MethodGet, "/api/v1/doctors/"+seed.ID("d1").String()+"/slots?date=2024-07-15", "", nil)
	require.Equal(t, http.StatusOK, status)
	var slots struct {
		Available int `json:"available"`
		Total     int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &slots))
	assert.Equal(t, 9, slots.Available)
	assert.Equal(t, 10, slots.Total)

	status, _ = do(t, server, http.MethodDelete, "/api/v1/appointments/"+appointment.ID, "", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, server, http.MethodPost, "/api/v1/appointments", bookingBody("p2", "10:00", "10:30"), nil)
	assert.Equal(t, http.StatusCreated, status)
}

func TestBookingIdempotencyKeyHeader(t *testing.T) {
	server := newTestServer(t)
	headers := map[string]string{handler.IdempotencyKeyHeader: "abc-123"}

	status, first := do(t, server, http.MethodPost, "/api/v1/appointments", bookingBody("p1", "14:00", "14:30"), headers)
	require.Equal(t, http.StatusCreated, status)
	status, again := do(t, server, http.MethodPost, "/api/v1/appointments", bookingBody("p1", "14:00", "14:30"), headers)
	require.Equal(t, http.StatusCreated, status)

	var a, b struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(first.Data, &a))
	require.NoError(t, json.Unmarshal(again.Data, &b))
	assert.Equal(t, a.ID, b.ID)
}

func TestRequestValidation(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodPost, "/api/v1/appointments", `{"patient_id":"`+seed.ID("p1").String()+`","unknown":1}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", env.Message)

	status, env = do(t, server, http.MethodPost, "/api/v1/appointments", `{"patient_id":"`+seed.ID("p1").String()+`","date":"15-07-2024"}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, env.Error, "date")
	assert.Contains(t, env.Error, "doctor_id")

	status, _ = do(t, server, http.MethodGet, "/api/v1/doctors/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = do(t, server, http.MethodGet, "/api/v1/doctors/"+seed.ID("nobody").String(), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error["code"])

	status, _ = do(t, server, http.MethodGet, "/api/v1/doctors/"+seed.ID("d1").String()+"/slots", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPaymentOverHTTP(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodPost, "/api/v1/appointments", bookingBody("p3", "09:00", "09:30"), nil)
	require.Equal(t, http.StatusCreated, status)
	var appointment struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &appointment))

	// Bob has 250
	status, env = do(t, server, http.MethodPost, "/api/v1/appointments/"+appointment.ID+"/processes", `{"name":"CT scan","price":300}`, nil)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var process struct {
		ID      string `json:"id"`
		Billing struct {
			ID string `json:"id"`
		} `json:"billing"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &process))

	payment := `{"process_id":"` + process.ID + `","billing_id":"` + process.Billing.ID + `"}`
	paymentPath := "/api/v1/patients/" + seed.ID("p3").String() + "/payments"

	status, env = do(t, server, http.MethodPost, paymentPath, payment, nil)
	assert.Equal(t, http.StatusPaymentRequired, status)
	assert.Equal(t, "INSUFFICIENT_FUNDS", env.Error["code"])

	status, _ = do(t, server, http.MethodPost, "/api/v1/patients/"+seed.ID("p3").String()+"/balance", `{"amount":100}`, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = do(t, server, http.MethodPost, paymentPath, payment, nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	var result struct {
		Balance string `json:"balance"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, "50", result.Balance)

	status, env = do(t, server, http.MethodGet, "/api/v1/admin/audit-logs", "", nil)
	require.Equal(t, http.StatusOK, status)
	var logs struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &logs))
	assert.Equal(t, 4, logs.Total)
}

func TestMedicationsOverHTTP(t *testing.T) {
	server := newTestServer(t)

	status, env := do(t, server, http.MethodPost, "/api/v1/appointments", bookingBody("p1", "11:00", "11:30"), nil)
	require.Equal(t, http.StatusCreated, status)
	var appointment struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &appointment))
	medicationsPath := "/api/v1/appointments/" + appointment.ID + "/medications"

	status, env = do(t, server, http.MethodPost, medicationsPath, `{"name":"Aspirin","description":"pain relief"}`, nil)
	require.Equal(t, http.StatusCreated, status, env.Message)
	status, _ = do(t, server, http.MethodPost, medicationsPath, `{"name":"Aspirin"}`, nil)
	assert.Equal(t, http.StatusOK, status)

	status, env = do(t, server, http.MethodPost, medicationsPath, `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error, "name")

	status, env = do(t, server, http.MethodGet, medicationsPath, "", nil)
	require.Equal(t, http.StatusOK, status)
	var prescribed struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &prescribed))
	assert.Equal(t, 1, prescribed.Total)

	status, _ = do(t, server, http.MethodDelete, medicationsPath+"/Aspirin", "", nil)
	assert.Equal(t, http.StatusOK, status)
	status, env = do(t, server, http.MethodDelete, medicationsPath+"/Aspirin", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error["code"])

	status, env = do(t, server, http.MethodGet, "/api/v1/medications", "", nil)
	require.Equal(t, http.StatusOK, status)
	var catalogue struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &catalogue))
	assert.Equal(t, 1, catalogue.Total)
}

func TestReportsOverHTTP(t *testing.T) {
	server := newTestServer(t)
	headers := map[string]string{handler.IdempotencyKeyHeader: "report-abc"}
	body := `{"timeframe":"weekly","start_date":"2024-07-10","end_date":"2024-07-20"}`

	status, env := do(t, server, http.MethodPost, "/api/v1/admin/reports", body, headers)
	require.Equal(t, http.StatusCreated, status, env.Message)
	var report struct {
		ID                string            `json:"id"`
		StartDate         string            `json:"start_date"`
		PatientStatistics []json.RawMessage `json:"patient_statistics"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, "2024-07-10", report.StartDate)
	assert.Len(t, report.PatientStatistics, 3)

	status, env = do(t, server, http.MethodPost, "/api/v1/admin/reports", body, headers)
	require.Equal(t, http.StatusCreated, status)
	var replayed struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &replayed))
	assert.Equal(t, report.ID, replayed.ID)

	status, env = do(t, server, http.MethodPost, "/api/v1/admin/reports", `{"timeframe":"daily"}`, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Error, "timeframe")

	status, env = do(t, server, http.MethodGet, "/api/v1/admin/reports", "", nil)
	require.Equal(t, http.StatusOK, status)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 1, list.Total)

	status, _ = do(t, server, http.MethodGet, "/api/v1/admin/reports/"+report.ID, "", nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = do(t, server, http.MethodGet, "/api/v1/admin/reports/"+seed.ID("nothing").String(), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
