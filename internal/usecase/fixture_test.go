package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/infrastructure/seed"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/repository/memory"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// Monday; Dr. Emma Smith (d1) works that day.
const bookingDate = "2024-07-15"

var (
	patientJohn  = seed.ID("p1")
	patientAlice = seed.ID("p2")
	doctorEmma   = seed.ID("d1")
	doctorBrown  = seed.ID("d2")
	staffNina    = seed.ID("s1")
	resourceMRI  = seed.ID("r1")
	resourceVent = seed.ID("r2")
	resourceKit  = seed.ID("r3")
)

type fixture struct {
	store        *memory.Store
	appointments AppointmentUsecase
	processes    ProcessUsecase
	payments     PaymentUsecase
	doctors      DoctorUsecase
	patients     PatientUsecase
	reviews      ReviewUsecase
	resources    ResourceUsecase
	medications  MedicationUsecase
	admin        AdminUsecase
	reports      ReportUsecase
	auditLogs    AuditLogUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.New()
	require.NoError(t, seed.Load(context.Background(), store, log))

	locker := service.NewLocalLocker(log)
	t.Cleanup(locker.Stop)

	guard := service.NewIdempotencyGuard(locker, service.NewLocalIdempotencyStore(), time.Hour, log)
	audit := service.NewAuditService(log)

	return &fixture{
		store:        store,
		appointments: NewAppointmentUsecase(store, log, service.DefaultSlotTemplate(), locker, guard, audit, true),
		processes:    NewProcessUsecase(store, log, guard, audit),
		payments:     NewPaymentUsecase(store, log, locker, audit),
		doctors:      NewDoctorUsecase(store, log),
		patients:     NewPatientUsecase(store, log),
		reviews:      NewReviewUsecase(store, log, guard, audit),
		resources:    NewResourceUsecase(store, log, guard, audit),
		medications:  NewMedicationUsecase(store, log, audit),
		admin:        NewAdminUsecase(store, log),
		reports:      NewReportUsecase(store, log, guard, audit),
		auditLogs:    NewAuditLogUsecase(store, log),
	}
}

func bookingRequest(patientID, doctorID uuid.UUID, start, end string) *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      bookingDate,
		StartTime: start,
		EndTime:   end,
	}
}

func (f *fixture) book(t *testing.T, patientID uuid.UUID, start, end string) *dto.AppointmentResponse {
	t.Helper()
	appointment, err := f.appointments.BookAppointment(context.Background(), bookingRequest(patientID, doctorEmma, start, end))
	require.NoError(t, err)
	return appointment
}
