package usecase

import (
	"context"
	"testing"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPatient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	patient, err := f.patients.GetPatient(ctx, patientJohn)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", patient.Name)
	assert.Equal(t, "patient", patient.Role)
	assert.True(t, patient.Balance.Equal(decimal.NewFromInt(1000)))

	_, err = f.patients.GetPatient(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)

	all, err := f.patients.ListPatients(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)
}

func TestGetPatientDoctorsDistinct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, patientJohn, "09:00", "09:30")
	f.book(t, patientJohn, "09:30", "10:00")
	_, err := f.appointments.BookAppointment(ctx, bookingRequest(patientJohn, doctorBrown, "09:00", "09:30"))
	require.NoError(t, err)

	doctors, err := f.patients.GetPatientDoctors(ctx, patientJohn)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Dr. Emma Smith", "Dr. Michael Brown"}, doctorNames(doctors))

	_, err = f.patients.GetPatientDoctors(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestGetPatientStatistics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.book(t, patientJohn, "09:00", "09:30")
	later, err := f.appointments.BookAppointment(ctx, &dto.CreateAppointmentRequest{
		PatientID: patientJohn, DoctorID: doctorEmma, Date: "2024-07-19", StartTime: "09:00", EndTime: "09:30",
	})
	require.NoError(t, err)

	paid := f.addProcess(t, first.ID, 150)
	f.addProcess(t, later.ID, 75)
	_, err = f.payments.MakePayment(ctx, patientJohn, &dto.PaymentRequest{ProcessID: paid.ID, BillingID: paid.Billing.ID})
	require.NoError(t, err)

	stats, err := f.patients.GetPatientStatistics(ctx, patientJohn)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalAppointments)
	assert.Equal(t, 2, stats.TotalProcesses)
	assert.True(t, stats.TotalPaid.Equal(decimal.NewFromInt(150)), stats.TotalPaid.String())
	assert.Equal(t, "2024-07-19", stats.LastVisit)

	empty, err := f.patients.GetPatientStatistics(ctx, patientAlice)
	require.NoError(t, err)
	assert.Zero(t, empty.TotalAppointments)
	assert.True(t, empty.TotalPaid.IsZero())
	assert.Empty(t, empty.LastVisit)
}
