package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doctorNames(list *dto.DoctorListResponse) []string {
	names := make([]string, len(list.Doctors))
	for i, d := range list.Doctors {
		names[i] = d.Name
	}
	return names
}

func TestGetDoctorsFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rating := func(v float64) *float64 { return &v }
	price := func(v int64) *decimal.Decimal { d := decimal.NewFromInt(v); return &d }

	tests := []struct {
		name string
		req  *dto.DoctorFilterRequest
		want []string
	}{
		{"no filter", &dto.DoctorFilterRequest{}, []string{"Dr. Emma Smith", "Dr. Michael Brown", "Dr. Sarah Lee"}},
		{"specialization", &dto.DoctorFilterRequest{Specialization: "Neurology"}, []string{"Dr. Michael Brown"}},
		{"min rating", &dto.DoctorFilterRequest{MinRating: rating(4.8)}, []string{"Dr. Emma Smith", "Dr. Sarah Lee"}},
		{"max price", &dto.DoctorFilterRequest{MaxPrice: price(150)}, []string{"Dr. Emma Smith", "Dr. Sarah Lee"}},
		{"weekday name", &dto.DoctorFilterRequest{AvailableDay: "thursday"}, []string{"Dr. Michael Brown"}},
		{"date", &dto.DoctorFilterRequest{AvailableDay: bookingDate}, []string{"Dr. Emma Smith", "Dr. Sarah Lee"}},
		{"combined", &dto.DoctorFilterRequest{MinRating: rating(4.6), MaxPrice: price(130), AvailableDay: "Monday"}, []string{"Dr. Sarah Lee"}},
		{"no match", &dto.DoctorFilterRequest{Specialization: "Dermatology"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, err := f.doctors.GetDoctors(ctx, tt.req)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, doctorNames(list))
			assert.Equal(t, len(tt.want), list.Total)
		})
	}
}

func TestGetDoctorsRejectsBadFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tooHigh := 6.0
	negative := decimal.NewFromInt(-5)

	_, err := f.doctors.GetDoctors(ctx, &dto.DoctorFilterRequest{MinRating: &tooHigh})
	assert.ErrorIs(t, err, ErrInvalidDoctorFilter)

	_, err = f.doctors.GetDoctors(ctx, &dto.DoctorFilterRequest{MaxPrice: &negative})
	assert.ErrorIs(t, err, ErrInvalidDoctorFilter)

	_, err = f.doctors.GetDoctors(ctx, &dto.DoctorFilterRequest{AvailableDay: "someday"})
	assert.ErrorIs(t, err, ErrInvalidAvailableDay)
}

func TestGetDoctor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doctor, err := f.doctors.GetDoctor(ctx, doctorEmma)
	require.NoError(t, err)
	assert.Equal(t, "Cardiology", doctor.Specialization)
	assert.Equal(t, "doctor", doctor.Role)
	assert.True(t, doctor.Price.Equal(decimal.NewFromInt(150)))

	_, err = f.doctors.GetDoctor(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestGetDoctorPatientsDistinct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, patientJohn, "09:00", "09:30")
	f.book(t, patientJohn, "09:30", "10:00")
	f.book(t, patientAlice, "10:00", "10:30")

	patients, err := f.doctors.GetDoctorPatients(ctx, doctorEmma)
	require.NoError(t, err)
	assert.Equal(t, 2, patients.Total)

	none, err := f.doctors.GetDoctorPatients(ctx, doctorBrown)
	require.NoError(t, err)
	assert.Zero(t, none.Total)
	assert.NotNil(t, none.Patients)
}

func TestGetDoctorStatistics(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.doctors.(*doctorUsecase).now = func() time.Time { return time.Date(2024, 7, 20, 9, 0, 0, 0, time.UTC) }

	done := f.book(t, patientJohn, "09:00", "09:30")
	dropped := f.book(t, patientAlice, "09:30", "10:00")
	f.book(t, patientAlice, "10:00", "10:30")

	completed := "completed"
	_, err := f.appointments.UpdateAppointment(ctx, done.ID, &dto.UpdateAppointmentRequest{Status: &completed})
	require.NoError(t, err)
	_, err = f.appointments.CancelAppointment(ctx, dropped.ID)
	require.NoError(t, err)

	paid := f.addProcess(t, done.ID, 150)
	f.addProcess(t, done.ID, 40)
	_, err = f.payments.MakePayment(ctx, patientJohn, &dto.PaymentRequest{ProcessID: paid.ID, BillingID: paid.Billing.ID})
	require.NoError(t, err)

	for _, r := range []float64{4, 5} {
		rating := r
		_, err := f.reviews.AddReview(ctx, done.ID, &dto.CreateReviewRequest{PatientID: patientJohn, DoctorID: doctorEmma, Rating: &rating})
		require.NoError(t, err)
	}

	stats, err := f.doctors.GetDoctorStatistics(ctx, doctorEmma)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.AppointmentCount)
	assert.Equal(t, 1, stats.CompletedAppointments)
	assert.Equal(t, 1, stats.CancelledAppointments)
	assert.Equal(t, 2, stats.ReviewCount)
	assert.InDelta(t, 4.5, stats.AverageRating, 1e-9)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(150)), stats.TotalRevenue.String())
	assert.Equal(t, "2024-07-20", stats.ReportDate)

	_, err = f.doctors.GetDoctorStatistics(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

// ticking returns a clock that moves forward a millisecond per call.
func ticking(start time.Time) func() time.Time {
	var n int64
	return func() time.Time {
		n++
		return start.Add(time.Duration(n) * time.Millisecond)
	}
}

func TestQueriesRepeatOverUnchangedStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	start := time.Date(2024, 7, 20, 9, 0, 0, 0, time.UTC)
	f.doctors.(*doctorUsecase).now = ticking(start)
	f.patients.(*patientUsecase).now = ticking(start)

	done := f.book(t, patientJohn, "09:00", "09:30")
	paid := f.addProcess(t, done.ID, 150)
	_, err := f.payments.MakePayment(ctx, patientJohn, &dto.PaymentRequest{ProcessID: paid.ID, BillingID: paid.Billing.ID})
	require.NoError(t, err)

	minRating := 4.6
	filter := &dto.DoctorFilterRequest{MinRating: &minRating}
	firstDoctors, err := f.doctors.GetDoctors(ctx, filter)
	require.NoError(t, err)
	secondDoctors, err := f.doctors.GetDoctors(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, firstDoctors, secondDoctors)

	firstPatient, err := f.patients.GetPatientStatistics(ctx, patientJohn)
	require.NoError(t, err)
	secondPatient, err := f.patients.GetPatientStatistics(ctx, patientJohn)
	require.NoError(t, err)
	assert.Equal(t, firstPatient, secondPatient)

	firstDoctor, err := f.doctors.GetDoctorStatistics(ctx, doctorEmma)
	require.NoError(t, err)
	secondDoctor, err := f.doctors.GetDoctorStatistics(ctx, doctorEmma)
	require.NoError(t, err)
	assert.Equal(t, firstDoctor, secondDoctor)
}
