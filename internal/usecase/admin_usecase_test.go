package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppointmentStatisticsWindow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	admin := f.admin.(*adminUsecase)
	admin.now = func() time.Time { return time.Date(2024, 7, 20, 12, 0, 0, 0, time.UTC) }

	kept := f.book(t, patientJohn, "09:00", "09:30")
	dropped := f.book(t, patientAlice, "09:30", "10:00")
	_, err := f.appointments.CancelAppointment(ctx, dropped.ID)
	require.NoError(t, err)
	completed := "completed"
	_, err = f.appointments.UpdateAppointment(ctx, kept.ID, &dto.UpdateAppointmentRequest{Status: &completed})
	require.NoError(t, err)
	f.book(t, patientAlice, "10:00", "10:30")

	// outside a week, inside a month
	_, err = f.appointments.BookAppointment(ctx, &dto.CreateAppointmentRequest{
		PatientID: patientJohn, DoctorID: doctorEmma, Date: "2024-07-01", StartTime: "09:00", EndTime: "09:30",
	})
	require.NoError(t, err)

	week, err := f.admin.GetAppointmentStatistics(ctx, "week")
	require.NoError(t, err)
	assert.Equal(t, "2024-07-13", week.StartDate)
	assert.Equal(t, "2024-07-20", week.EndDate)
	assert.Equal(t, 3, week.TotalAppointments)
	assert.Equal(t, 1, week.ScheduledAppointments)
	assert.Equal(t, 1, week.CompletedAppointments)
	assert.Equal(t, 1, week.CancelledAppointments)

	month, err := f.admin.GetAppointmentStatistics(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "month", month.Period)
	assert.Equal(t, 4, month.TotalAppointments)

	_, err = f.admin.GetAppointmentStatistics(ctx, "decade")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestRevenueStatisticsCountsPaidBillings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	appointment := f.book(t, patientJohn, "09:00", "09:30")
	first := f.addProcess(t, appointment.ID, 100)
	second := f.addProcess(t, appointment.ID, 50)
	f.addProcess(t, appointment.ID, 999)

	for _, p := range []*dto.ProcessResponse{first, second} {
		_, err := f.payments.MakePayment(ctx, patientJohn, &dto.PaymentRequest{ProcessID: p.ID, BillingID: p.Billing.ID})
		require.NoError(t, err)
	}

	revenue, err := f.admin.GetRevenueStatistics(ctx, "week")
	require.NoError(t, err)
	assert.Equal(t, 2, revenue.BillingCount)
	assert.True(t, revenue.TotalRevenue.Equal(decimal.NewFromInt(150)), revenue.TotalRevenue.String())
	assert.True(t, revenue.AvgBillingAmount.Equal(decimal.NewFromInt(75)), revenue.AvgBillingAmount.String())

	_, err = f.admin.GetRevenueStatistics(ctx, "fortnight")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestRevenueStatisticsEmpty(t *testing.T) {
	f := newFixture(t)

	revenue, err := f.admin.GetRevenueStatistics(context.Background(), "year")
	require.NoError(t, err)
	assert.Zero(t, revenue.BillingCount)
	assert.True(t, revenue.TotalRevenue.IsZero())
	assert.True(t, revenue.AvgBillingAmount.IsZero())
}
