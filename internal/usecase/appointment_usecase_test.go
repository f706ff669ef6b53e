package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTimeSlotsMarksBookedSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, patientJohn, "10:00", "10:30")

	slots, err := f.appointments.GetTimeSlots(ctx, doctorEmma, bookingDate)
	require.NoError(t, err)
	assert.Equal(t, 10, slots.Total)
	assert.Equal(t, 9, slots.Available)

	for _, slot := range slots.Slots {
		if slot.StartTime == "10:00" {
			assert.False(t, slot.IsAvailable, slot.ID)
		} else {
			assert.True(t, slot.IsAvailable, slot.ID)
		}
	}

	// other doctors and other dates are untouched
	other, err := f.appointments.GetTimeSlots(ctx, doctorBrown, bookingDate)
	require.NoError(t, err)
	assert.Equal(t, 10, other.Available)

	nextDay, err := f.appointments.GetTimeSlots(ctx, doctorEmma, "2024-07-16")
	require.NoError(t, err)
	assert.Equal(t, 10, nextDay.Available)
}

func TestGetTimeSlotsErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.appointments.GetTimeSlots(ctx, uuid.New(), bookingDate)
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	_, err = f.appointments.GetTimeSlots(ctx, doctorEmma, "15/07/2024")
	assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)
}

func TestBookAppointmentDefaults(t *testing.T) {
	f := newFixture(t)

	appointment := f.book(t, patientJohn, "9:00", "9:30")

	assert.Equal(t, "09:00", appointment.StartTime)
	assert.Equal(t, "09:30", appointment.EndTime)
	assert.Equal(t, bookingDate, appointment.Date)
	assert.Equal(t, "scheduled", appointment.Status)
	assert.True(t, appointment.Price.Equal(decimal.NewFromInt(150)))
	assert.True(t, appointment.IsPaid)
	assert.Equal(t, "General consultation", appointment.Reason)

	stored, err := f.appointments.GetAppointment(context.Background(), appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, appointment.ID, stored.ID)
}

func TestBookAppointmentSlotTaken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.book(t, patientJohn, "10:00", "10:30")

	_, err := f.appointments.BookAppointment(ctx, bookingRequest(patientAlice, doctorEmma, "10:00", "10:30"))
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.True(t, errors.Is(err, apperror.ErrConflict))
}

func TestCancelledSlotCanBeRebooked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := f.book(t, patientJohn, "10:00", "10:30")

	cancelled, err := f.appointments.CancelAppointment(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)

	_, err = f.appointments.CancelAppointment(ctx, first.ID)
	assert.ErrorIs(t, err, ErrAppointmentAlreadyCancelled)

	second, err := f.appointments.BookAppointment(ctx, bookingRequest(patientAlice, doctorEmma, "10:00", "10:30"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// the first appointment cannot come back while the slot is held again
	status := "scheduled"
	_, err = f.appointments.UpdateAppointment(ctx, first.ID, &dto.UpdateAppointmentRequest{Status: &status})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestBookAppointmentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name string
		req  *dto.CreateAppointmentRequest
		want error
	}{
		{"end before start", bookingRequest(patientJohn, doctorEmma, "10:30", "10:00"), ErrInvalidTimeRange},
		{"lunch break", bookingRequest(patientJohn, doctorEmma, "12:00", "12:30"), ErrSlotNotInSchedule},
		{"off grid", bookingRequest(patientJohn, doctorEmma, "10:15", "10:45"), ErrSlotNotInSchedule},
		{"unknown patient", bookingRequest(uuid.New(), doctorEmma, "10:00", "10:30"), ErrPatientNotFound},
		{"unknown doctor", bookingRequest(patientJohn, uuid.New(), "10:00", "10:30"), ErrDoctorNotFound},
		{"negative price", func() *dto.CreateAppointmentRequest {
			req := bookingRequest(patientJohn, doctorEmma, "10:00", "10:30")
			req.Price = &negative
			return req
		}(), ErrNegativePrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.appointments.BookAppointment(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := f.appointments.BookAppointment(ctx, &dto.CreateAppointmentRequest{
		PatientID: patientJohn, DoctorID: doctorEmma, Date: "2024-13-40", StartTime: "10:00", EndTime: "10:30",
	})
	assert.True(t, errors.Is(err, apperror.ErrValidation), "got %v", err)

	slots, err := f.appointments.GetTimeSlots(ctx, doctorEmma, bookingDate)
	require.NoError(t, err)
	assert.Equal(t, 10, slots.Available)
}

func TestBookAppointmentIdempotencyKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := bookingRequest(patientJohn, doctorEmma, "14:00", "14:30")
	req.IdempotencyKey = "retry-1"

	first, err := f.appointments.BookAppointment(ctx, req)
	require.NoError(t, err)

	again, err := f.appointments.BookAppointment(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	list, err := f.appointments.GetPatientAppointments(ctx, patientJohn)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestConcurrentBookingsOneWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		conflicts atomic.Int32
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			patient := patientJohn
			if i%2 == 1 {
				patient = patientAlice
			}
			_, err := f.appointments.BookAppointment(ctx, bookingRequest(patient, doctorEmma, "11:00", "11:30"))
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, apperror.ErrConflict):
				conflicts.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(19), conflicts.Load())

	list, err := f.appointments.GetDoctorAppointments(ctx, doctorEmma)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}

func TestUpdateAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	appointment := f.book(t, patientJohn, "15:00", "15:30")

	completed := "completed"
	reason := "Follow-up"
	updated, err := f.appointments.UpdateAppointment(ctx, appointment.ID, &dto.UpdateAppointmentRequest{Status: &completed, Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, "Follow-up", updated.Reason)

	bogus := "archived"
	_, err = f.appointments.UpdateAppointment(ctx, appointment.ID, &dto.UpdateAppointmentRequest{Status: &bogus})
	assert.ErrorIs(t, err, ErrInvalidAppointmentStatus)

	_, err = f.appointments.UpdateAppointment(ctx, uuid.New(), &dto.UpdateAppointmentRequest{Reason: &reason})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentListsRequireOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.appointments.GetPatientAppointments(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = f.appointments.GetDoctorAppointments(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotFound)

	empty, err := f.appointments.GetPatientAppointments(ctx, patientAlice)
	require.NoError(t, err)
	assert.NotNil(t, empty.Appointments)
	assert.Zero(t, empty.Total)
}
