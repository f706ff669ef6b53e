package usecase

import (
	"context"
	"testing"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationRequest(resourceID uuid.UUID, quantity int) *dto.CreateReservationRequest {
	return &dto.CreateReservationRequest{
		ResourceID:    resourceID,
		RequesterID:   doctorEmma,
		RequesterRole: "doctor",
		Date:          bookingDate,
		StartTime:     "9:00",
		EndTime:       "11:00",
		Quantity:      quantity,
	}
}

func TestGetResourcesFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	all, err := f.resources.GetResources(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Total)

	available, err := f.resources.GetResources(ctx, &dto.ResourceFilterRequest{AvailableOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 2, available.Total)

	icu, err := f.resources.GetResources(ctx, &dto.ResourceFilterRequest{Department: "ICU"})
	require.NoError(t, err)
	require.Equal(t, 1, icu.Total)
	assert.Equal(t, "Ventilator", icu.Resources[0].Name)

	imaging, err := f.resources.GetResources(ctx, &dto.ResourceFilterRequest{Type: "Imaging"})
	require.NoError(t, err)
	assert.Equal(t, 1, imaging.Total)
}

func TestRequestResource(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	reservation, err := f.resources.RequestResource(ctx, reservationRequest(resourceVent, 2))
	require.NoError(t, err)
	assert.Equal(t, "pending", reservation.Status)
	assert.Equal(t, "09:00", reservation.StartTime)
	assert.Equal(t, "doctor", reservation.RequesterRole)

	// overlapping requests are accepted
	_, err = f.resources.RequestResource(ctx, reservationRequest(resourceVent, 5))
	require.NoError(t, err)

	list, err := f.resources.GetResourceReservations(ctx, resourceVent)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}

func TestRequestResourceRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	patientRole := reservationRequest(resourceVent, 1)
	patientRole.RequesterRole = "patient"
	backwards := reservationRequest(resourceVent, 1)
	backwards.StartTime, backwards.EndTime = "11:00", "09:00"

	tests := []struct {
		name string
		req  *dto.CreateReservationRequest
		want error
	}{
		{"patient requester", patientRole, ErrInvalidRequesterRole},
		{"end before start", backwards, ErrInvalidTimeRange},
		{"unknown resource", reservationRequest(uuid.New(), 1), ErrResourceNotFound},
		{"unavailable resource", reservationRequest(resourceKit, 1), ErrResourceUnavailable},
		{"too many", reservationRequest(resourceMRI, 2), ErrInvalidQuantity},
		{"zero", reservationRequest(resourceVent, 0), ErrInvalidQuantity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.resources.RequestResource(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := f.resources.GetResourceReservations(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestUpdateReservationStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := reservationRequest(resourceMRI, 1)
	req.RequesterID, req.RequesterRole = staffNina, "staff"
	reservation, err := f.resources.RequestResource(ctx, req)
	require.NoError(t, err)

	_, err = f.resources.UpdateReservationStatus(ctx, reservation.ID, &dto.UpdateReservationStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidReservationStatus)

	approved, err := f.resources.UpdateReservationStatus(ctx, reservation.ID, &dto.UpdateReservationStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "approved", approved.Status)

	_, err = f.resources.UpdateReservationStatus(ctx, reservation.ID, &dto.UpdateReservationStatusRequest{Status: "rejected"})
	assert.ErrorIs(t, err, ErrReservationAlreadyDecided)

	_, err = f.resources.UpdateReservationStatus(ctx, uuid.New(), &dto.UpdateReservationStatusRequest{Status: "approved"})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRequestResourceIdempotencyKey(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := reservationRequest(resourceVent, 1)
	req.IdempotencyKey = "res-1"
	first, err := f.resources.RequestResource(ctx, req)
	require.NoError(t, err)
	again, err := f.resources.RequestResource(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	list, err := f.resources.GetResourceReservations(ctx, resourceVent)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
}
