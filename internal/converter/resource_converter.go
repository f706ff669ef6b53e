package converter

import (
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/delivery/dto"
	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"
)

func ResourceToResponse(resource *entity.MedicalResource) *dto.ResourceResponse {
	if resource == nil {
		return nil
	}

	return &dto.ResourceResponse{
		ID:          resource.ID,
		Name:        resource.Name,
		Type:        resource.Type,
		Department:  resource.Department,
		IsAvailable: resource.IsAvailable,
		Quantity:    resource.Quantity,
	}
}

func ResourcesToResponses(resources []entity.MedicalResource) []dto.ResourceResponse {
	responses := make([]dto.ResourceResponse, len(resources))
	for i := range resources {
		responses[i] = *ResourceToResponse(&resources[i])
	}
	return responses
}

func ReservationToResponse(reservation *entity.ResourceReservation) *dto.ReservationResponse {
	if reservation == nil {
		return nil
	}

	return &dto.ReservationResponse{
		ID:            reservation.ID,
		ResourceID:    reservation.ResourceID,
		RequesterID:   reservation.RequesterID,
		RequesterRole: string(reservation.RequesterRole),
		Date:          reservation.Date,
		StartTime:     reservation.StartTime,
		EndTime:       reservation.EndTime,
		Quantity:      reservation.Quantity,
		Status:        string(reservation.Status),
		CreatedAt:     reservation.CreatedAt,
		UpdatedAt:     reservation.UpdatedAt,
	}
}

func ReservationsToResponses(reservations []entity.ResourceReservation) []dto.ReservationResponse {
	responses := make([]dto.ReservationResponse, len(reservations))
	for i := range reservations {
		responses[i] = *ReservationToResponse(&reservations[i])
	}
	return responses
}
