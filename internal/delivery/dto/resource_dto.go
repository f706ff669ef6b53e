package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type ResourceFilterRequest struct {
	Type          string
	Department    string
	AvailableOnly bool
}

type CreateReservationRequest struct {
	ResourceID    uuid.UUID `json:"resource_id" validate:"required"`
	RequesterID   uuid.UUID `json:"requester_id" validate:"required"`
	RequesterRole string    `json:"requester_role" validate:"required,oneof=doctor staff"`
	Date          string    `json:"date" validate:"required,date"`
	StartTime     string    `json:"start_time" validate:"required,clocktime"`
	EndTime       string    `json:"end_time" validate:"required,clocktime"`
	Quantity      int       `json:"quantity" validate:"required,min=1"`

	IdempotencyKey string `json:"-"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
}

// Response DTOs

type ResourceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Department  string    `json:"department"`
	IsAvailable bool      `json:"is_available"`
	Quantity    int       `json:"quantity"`
}

type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
	Total     int                `json:"total"`
}

type ReservationResponse struct {
	ID            uuid.UUID `json:"id"`
	ResourceID    uuid.UUID `json:"resource_id"`
	RequesterID   uuid.UUID `json:"requester_id"`
	RequesterRole string    `json:"requester_role"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	Quantity      int       `json:"quantity"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}
