package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReviewRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Rating    *float64  `json:"rating" validate:"required,gte=0,lte=5"`
	Comment   string    `json:"comment" validate:"omitempty,max=2000"`

	IdempotencyKey string `json:"-"`
}

// Response DTOs

type ReviewResponse struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	PatientID     uuid.UUID `json:"patient_id"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	Date          string    `json:"date"`
	CreatedAt     time.Time `json:"created_at"`
}

type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	Total         int              `json:"total"`
}
