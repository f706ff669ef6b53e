package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID uuid.UUID `json:"patient_id" validate:"required"`
	DoctorID  uuid.UUID `json:"doctor_id" validate:"required"`
	Date      string    `json:"date" validate:"required,date"`
	StartTime string    `json:"start_time" validate:"required,clocktime"`
	EndTime   string    `json:"end_time" validate:"required,clocktime"`
	// Price defaults to the doctor's consultation price when omitted.
	Price  *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
	Reason string           `json:"reason" validate:"omitempty,max=500"`

	// IdempotencyKey is taken from the Idempotency-Key header.
	IdempotencyKey string `json:"-"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=scheduled completed cancelled"`
	Reason *string `json:"reason" validate:"omitempty,max=500"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        uuid.UUID       `json:"id"`
	PatientID uuid.UUID       `json:"patient_id"`
	DoctorID  uuid.UUID       `json:"doctor_id"`
	Date      string          `json:"date"`
	StartTime string          `json:"start_time"`
	EndTime   string          `json:"end_time"`
	Status    string          `json:"status"`
	Price     decimal.Decimal `json:"price"`
	IsPaid    bool            `json:"is_paid"`
	Reason    string          `json:"reason,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type TimeSlotResponse struct {
	ID          string `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsAvailable bool   `json:"is_available"`
}

type TimeSlotListResponse struct {
	DoctorID  uuid.UUID          `json:"doctor_id"`
	Date      string             `json:"date"`
	Slots     []TimeSlotResponse `json:"slots"`
	Available int                `json:"available"`
	Total     int                `json:"total"`
}
