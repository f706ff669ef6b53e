package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateProcessRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=255"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price" validate:"gte=0"`

	IdempotencyKey string `json:"-"`
}

type UpdateProcessStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled"`
}

type UpdateBillingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending paid overdue"`
}

type PaymentRequest struct {
	ProcessID uuid.UUID `json:"process_id" validate:"required"`
	BillingID uuid.UUID `json:"billing_id" validate:"required"`
}

// Response DTOs

type ProcessResponse struct {
	ID            uuid.UUID        `json:"id"`
	AppointmentID uuid.UUID        `json:"appointment_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	Status        string           `json:"status"`
	Date          string           `json:"date"`
	Billing       *BillingResponse `json:"billing,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

type ProcessListResponse struct {
	Processes []ProcessResponse `json:"processes"`
	Total     int               `json:"total"`
}

type BillingResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProcessID uuid.UUID       `json:"process_id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type PaymentResponse struct {
	Success       bool            `json:"success"`
	PatientID     uuid.UUID       `json:"patient_id"`
	ProcessID     uuid.UUID       `json:"process_id"`
	BillingID     uuid.UUID       `json:"billing_id"`
	AmountCharged decimal.Decimal `json:"amount_charged"`
	Balance       decimal.Decimal `json:"balance"`
}
