package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// DoctorFilterRequest carries the optional GET /doctors query parameters.
type DoctorFilterRequest struct {
	Specialization string
	MinRating      *float64         `validate:"omitempty,gte=0,lte=5"`
	MaxPrice       *decimal.Decimal `validate:"omitempty,gte=0"`
	// AvailableDay is a weekday name or a YYYY-MM-DD date.
	AvailableDay string
}

// Response DTOs

type DoctorResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	Role           string          `json:"role"`
	Specialization string          `json:"specialization"`
	Rating         float64         `json:"rating"`
	Experience     int             `json:"experience"`
	Bio            string          `json:"bio,omitempty"`
	AvailableDays  []string        `json:"available_days"`
	Price          decimal.Decimal `json:"price"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type DoctorStatisticsResponse struct {
	DoctorID              uuid.UUID       `json:"doctor_id"`
	AppointmentCount      int             `json:"appointment_count"`
	CompletedAppointments int             `json:"completed_appointments"`
	CancelledAppointments int             `json:"cancelled_appointments"`
	AverageRating         float64         `json:"average_rating"`
	ReviewCount           int             `json:"review_count"`
	TotalRevenue          decimal.Decimal `json:"total_revenue"`
	ReportDate            string          `json:"report_date"`
}
