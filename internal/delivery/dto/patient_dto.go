package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type TopUpBalanceRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"gt=0"`
}

// Response DTOs

type PatientResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Balance     decimal.Decimal `json:"balance"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}

type PatientStatisticsResponse struct {
	PatientID         uuid.UUID       `json:"patient_id"`
	TotalAppointments int             `json:"total_appointments"`
	TotalProcesses    int             `json:"total_processes"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	LastVisit         string          `json:"last_visit,omitempty"`
	ReportDate        string          `json:"report_date"`
}
