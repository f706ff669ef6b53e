package dto

import (
	"time"

	"github.com/borayetkin/Hospital-Management-System-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

// GenerateReportRequest selects the window and the records to summarize.
// An empty id list means every record of that kind.
type GenerateReportRequest struct {
	Timeframe   string      `json:"timeframe" validate:"omitempty,oneof=weekly monthly yearly"`
	StartDate   string      `json:"start_date" validate:"omitempty,date"`
	EndDate     string      `json:"end_date" validate:"omitempty,date"`
	PatientIDs  []uuid.UUID `json:"patient_ids"`
	DoctorIDs   []uuid.UUID `json:"doctor_ids"`
	ResourceIDs []uuid.UUID `json:"resource_ids"`

	IdempotencyKey string `json:"-"`
}

// Response DTOs

type ReportResponse struct {
	ID                  uuid.UUID                   `json:"id"`
	Timeframe           string                      `json:"timeframe"`
	StartDate           string                      `json:"start_date"`
	EndDate             string                      `json:"end_date"`
	PatientStatistics   []entity.PatientReportRow   `json:"patient_statistics"`
	DoctorStatistics    []entity.DoctorReportRow    `json:"doctor_statistics"`
	EquipmentStatistics []entity.EquipmentReportRow `json:"equipment_statistics"`
	CreatedAt           time.Time                   `json:"created_at"`
}

type ReportSummaryResponse struct {
	ID             uuid.UUID `json:"id"`
	Timeframe      string    `json:"timeframe"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	PatientCount   int       `json:"patient_count"`
	DoctorCount    int       `json:"doctor_count"`
	EquipmentCount int       `json:"equipment_count"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReportListResponse struct {
	Reports []ReportSummaryResponse `json:"reports"`
	Total   int                     `json:"total"`
}
