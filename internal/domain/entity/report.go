package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportTimeframe string

const (
	TimeframeWeekly  ReportTimeframe = "weekly"
	TimeframeMonthly ReportTimeframe = "monthly"
	TimeframeYearly  ReportTimeframe = "yearly"
)

// Period maps the timeframe onto the admin statistics window.
func (t ReportTimeframe) Period() StatisticsPeriod {
	switch t {
	case TimeframeWeekly:
		return PeriodWeek
	case TimeframeMonthly:
		return PeriodMonth
	case TimeframeYearly:
		return PeriodYear
	}
	return ""
}

// Report is a stored snapshot of patient, doctor and equipment activity
// between StartDate and EndDate inclusive. It is never updated.
type Report struct {
	ID                  uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	Timeframe           ReportTimeframe      `gorm:"type:varchar(20);not null" json:"timeframe"`
	StartDate           string               `gorm:"type:varchar(10);not null" json:"start_date"`
	EndDate             string               `gorm:"type:varchar(10);not null" json:"end_date"`
	PatientStatistics   []PatientReportRow   `gorm:"type:jsonb;serializer:json" json:"patient_statistics"`
	DoctorStatistics    []DoctorReportRow    `gorm:"type:jsonb;serializer:json" json:"doctor_statistics"`
	EquipmentStatistics []EquipmentReportRow `gorm:"type:jsonb;serializer:json" json:"equipment_statistics"`
	CreatedAt           time.Time            `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Report) TableName() string {
	return "reports"
}

// Clone copies the row slices so the copy can be handed out safely.
func (r Report) Clone() Report {
	r.PatientStatistics = slices.Clone(r.PatientStatistics)
	r.DoctorStatistics = slices.Clone(r.DoctorStatistics)
	r.EquipmentStatistics = slices.Clone(r.EquipmentStatistics)
	return r
}

type PatientReportRow struct {
	PatientID         uuid.UUID       `json:"patient_id"`
	PatientName       string          `json:"patient_name"`
	TotalAppointments int             `json:"total_appointments"`
	TotalProcesses    int             `json:"total_processes"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	LastVisit         string          `json:"last_visit,omitempty"`
}

type DoctorReportRow struct {
	DoctorID          uuid.UUID       `json:"doctor_id"`
	DoctorName        string          `json:"doctor_name"`
	AppointmentCount  int             `json:"appointment_count"`
	PrescriptionCount int             `json:"prescription_count"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageRating     float64         `json:"average_rating"`
}

type EquipmentReportRow struct {
	ResourceID    uuid.UUID `json:"resource_id"`
	ResourceName  string    `json:"resource_name"`
	UsageCount    int       `json:"usage_count"` // distinct requesters
	TotalRequests int       `json:"total_requests"`
	LastUsedDate  string    `json:"last_used_date,omitempty"`
}
