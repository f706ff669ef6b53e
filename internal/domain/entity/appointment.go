package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is a known appointment status.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// DefaultAppointmentReason is used when a booking carries no reason.
const DefaultAppointmentReason = "General consultation"

// Appointment occupies one slot of a doctor on a date.
// Date is "YYYY-MM-DD"; StartTime and EndTime are "HH:MM".
type Appointment struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_slot" json:"doctor_id"`
	Date      string            `gorm:"type:varchar(10);not null;index:idx_appointments_slot" json:"date"`
	StartTime string            `gorm:"type:varchar(5);not null;index:idx_appointments_slot" json:"start_time"`
	EndTime   string            `gorm:"type:varchar(5);not null" json:"end_time"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Price     decimal.Decimal   `gorm:"type:decimal(12,2);not null" json:"price"`
	IsPaid    bool              `gorm:"not null;default:false" json:"is_paid"`
	Reason    string            `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// OccupiesSlot reports whether the appointment blocks its slot.
// Cancelled appointments release the slot.
func (a *Appointment) OccupiesSlot() bool {
	return a.Status != AppointmentStatusCancelled
}

// IsCompleted checks if appointment is completed
func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
