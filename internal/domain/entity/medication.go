package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication is a catalogue entry keyed by its name.
type Medication struct {
	Name        string    `gorm:"type:varchar(255);primaryKey" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Information string    `gorm:"type:text" json:"information,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Medication) TableName() string {
	return "medications"
}

// Prescription links a medication to the appointment it was prescribed in.
// An appointment holds a given medication at most once.
type Prescription struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_prescriptions_appointment_medication" json:"appointment_id"`
	MedicationName string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_prescriptions_appointment_medication" json:"medication_name"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
