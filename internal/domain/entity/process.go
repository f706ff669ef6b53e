package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProcessStatus string

const (
	ProcessStatusScheduled  ProcessStatus = "scheduled"
	ProcessStatusInProgress ProcessStatus = "in_progress"
	ProcessStatusCompleted  ProcessStatus = "completed"
	ProcessStatusCancelled  ProcessStatus = "cancelled"
)

func (s ProcessStatus) Valid() bool {
	switch s {
	case ProcessStatusScheduled, ProcessStatusInProgress, ProcessStatusCompleted, ProcessStatusCancelled:
		return true
	}
	return false
}

// Process is a billable clinical procedure attached to one appointment.
type Process struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	AppointmentID uuid.UUID       `gorm:"type:uuid;not null;index" json:"appointment_id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description,omitempty"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Status        ProcessStatus   `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	Date          string          `gorm:"type:varchar(10);not null" json:"date"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Process) TableName() string {
	return "processes"
}
