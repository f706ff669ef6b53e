package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending  ReservationStatus = "pending"
	ReservationStatusApproved ReservationStatus = "approved"
	ReservationStatusRejected ReservationStatus = "rejected"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusApproved, ReservationStatusRejected:
		return true
	}
	return false
}

// ResourceReservation is a claim on a MedicalResource for a time window.
type ResourceReservation struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ResourceID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"resource_id"`
	RequesterID   uuid.UUID         `gorm:"type:uuid;not null;index" json:"requester_id"`
	RequesterRole Role              `gorm:"type:varchar(20);not null" json:"requester_role"`
	Date          string            `gorm:"type:varchar(10);not null" json:"date"`
	StartTime     string            `gorm:"type:varchar(5);not null" json:"start_time"`
	EndTime       string            `gorm:"type:varchar(5);not null" json:"end_time"`
	Quantity      int               `gorm:"not null" json:"quantity"`
	Status        ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt     time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ResourceReservation) TableName() string {
	return "resource_reservations"
}
