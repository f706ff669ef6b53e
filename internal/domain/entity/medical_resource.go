package entity

import "github.com/google/uuid"

// MedicalResource is a piece of equipment or consumable held by a department.
type MedicalResource struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Type        string    `gorm:"type:varchar(100);not null;index" json:"type"`
	Department  string    `gorm:"type:varchar(100);not null;index" json:"department"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	Quantity    int       `gorm:"not null;default:0" json:"quantity"`
}

func (MedicalResource) TableName() string {
	return "medical_resources"
}
