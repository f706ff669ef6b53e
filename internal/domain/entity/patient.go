package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Patient is a person who books appointments and pays for processes.
type Patient struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Email       string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PhoneNumber string          `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Balance     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"balance"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

func (Patient) Role() Role {
	return RolePatient
}

// CanAfford reports whether the balance covers amount.
func (p *Patient) CanAfford(amount decimal.Decimal) bool {
	return p.Balance.GreaterThanOrEqual(amount)
}
