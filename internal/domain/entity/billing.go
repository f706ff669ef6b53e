package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingStatus string

const (
	BillingStatusPending BillingStatus = "pending"
	BillingStatusPaid    BillingStatus = "paid"
	BillingStatusOverdue BillingStatus = "overdue"
)

func (s BillingStatus) Valid() bool {
	switch s {
	case BillingStatusPending, BillingStatusPaid, BillingStatusOverdue:
		return true
	}
	return false
}

// Billing tracks the amount and settlement of exactly one Process.
type Billing struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	ProcessID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"process_id"`
	Date      string          `gorm:"type:varchar(10);not null" json:"date"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status    BillingStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Billing) TableName() string {
	return "billings"
}

func (b *Billing) IsPaid() bool {
	return b.Status == BillingStatusPaid
}
