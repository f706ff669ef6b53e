package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor is a practitioner whose slots patients book.
type Doctor struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Email          string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Specialization string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Rating         float64         `gorm:"not null;default:0" json:"rating"`
	Experience     int             `gorm:"not null;default:0" json:"experience"`
	Bio            string          `gorm:"type:text" json:"bio,omitempty"`
	AvailableDays  StringList      `gorm:"type:jsonb;not null" json:"available_days"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}

func (Doctor) Role() Role {
	return RoleDoctor
}

// AvailableOn reports whether day (a weekday name) is one of the doctor's
// working days. The comparison ignores case.
func (d *Doctor) AvailableOn(day string) bool {
	for _, available := range d.AvailableDays {
		if strings.EqualFold(available, day) {
			return true
		}
	}
	return false
}

// StringList stores a list of strings as a JSONB array.
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("failed to unmarshal string list: %v", value)
	}
	return json.Unmarshal(bytes, (*[]string)(l))
}
