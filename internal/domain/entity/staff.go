package entity

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a non-physician hospital employee who manages resources.
type Staff struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Department string    `gorm:"type:varchar(100);not null" json:"department"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Staff) TableName() string {
	return "staff"
}

func (Staff) Role() Role {
	return RoleStaff
}
