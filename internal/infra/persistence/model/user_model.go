package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The verification token pair is
// nullable and, by a table CHECK constraint, either both set or both NULL.
type UserModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key"`
	Email             string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash      string     `gorm:"type:varchar(72);not null"`
	FirstName         string     `gorm:"type:varchar(100);not null"`
	LastName          string     `gorm:"type:varchar(100);not null"`
	EmailVerified     bool       `gorm:"not null;default:false"`
	VerificationToken *string    `gorm:"type:varchar(64)"`
	TokenCreatedAt    *time.Time `gorm:"type:timestamptz"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
