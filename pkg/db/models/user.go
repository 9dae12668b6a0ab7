package models

import (
	"time"
)

// User represents the canonical customer identity.
type User struct {
	ID            int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Email         string     `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash  string     `gorm:"column:password_hash;not null"`
	FirstName     string     `gorm:"column:first_name;not null"`
	LastName      string     `gorm:"column:last_name;not null"`
	Phone         *string    `gorm:"column:phone"`
	LicenseNumber *string    `gorm:"column:license_number"`
	IsActive      bool       `gorm:"column:is_active;not null;default:true"`
	LastLoginAt   *time.Time `gorm:"column:last_login_at"`
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
