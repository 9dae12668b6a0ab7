package models

import (
	"time"

	"github.com/roverent/roverent-backend/pkg/enums"
)

// ViolationReport represents a rental incident filed against a reservation.
// UserID is the reporter, not the booking's renter.
type ViolationReport struct {
	ID              int64                   `gorm:"column:id;primaryKey;autoIncrement"`
	ReservationID   int64                   `gorm:"column:reservation_id;not null;index"`
	Reservation     *Reservation            `gorm:"foreignKey:ReservationID"`
	UserID          int64                   `gorm:"column:user_id;not null;index"`
	Type            enums.ViolationType     `gorm:"column:type;type:text;not null"`
	Severity        enums.ViolationSeverity `gorm:"column:severity;type:text;not null"`
	Status          enums.ViolationStatus   `gorm:"column:status;type:text;not null"`
	Description     *string                 `gorm:"column:description"`
	ResolutionNotes *string                 `gorm:"column:resolution_notes"`
	ResolvedAt      *time.Time              `gorm:"column:resolved_at"`
	CreatedAt       time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
