package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/roverent/roverent-backend/pkg/enums"
)

// Reservation represents a booking of a vehicle over a half-open interval.
// StartDate is inclusive and EndDate exclusive.
type Reservation struct {
	ID                 int64                   `gorm:"column:id;primaryKey;autoIncrement"`
	UserID             int64                   `gorm:"column:user_id;not null;index"`
	User               *User                   `gorm:"foreignKey:UserID"`
	VehicleID          int64                   `gorm:"column:vehicle_id;not null;index"`
	Vehicle            *Vehicle                `gorm:"foreignKey:VehicleID"`
	StartDate          time.Time               `gorm:"column:start_date;not null"`
	EndDate            time.Time               `gorm:"column:end_date;not null"`
	Status             enums.ReservationStatus `gorm:"column:status;type:text;not null"`
	TotalCost          decimal.Decimal         `gorm:"column:total_cost;type:numeric(10,2);not null"`
	Notes              *string                 `gorm:"column:notes"`
	CancelledAt        *time.Time              `gorm:"column:cancelled_at"`
	CancellationReason *string                 `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
