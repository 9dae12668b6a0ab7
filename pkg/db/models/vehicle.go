package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/roverent/roverent-backend/pkg/enums"
)

// Vehicle represents a fleet unit available for rental.
type Vehicle struct {
	ID           int64                  `gorm:"column:id;primaryKey;autoIncrement"`
	VIN          *string                `gorm:"column:vin"`
	Make         string                 `gorm:"column:make;not null"`
	Model        string                 `gorm:"column:model;not null"`
	Year         int                    `gorm:"column:year;not null"`
	LicensePlate string                 `gorm:"column:license_plate;not null;uniqueIndex"`
	Category     enums.VehicleCategory  `gorm:"column:category;type:text;not null"`
	Transmission enums.TransmissionType `gorm:"column:transmission;type:text;not null"`
	FuelType     enums.FuelType         `gorm:"column:fuel_type;type:text;not null"`
	Seats        int                    `gorm:"column:seats;not null"`
	Doors        int                    `gorm:"column:doors;not null"`
	Color        *string                `gorm:"column:color"`
	Description  *string                `gorm:"column:description"`
	DailyRate    decimal.Decimal        `gorm:"column:daily_rate;type:numeric(10,2);not null"`
	Status       enums.VehicleStatus    `gorm:"column:status;type:text;not null"`
	BranchID     *int64                 `gorm:"column:branch_id"`
	Branch       *Branch                `gorm:"foreignKey:BranchID"`
	Photos       []VehiclePhoto         `gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}
