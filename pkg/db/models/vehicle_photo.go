package models

import "time"

// VehiclePhoto represents a single image attached to a vehicle listing.
type VehiclePhoto struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	VehicleID int64     `gorm:"column:vehicle_id;not null;index"`
	URL       string    `gorm:"column:url;not null"`
	Caption   *string   `gorm:"column:caption"`
	IsPrimary bool      `gorm:"column:is_primary;not null;default:false"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
