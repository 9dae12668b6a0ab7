package models

import "time"

// Branch represents a rental location vehicles are assigned to.
type Branch struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;not null;uniqueIndex"`
	Address   string    `gorm:"column:address;not null"`
	City      string    `gorm:"column:city;not null"`
	Phone     *string   `gorm:"column:phone"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Branch) TableName() string {
	return "branches"
}
