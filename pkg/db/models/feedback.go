package models

import "time"

// Feedback represents a customer rating, optionally tied to a reservation.
type Feedback struct {
	ID            int64        `gorm:"column:id;primaryKey;autoIncrement"`
	ReservationID *int64       `gorm:"column:reservation_id;index"`
	Reservation   *Reservation `gorm:"foreignKey:ReservationID"`
	UserID        int64        `gorm:"column:user_id;not null;index"`
	Rating        int          `gorm:"column:rating;not null"`
	Comment       *string      `gorm:"column:comment"`
	CreatedAt     time.Time    `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time    `gorm:"column:updated_at;autoUpdateTime"`
}

func (Feedback) TableName() string {
	return "feedback"
}
