package feedback

import (
	"time"

	"github.com/roverent/roverent-backend/pkg/db/models"
)

// FeedbackDTO is the rating payload returned to clients.
type FeedbackDTO struct {
	ID            int64     `json:"id"`
	ReservationID *int64    `json:"reservation_id,omitempty"`
	UserID        int64     `json:"user_id"`
	Rating        int       `json:"rating"`
	Comment       *string   `json:"comment,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// FromModel maps a persisted feedback row onto the client payload.
func FromModel(f *models.Feedback) FeedbackDTO {
	return FeedbackDTO{
		ID:            f.ID,
		ReservationID: f.ReservationID,
		UserID:        f.UserID,
		Rating:        f.Rating,
		Comment:       f.Comment,
		CreatedAt:     f.CreatedAt,
	}
}

// FromModels maps a slice of feedback rows.
func FromModels(rows []models.Feedback) []FeedbackDTO {
	dtos := make([]FeedbackDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, FromModel(&rows[i]))
	}
	return dtos
}

// CreateFeedbackInput holds the validated payload to leave a rating. The
// reservation is optional; general feedback carries none.
type CreateFeedbackInput struct {
	ReservationID *int64
	UserID        int64
	Rating        int
	Comment       *string
}

// VehicleRatingSummary aggregates feedback for one vehicle.
type VehicleRatingSummary struct {
	VehicleID     int64   `json:"vehicle_id"`
	AverageRating float64 `json:"average_rating"`
	Count         int64   `json:"count"`
}
