package feedback

import (
	"context"

	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/db/models"
)

const vehicleFeedbackQuery = `
SELECT f.* FROM feedback f
JOIN reservations r ON r.id = f.reservation_id
WHERE r.vehicle_id = ?
ORDER BY f.created_at DESC, f.id DESC
`

const vehicleRatingQuery = `
SELECT COALESCE(AVG(f.rating), 0) AS average, COUNT(f.id) AS count
FROM feedback f
JOIN reservations r ON r.id = f.reservation_id
WHERE r.vehicle_id = ?
`

// Repository exposes feedback persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a feedback repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a feedback row and returns the persisted model.
func (r *Repository) Create(ctx context.Context, row *models.Feedback) (*models.Feedback, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByReservation loads the feedback left for a reservation.
func (r *Repository) FindByReservation(ctx context.Context, reservationID int64) (*models.Feedback, error) {
	var row models.Feedback
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ListAll returns every rating, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Feedback, error) {
	var rows []models.Feedback
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByUser returns the ratings one user has left, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]models.Feedback, error) {
	var rows []models.Feedback
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByVehicle returns feedback for all of a vehicle's rentals.
func (r *Repository) ListByVehicle(ctx context.Context, vehicleID int64) ([]models.Feedback, error) {
	var rows []models.Feedback
	if err := r.db.WithContext(ctx).Raw(vehicleFeedbackQuery, vehicleID).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// VehicleRating aggregates the average rating for a vehicle.
func (r *Repository) VehicleRating(ctx context.Context, vehicleID int64) (float64, int64, error) {
	var agg struct {
		Average float64
		Count   int64
	}
	if err := r.db.WithContext(ctx).Raw(vehicleRatingQuery, vehicleID).Scan(&agg).Error; err != nil {
		return 0, 0, err
	}
	return agg.Average, agg.Count, nil
}
