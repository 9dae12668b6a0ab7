package reservation

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
)

// Repository exposes reservation persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reservations repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a reservation and returns the persisted model.
func (r *Repository) Create(ctx context.Context, reservation *models.Reservation) (*models.Reservation, error) {
	if err := r.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return nil, err
	}
	return reservation, nil
}

// FindByID loads a reservation with its vehicle.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		First(&reservation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// ListAll returns every booking, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Order("start_date DESC, id DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListByUser returns the user's bookings, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListByVehicle returns all bookings for a vehicle, oldest first.
func (r *Repository) ListByVehicle(ctx context.Context, vehicleID int64) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("start_date ASC, id ASC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// FindVehicleForBooking loads the vehicle row inside the booking
// transaction. On postgres the row is locked so concurrent bookings for the
// same vehicle serialize; sqlite serializes writers itself.
func (r *Repository) FindVehicleForBooking(ctx context.Context, vehicleID int64) (*models.Vehicle, error) {
	query := r.db.WithContext(ctx)
	if r.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var vehicle models.Vehicle
	if err := query.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// CountOverlapping counts blocking bookings for the vehicle that collide
// with the half-open interval [start, end).
func (r *Repository) CountOverlapping(ctx context.Context, vehicleID int64, start, end time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("vehicle_id = ?", vehicleID).
		Where("status IN ?", blockingStatusTokens()).
		Where("start_date < ? AND end_date > ?", end, start).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// UpdateStatus sets the reservation status column.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status enums.ReservationStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		UpdateColumn("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Cancel marks the reservation cancelled, stamps cancelled_at and records the
// optional reason.
func (r *Repository) Cancel(ctx context.Context, id int64, at time.Time, reason *string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              enums.ReservationStatusCancelled,
			"cancelled_at":        at,
			"cancellation_reason": reason,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func blockingStatusTokens() []string {
	tokens := make([]string, 0, len(enums.BlockingReservationStatuses))
	for _, status := range enums.BlockingReservationStatuses {
		tokens = append(tokens, status.String())
	}
	return tokens
}
