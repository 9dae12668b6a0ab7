package vehicle

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
)

// Half-open interval overlap: an existing booking [s, e) collides with
// [start, end) exactly when s < end AND e > start. Back-to-back bookings
// that share a boundary instant do not collide.
const availableVehiclesQuery = `
SELECT v.* FROM vehicles v
WHERE v.status = ?
  AND NOT EXISTS (
    SELECT 1 FROM reservations r
    WHERE r.vehicle_id = v.id
      AND r.status IN ?
      AND r.start_date < ?
      AND r.end_date > ?
  )
ORDER BY v.id
`

// Repository exposes vehicle persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a vehicles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a vehicle and returns the persisted model.
func (r *Repository) Create(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Update persists the mutable columns of the vehicle. Associations are
// managed through their own repositories.
func (r *Repository) Update(ctx context.Context, vehicle *models.Vehicle) (*models.Vehicle, error) {
	if err := r.db.WithContext(ctx).Omit("Branch", "Photos").Save(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete removes the vehicle row. Photos cascade.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Vehicle{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID loads a vehicle with its branch and photos.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Branch").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		First(&vehicle, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// ListAll returns the whole fleet ordered by id.
func (r *Repository) ListAll(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.WithContext(ctx).
		Preload("Branch").
		Order("id ASC").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ListAvailable returns active vehicles with no blocking reservation
// overlapping [start, end).
func (r *Repository) ListAvailable(ctx context.Context, start, end time.Time) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := r.db.WithContext(ctx).
		Raw(availableVehiclesQuery,
			enums.VehicleStatusActive,
			blockingStatusTokens(),
			end,
			start,
		).
		Scan(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

// UpdateStatus sets the vehicle status column.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status enums.VehicleStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
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

func blockingStatusTokens() []string {
	tokens := make([]string, 0, len(enums.BlockingReservationStatuses))
	for _, status := range enums.BlockingReservationStatuses {
		tokens = append(tokens, status.String())
	}
	return tokens
}
