package photo

import (
	"context"

	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/db/models"
)

// Repository exposes vehicle photo persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a photo repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a photo row and returns the persisted model.
func (r *Repository) Create(ctx context.Context, row *models.VehiclePhoto) (*models.VehiclePhoto, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByID loads a single photo.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.VehiclePhoto, error) {
	var row models.VehiclePhoto
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListByVehicle returns a vehicle's photos, primary image first.
func (r *Repository) ListByVehicle(ctx context.Context, vehicleID int64) ([]models.VehiclePhoto, error) {
	var rows []models.VehiclePhoto
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ?", vehicleID).
		Order("is_primary DESC, sort_order ASC, created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ClearPrimary drops the primary flag from every photo of a vehicle.
func (r *Repository) ClearPrimary(ctx context.Context, vehicleID int64) error {
	return r.db.WithContext(ctx).
		Model(&models.VehiclePhoto{}).
		Where("vehicle_id = ? AND is_primary", vehicleID).
		Update("is_primary", false).Error
}

// MarkPrimary sets the primary flag on one photo.
func (r *Repository) MarkPrimary(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.VehiclePhoto{}).
		Where("id = ?", id).
		Update("is_primary", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a photo row.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.VehiclePhoto{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
