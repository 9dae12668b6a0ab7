package violation

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
)


// Repository exposes violation report persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a violation repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a report and returns the persisted model.
func (r *Repository) Create(ctx context.Context, row *models.ViolationReport) (*models.ViolationReport, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByID loads a single report.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.ViolationReport, error) {
	var row models.ViolationReport
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListAll returns every report, newest first.
func (r *Repository) ListAll(ctx context.Context) ([]models.ViolationReport, error) {
	var rows []models.ViolationReport
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByUser returns the reports a user has filed, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]models.ViolationReport, error) {
	var rows []models.ViolationReport
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListByReservation returns the reports tied to one reservation, newest first.
func (r *Repository) ListByReservation(ctx context.Context, reservationID int64) ([]models.ViolationReport, error) {
	var rows []models.ViolationReport
	err := r.db.WithContext(ctx).
		Where("reservation_id = ?", reservationID).
		Order("created_at DESC, id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// UpdateStatus moves a report to the given status. resolvedAt and notes are
// written as-is so review states clear them with nil.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status enums.ViolationStatus, resolvedAt *time.Time, notes *string) error {
	result := r.db.WithContext(ctx).
		Model(&models.ViolationReport{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":           status,
			"resolved_at":      resolvedAt,
			"resolution_notes": notes,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
