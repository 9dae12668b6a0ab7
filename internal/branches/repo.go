package branch

import (
	"context"

	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/db/models"
)

// Repository exposes branch persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a branch repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a branch row and returns the persisted model.
func (r *Repository) Create(ctx context.Context, row *models.Branch) (*models.Branch, error) {
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

// FindByID loads a single branch.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Branch, error) {
	var row models.Branch
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ListAll returns every branch ordered by name.
func (r *Repository) ListAll(ctx context.Context) ([]models.Branch, error) {
	var rows []models.Branch
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
