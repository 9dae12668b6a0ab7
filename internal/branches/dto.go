package branch

import (
	"time"

	"github.com/roverent/roverent-backend/pkg/db/models"
)

// BranchDTO is the rental location payload returned to clients.
type BranchDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Phone     *string   `json:"phone,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModel maps a persisted branch onto the client payload.
func FromModel(b *models.Branch) BranchDTO {
	return BranchDTO{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		City:      b.City,
		Phone:     b.Phone,
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
	}
}

// FromModels maps a slice of branches.
func FromModels(rows []models.Branch) []BranchDTO {
	dtos := make([]BranchDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, FromModel(&rows[i]))
	}
	return dtos
}

// CreateBranchInput holds the validated payload to open a new location.
type CreateBranchInput struct {
	Name    string
	Address string
	City    string
	Phone   *string
}
