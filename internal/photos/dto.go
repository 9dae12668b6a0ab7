package photo

import (
	"time"

	"github.com/roverent/roverent-backend/pkg/db/models"
)

// PhotoDTO is the vehicle image payload returned to clients.
type PhotoDTO struct {
	ID        int64     `json:"id"`
	VehicleID int64     `json:"vehicle_id"`
	URL       string    `json:"url"`
	Caption   *string   `json:"caption,omitempty"`
	IsPrimary bool      `json:"is_primary"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModel maps a persisted photo row onto the client payload.
func FromModel(p *models.VehiclePhoto) PhotoDTO {
	return PhotoDTO{
		ID:        p.ID,
		VehicleID: p.VehicleID,
		URL:       p.URL,
		Caption:   p.Caption,
		IsPrimary: p.IsPrimary,
		SortOrder: p.SortOrder,
		CreatedAt: p.CreatedAt,
	}
}

// FromModels maps a slice of photo rows.
func FromModels(rows []models.VehiclePhoto) []PhotoDTO {
	dtos := make([]PhotoDTO, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, FromModel(&rows[i]))
	}
	return dtos
}

// AddPhotoInput holds the validated payload to attach an image to a vehicle.
type AddPhotoInput struct {
	VehicleID int64
	URL       string
	Caption   *string
	IsPrimary bool
	SortOrder int
}
