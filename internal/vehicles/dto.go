package vehicle

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
)

// VehicleDTO is the fleet unit payload returned to clients.
type VehicleDTO struct {
	ID           int64             `json:"id"`
	VIN          *string           `json:"vin,omitempty"`
	Make         string            `json:"make"`
	Model        string            `json:"model"`
	Year         int               `json:"year"`
	LicensePlate string            `json:"license_plate"`
	Category     string            `json:"category"`
	Transmission string            `json:"transmission"`
	FuelType     string            `json:"fuel_type"`
	Seats        int               `json:"seats"`
	Doors        int               `json:"doors"`
	Color        *string           `json:"color,omitempty"`
	Description  *string           `json:"description,omitempty"`
	DailyRate    decimal.Decimal   `json:"daily_rate"`
	Status       string            `json:"status"`
	BranchID     *int64            `json:"branch_id,omitempty"`
	BranchName   *string           `json:"branch_name,omitempty"`
	Photos       []VehiclePhotoDTO `json:"photos,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// VehiclePhotoDTO captures a single listing image.
type VehiclePhotoDTO struct {
	ID        int64   `json:"id"`
	URL       string  `json:"url"`
	Caption   *string `json:"caption,omitempty"`
	IsPrimary bool    `json:"is_primary"`
	SortOrder int     `json:"sort_order"`
}

// FromModel maps a persisted vehicle onto the client payload. Enum columns
// are decoded leniently so rows written under older token sets still load.
func FromModel(v *models.Vehicle) VehicleDTO {
	dto := VehicleDTO{
		ID:           v.ID,
		VIN:          v.VIN,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		Category:     enums.CoerceVehicleCategory(string(v.Category)).String(),
		Transmission: enums.CoerceTransmissionType(string(v.Transmission)).String(),
		FuelType:     enums.CoerceFuelType(string(v.FuelType)).String(),
		Seats:        v.Seats,
		Doors:        v.Doors,
		Color:        v.Color,
		Description:  v.Description,
		DailyRate:    v.DailyRate,
		Status:       enums.CoerceVehicleStatus(string(v.Status)).String(),
		BranchID:     v.BranchID,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
	if v.Branch != nil {
		name := v.Branch.Name
		dto.BranchName = &name
	}
	for _, photo := range v.Photos {
		dto.Photos = append(dto.Photos, VehiclePhotoDTO{
			ID:        photo.ID,
			URL:       photo.URL,
			Caption:   photo.Caption,
			IsPrimary: photo.IsPrimary,
			SortOrder: photo.SortOrder,
		})
	}
	return dto
}

// FromModels maps a slice of vehicles.
func FromModels(vehicles []models.Vehicle) []VehicleDTO {
	dtos := make([]VehicleDTO, 0, len(vehicles))
	for i := range vehicles {
		dtos = append(dtos, FromModel(&vehicles[i]))
	}
	return dtos
}

// CreateVehicleInput holds the validated payload to add a fleet unit.
type CreateVehicleInput struct {
	VIN          *string
	Make         string
	Model        string
	Year         int
	LicensePlate string
	Category     enums.VehicleCategory
	Transmission enums.TransmissionType
	FuelType     enums.FuelType
	Seats        int
	Doors        int
	Color        *string
	Description  *string
	DailyRate    decimal.Decimal
	BranchID     *int64
}

// UpdateVehicleInput holds optional mutation values for a fleet unit.
type UpdateVehicleInput struct {
	VIN          *string
	Make         *string
	Model        *string
	Year         *int
	LicensePlate *string
	Category     *enums.VehicleCategory
	Transmission *enums.TransmissionType
	FuelType     *enums.FuelType
	Seats        *int
	Doors        *int
	Color        *string
	Description  *string
	DailyRate    *decimal.Decimal
	BranchID     *int64
}
