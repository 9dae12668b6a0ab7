package reservation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
)

// ReservationDTO is the booking payload returned to clients.
type ReservationDTO struct {
	ID                 int64           `json:"id"`
	UserID             int64           `json:"user_id"`
	VehicleID          int64           `json:"vehicle_id"`
	VehicleMake        string          `json:"vehicle_make,omitempty"`
	VehicleModel       string          `json:"vehicle_model,omitempty"`
	StartDate          time.Time       `json:"start_date"`
	EndDate            time.Time       `json:"end_date"`
	Status             string          `json:"status"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	Notes              *string         `json:"notes,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
	CancellationReason *string         `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// FromModel maps a persisted reservation onto the client payload.
func FromModel(r *models.Reservation) ReservationDTO {
	dto := ReservationDTO{
		ID:                 r.ID,
		UserID:             r.UserID,
		VehicleID:          r.VehicleID,
		StartDate:          r.StartDate,
		EndDate:            r.EndDate,
		Status:             enums.CoerceReservationStatus(string(r.Status)).String(),
		TotalCost:          r.TotalCost,
		Notes:              r.Notes,
		CancelledAt:        r.CancelledAt,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
	}
	if r.Vehicle != nil {
		dto.VehicleMake = r.Vehicle.Make
		dto.VehicleModel = r.Vehicle.Model
	}
	return dto
}

// FromModels maps a slice of reservations.
func FromModels(reservations []models.Reservation) []ReservationDTO {
	dtos := make([]ReservationDTO, 0, len(reservations))
	for i := range reservations {
		dtos = append(dtos, FromModel(&reservations[i]))
	}
	return dtos
}

// CreateReservationInput holds the validated payload to book a vehicle.
type CreateReservationInput struct {
	UserID    int64
	VehicleID int64
	StartDate time.Time
	EndDate   time.Time
	Notes     *string
}
