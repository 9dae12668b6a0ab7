package reservation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/db"
	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
)

const vehicleUnavailableMessage = "vehicle not available for selected dates"

// Service exposes booking operations.
type Service interface {
	Create(ctx context.Context, input CreateReservationInput) (*ReservationDTO, error)
	Get(ctx context.Context, id int64) (*ReservationDTO, error)
	ListAll(ctx context.Context) ([]ReservationDTO, error)
	ListByUser(ctx context.Context, userID int64) ([]ReservationDTO, error)
	IsVehicleAvailable(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error)
	Confirm(ctx context.Context, id int64) (*ReservationDTO, error)
	Complete(ctx context.Context, id int64) (*ReservationDTO, error)
	Cancel(ctx context.Context, id int64, reason string) (*ReservationDTO, error)
}

type listEvictor interface {
	Delete(key string)
}

type service struct {
	repo     *Repository
	dbClient *db.Client
	evictor  listEvictor
	evictKey string
	now      func() time.Time
}

// ServiceParams bundles the dependencies required to build a reservation
// service.
type ServiceParams struct {
	Repo     *Repository
	DB       *db.Client
	Evictor  listEvictor
	EvictKey string
}

// NewService constructs a reservation service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("reservation repository required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("db client required")
	}
	if params.Evictor == nil {
		return nil, fmt.Errorf("cache evictor required")
	}
	return &service{
		repo:     params.Repo,
		dbClient: params.DB,
		evictor:  params.Evictor,
		evictKey: params.EvictKey,
		now:      time.Now,
	}, nil
}

// Create books a vehicle over the half-open interval [start, end). The
// availability check and the insert run in one transaction so two racing
// bookings cannot both pass the check.
func (s *service) Create(ctx context.Context, input CreateReservationInput) (*ReservationDTO, error) {
	if input.UserID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if input.VehicleID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle id is required")
	}
	if !input.StartDate.Before(input.EndDate) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start date must be before end date")
	}

	var created *models.Reservation
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		vehicle, err := txRepo.FindVehicleForBooking(ctx, input.VehicleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load vehicle")
		}
		if enums.CoerceVehicleStatus(string(vehicle.Status)) != enums.VehicleStatusActive {
			return pkgerrors.New(pkgerrors.CodeConflict, vehicleUnavailableMessage)
		}

		overlaps, err := txRepo.CountOverlapping(ctx, input.VehicleID, input.StartDate, input.EndDate)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count overlapping bookings")
		}
		if overlaps > 0 {
			return pkgerrors.New(pkgerrors.CodeConflict, vehicleUnavailableMessage)
		}

		reservation := &models.Reservation{
			UserID:    input.UserID,
			VehicleID: input.VehicleID,
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			Status:    enums.ReservationStatusPending,
			TotalCost: bookingCost(vehicle.DailyRate, input.StartDate, input.EndDate),
			Notes:     input.Notes,
		}
		created, err = txRepo.Create(ctx, reservation)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert reservation")
		}
		return nil
	})
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create reservation")
	}

	s.evict()

	dto := FromModel(created)
	return &dto, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ReservationDTO, error) {
	reservation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := FromModel(reservation)
	return &dto, nil
}

func (s *service) ListAll(ctx context.Context) ([]ReservationDTO, error) {
	reservations, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list reservations")
	}
	return FromModels(reservations), nil
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]ReservationDTO, error) {
	reservations, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list reservations")
	}
	return FromModels(reservations), nil
}

// IsVehicleAvailable reports whether the half-open window [start, end) is
// free of blocking bookings. It is advisory only, Create re-checks inside
// its transaction.
func (s *service) IsVehicleAvailable(ctx context.Context, vehicleID int64, start, end time.Time) (bool, error) {
	if vehicleID <= 0 {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "vehicle required")
	}
	if !start.Before(end) {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "start date must be before end date")
	}
	count, err := s.repo.CountOverlapping(ctx, vehicleID, start, end)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: count overlapping reservations")
	}
	return count == 0, nil
}

// Confirm moves a pending booking to confirmed.
func (s *service) Confirm(ctx context.Context, id int64) (*ReservationDTO, error) {
	return s.transition(ctx, id, enums.ReservationStatusPending, enums.ReservationStatusConfirmed)
}

// Complete closes out a confirmed booking after the vehicle is returned.
func (s *service) Complete(ctx context.Context, id int64) (*ReservationDTO, error) {
	return s.transition(ctx, id, enums.ReservationStatusConfirmed, enums.ReservationStatusCompleted)
}

// Cancel marks the booking cancelled regardless of its current status and
// stamps the cancellation time. Repeating a cancel refreshes the stamp. The
// reason is optional and stored verbatim after trimming.
func (s *service) Cancel(ctx context.Context, id int64, reason string) (*ReservationDTO, error) {
	var stored *string
	if trimmed := strings.TrimSpace(reason); trimmed != "" {
		stored = &trimmed
	}
	if err := s.repo.Cancel(ctx, id, s.now().UTC(), stored); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: cancel reservation")
	}

	s.evict()
	return s.Get(ctx, id)
}

func (s *service) transition(ctx context.Context, id int64, from, to enums.ReservationStatus) (*ReservationDTO, error) {
	reservation, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	current := enums.CoerceReservationStatus(string(reservation.Status))
	if current != from {
		return nil, pkgerrors.New(pkgerrors.CodeConflict,
			fmt.Sprintf("reservation is %s, expected %s", current, from))
	}

	if err := s.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update reservation status")
	}

	s.evict()
	return s.Get(ctx, id)
}

func (s *service) load(ctx context.Context, id int64) (*models.Reservation, error) {
	reservation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load reservation")
	}
	return reservation, nil
}

func (s *service) evict() {
	if s.evictKey != "" {
		s.evictor.Delete(s.evictKey)
	}
}

// bookingCost charges per started day of the half-open interval.
func bookingCost(dailyRate decimal.Decimal, start, end time.Time) decimal.Decimal {
	days := int64(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return dailyRate.Mul(decimal.NewFromInt(days))
}
