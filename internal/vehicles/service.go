package vehicle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/cache"
	"github.com/roverent/roverent-backend/pkg/config"
	"github.com/roverent/roverent-backend/pkg/db"
	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
)

// ListCacheKey is the cache entry holding the full fleet listing. Writers
// that change availability, reservations included, evict it by this key.
const ListCacheKey = "vehicles:list"

// Service exposes fleet management operations.
type Service interface {
	List(ctx context.Context) ([]VehicleDTO, error)
	Get(ctx context.Context, id int64) (*VehicleDTO, error)
	ListAvailable(ctx context.Context, start, end time.Time) ([]VehicleDTO, error)
	Create(ctx context.Context, input CreateVehicleInput) (*VehicleDTO, error)
	Update(ctx context.Context, id int64, input UpdateVehicleInput) (*VehicleDTO, error)
	Delete(ctx context.Context, id int64) error
	UpdateStatus(ctx context.Context, id int64, status enums.VehicleStatus) (*VehicleDTO, error)
}

type service struct {
	repo     *Repository
	store    cache.Store
	cacheTTL time.Duration
}

// ServiceParams bundles the dependencies required to build a vehicle service.
type ServiceParams struct {
	Repo        *Repository
	Cache       cache.Store
	CacheConfig config.CacheConfig
}

// NewService constructs a vehicle service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("vehicle repository required")
	}
	if params.Cache == nil {
		return nil, fmt.Errorf("cache store required")
	}
	return &service{
		repo:     params.Repo,
		store:    params.Cache,
		cacheTTL: params.CacheConfig.VehicleListTTL,
	}, nil
}

// List returns the whole fleet, served from cache when warm.
func (s *service) List(ctx context.Context) ([]VehicleDTO, error) {
	if cached, ok := s.store.Get(ListCacheKey); ok {
		if dtos, valid := cached.([]VehicleDTO); valid {
			return dtos, nil
		}
	}

	vehicles, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list vehicles")
	}

	dtos := FromModels(vehicles)
	s.store.Set(ListCacheKey, dtos, s.cacheTTL)
	return dtos, nil
}

func (s *service) Get(ctx context.Context, id int64) (*VehicleDTO, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load vehicle")
	}
	dto := FromModel(vehicle)
	return &dto, nil
}

// ListAvailable returns active vehicles free over the half-open interval
// [start, end).
func (s *service) ListAvailable(ctx context.Context, start, end time.Time) ([]VehicleDTO, error) {
	if !start.Before(end) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "start date must be before end date")
	}

	vehicles, err := s.repo.ListAvailable(ctx, start, end)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list available vehicles")
	}
	return FromModels(vehicles), nil
}

func (s *service) Create(ctx context.Context, input CreateVehicleInput) (*VehicleDTO, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	vehicle := &models.Vehicle{
		VIN:          input.VIN,
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		LicensePlate: input.LicensePlate,
		Category:     input.Category,
		Transmission: input.Transmission,
		FuelType:     input.FuelType,
		Seats:        input.Seats,
		Doors:        input.Doors,
		Color:        input.Color,
		Description:  input.Description,
		DailyRate:    input.DailyRate,
		Status:       enums.VehicleStatusActive,
		BranchID:     input.BranchID,
	}

	created, err := s.repo.Create(ctx, vehicle)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "license plate already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert vehicle")
	}

	s.store.Delete(ListCacheKey)

	dto := FromModel(created)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateVehicleInput) (*VehicleDTO, error) {
	vehicle, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load vehicle")
	}

	applyUpdate(vehicle, input)
	if err := validateVehicle(vehicle); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, vehicle)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "license plate already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update vehicle")
	}

	s.store.Delete(ListCacheKey)

	dto := FromModel(updated)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete vehicle")
	}

	s.store.Delete(ListCacheKey)
	return nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status enums.VehicleStatus) (*VehicleDTO, error) {
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid vehicle status")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update vehicle status")
	}

	s.store.Delete(ListCacheKey)
	return s.Get(ctx, id)
}

func validateCreateInput(input CreateVehicleInput) error {
	vehicle := &models.Vehicle{
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		LicensePlate: input.LicensePlate,
		Category:     input.Category,
		Transmission: input.Transmission,
		FuelType:     input.FuelType,
		Seats:        input.Seats,
		Doors:        input.Doors,
		DailyRate:    input.DailyRate,
	}
	return validateVehicle(vehicle)
}

func validateVehicle(vehicle *models.Vehicle) error {
	switch {
	case vehicle.Make == "" || vehicle.Model == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "make and model are required")
	case vehicle.LicensePlate == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "license plate is required")
	case vehicle.Year < 1980 || vehicle.Year > 2100:
		return pkgerrors.New(pkgerrors.CodeValidation, "model year must be between 1980 and 2100")
	case vehicle.Seats < 1 || vehicle.Seats > 12:
		return pkgerrors.New(pkgerrors.CodeValidation, "seats must be between 1 and 12")
	case vehicle.Doors < 1 || vehicle.Doors > 6:
		return pkgerrors.New(pkgerrors.CodeValidation, "doors must be between 1 and 6")
	case vehicle.DailyRate.LessThan(decimal.Zero):
		return pkgerrors.New(pkgerrors.CodeValidation, "daily rate cannot be negative")
	case !vehicle.Category.IsValid():
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid vehicle category")
	case !vehicle.Transmission.IsValid():
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid transmission type")
	case !vehicle.FuelType.IsValid():
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid fuel type")
	}
	return nil
}

func applyUpdate(vehicle *models.Vehicle, input UpdateVehicleInput) {
	if input.Make != nil {
		vehicle.Make = *input.Make
	}
	if input.Model != nil {
		vehicle.Model = *input.Model
	}
	if input.Year != nil {
		vehicle.Year = *input.Year
	}
	if input.LicensePlate != nil {
		vehicle.LicensePlate = *input.LicensePlate
	}
	if input.Category != nil {
		vehicle.Category = *input.Category
	}
	if input.Transmission != nil {
		vehicle.Transmission = *input.Transmission
	}
	if input.FuelType != nil {
		vehicle.FuelType = *input.FuelType
	}
	if input.Seats != nil {
		vehicle.Seats = *input.Seats
	}
	if input.Doors != nil {
		vehicle.Doors = *input.Doors
	}
	if input.VIN != nil {
		vehicle.VIN = input.VIN
	}
	if input.Color != nil {
		vehicle.Color = input.Color
	}
	if input.Description != nil {
		vehicle.Description = input.Description
	}
	if input.DailyRate != nil {
		vehicle.DailyRate = *input.DailyRate
	}
	if input.BranchID != nil {
		vehicle.BranchID = input.BranchID
	}
}
