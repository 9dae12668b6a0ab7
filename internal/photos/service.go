package photo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/db"
	"github.com/roverent/roverent-backend/pkg/db/models"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
)

// maxURLLength caps stored photo URLs.
const maxURLLength = 500

// Service exposes vehicle photo management operations.
type Service interface {
	Add(ctx context.Context, input AddPhotoInput) (*PhotoDTO, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]PhotoDTO, error)
	SetPrimary(ctx context.Context, vehicleID, photoID int64) (*PhotoDTO, error)
	Delete(ctx context.Context, id int64) error
}

type vehicleLoader interface {
	FindByID(ctx context.Context, id int64) (*models.Vehicle, error)
}

type service struct {
	repo     *Repository
	vehicles vehicleLoader
	dbClient *db.Client
}

// ServiceParams bundles the dependencies required to build a photo service.
type ServiceParams struct {
	Repo        *Repository
	VehicleRepo vehicleLoader
	DB          *db.Client
}

// NewService constructs a photo service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("photo repository required")
	}
	if params.VehicleRepo == nil {
		return nil, fmt.Errorf("vehicle repository required")
	}
	if params.DB == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{
		repo:     params.Repo,
		vehicles: params.VehicleRepo,
		dbClient: params.DB,
	}, nil
}

// Add attaches an image to a vehicle. A photo added as primary displaces the
// vehicle's current primary inside the same transaction.
func (s *service) Add(ctx context.Context, input AddPhotoInput) (*PhotoDTO, error) {
	if err := validatePhotoURL(input.URL); err != nil {
		return nil, err
	}

	if _, err := s.vehicles.FindByID(ctx, input.VehicleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vehicle not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load vehicle")
	}

	row := &models.VehiclePhoto{
		VehicleID: input.VehicleID,
		URL:       strings.TrimSpace(input.URL),
		Caption:   input.Caption,
		IsPrimary: input.IsPrimary,
		SortOrder: input.SortOrder,
	}
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if input.IsPrimary {
			if err := txRepo.ClearPrimary(ctx, input.VehicleID); err != nil {
				return err
			}
		}
		_, err := txRepo.Create(ctx, row)
		return err
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert photo")
	}

	dto := FromModel(row)
	return &dto, nil
}

func (s *service) ListByVehicle(ctx context.Context, vehicleID int64) ([]PhotoDTO, error) {
	rows, err := s.repo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list photos")
	}
	return FromModels(rows), nil
}

// SetPrimary promotes one photo and demotes the vehicle's other photos in a
// single transaction.
func (s *service) SetPrimary(ctx context.Context, vehicleID, photoID int64) (*PhotoDTO, error) {
	current, err := s.repo.FindByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "photo not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load photo")
	}
	if current.VehicleID != vehicleID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "photo not found")
	}

	err = s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.ClearPrimary(ctx, vehicleID); err != nil {
			return err
		}
		return txRepo.MarkPrimary(ctx, photoID)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: set primary photo")
	}

	updated, err := s.repo.FindByID(ctx, photoID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: reload photo")
	}
	dto := FromModel(updated)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "photo not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete photo")
	}
	return nil
}

func validatePhotoURL(raw string) error {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "photo url required")
	}
	if len(trimmed) > maxURLLength {
		return pkgerrors.New(pkgerrors.CodeValidation, "photo url exceeds 500 characters")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "photo url must be absolute")
	}
	return nil
}
