package feedback

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/db"
	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
)

// maxCommentLength caps stored comments; longer input is cut, not rejected.
const maxCommentLength = 1000

// Service exposes rating operations for completed rentals.
type Service interface {
	Create(ctx context.Context, input CreateFeedbackInput) (*FeedbackDTO, error)
	GetByReservation(ctx context.Context, reservationID int64) (*FeedbackDTO, error)
	ListAll(ctx context.Context) ([]FeedbackDTO, error)
	ListByUser(ctx context.Context, userID int64) ([]FeedbackDTO, error)
	ListByVehicle(ctx context.Context, vehicleID int64) ([]FeedbackDTO, error)
	VehicleRating(ctx context.Context, vehicleID int64) (*VehicleRatingSummary, error)
}

type reservationLoader interface {
	FindByID(ctx context.Context, id int64) (*models.Reservation, error)
}

type service struct {
	repo         *Repository
	reservations reservationLoader
}

// ServiceParams bundles the dependencies required to build a feedback
// service.
type ServiceParams struct {
	Repo            *Repository
	ReservationRepo reservationLoader
}

// NewService constructs a feedback service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("feedback repository required")
	}
	if params.ReservationRepo == nil {
		return nil, fmt.Errorf("reservation repository required")
	}
	return &service{
		repo:         params.Repo,
		reservations: params.ReservationRepo,
	}, nil
}

// Create records a rating. A reservation is optional; when one is named the
// caller must be its renter, the rental must be completed, and it may only be
// rated once.
func (s *service) Create(ctx context.Context, input CreateFeedbackInput) (*FeedbackDTO, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	if input.ReservationID != nil {
		reservation, err := s.reservations.FindByID(ctx, *input.ReservationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load reservation")
		}

		if reservation.UserID != input.UserID {
			return nil, pkgerrors.New(pkgerrors.CodeForbidden, "feedback can only be left on your own rentals")
		}
		if enums.CoerceReservationStatus(string(reservation.Status)) != enums.ReservationStatusCompleted {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "feedback requires a completed rental")
		}
	}

	row := &models.Feedback{
		ReservationID: input.ReservationID,
		UserID:        input.UserID,
		Rating:        input.Rating,
		Comment:       truncateComment(input.Comment),
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "reservation already rated")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert feedback")
	}

	dto := FromModel(created)
	return &dto, nil
}

func (s *service) GetByReservation(ctx context.Context, reservationID int64) (*FeedbackDTO, error) {
	row, err := s.repo.FindByReservation(ctx, reservationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "feedback not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load feedback")
	}
	dto := FromModel(row)
	return &dto, nil
}

func (s *service) ListAll(ctx context.Context) ([]FeedbackDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list feedback")
	}
	return FromModels(rows), nil
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]FeedbackDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list feedback")
	}
	return FromModels(rows), nil
}

func (s *service) ListByVehicle(ctx context.Context, vehicleID int64) ([]FeedbackDTO, error) {
	rows, err := s.repo.ListByVehicle(ctx, vehicleID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list feedback")
	}
	return FromModels(rows), nil
}

func (s *service) VehicleRating(ctx context.Context, vehicleID int64) (*VehicleRatingSummary, error) {
	average, count, err := s.repo.VehicleRating(ctx, vehicleID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: aggregate rating")
	}
	return &VehicleRatingSummary{
		VehicleID:     vehicleID,
		AverageRating: average,
		Count:         count,
	}, nil
}

func truncateComment(comment *string) *string {
	if comment == nil {
		return nil
	}
	runes := []rune(*comment)
	if len(runes) <= maxCommentLength {
		return comment
	}
	cut := string(runes[:maxCommentLength])
	return &cut
}
