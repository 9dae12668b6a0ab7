package violation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/db/models"
	"github.com/roverent/roverent-backend/pkg/enums"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
)

// maxDescriptionLength caps stored descriptions; longer input is cut, not
// rejected.
const maxDescriptionLength = 1500

// Service exposes incident reporting and review operations.
type Service interface {
	Report(ctx context.Context, input ReportViolationInput) (*ViolationReportDTO, error)
	Get(ctx context.Context, id int64) (*ViolationReportDTO, error)
	ListAll(ctx context.Context) ([]ViolationReportDTO, error)
	ListByUser(ctx context.Context, userID int64) ([]ViolationReportDTO, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]ViolationReportDTO, error)
	Review(ctx context.Context, id int64, status, notes string) (*ViolationReportDTO, error)
}

type reservationLoader interface {
	FindByID(ctx context.Context, id int64) (*models.Reservation, error)
}

type service struct {
	repo         *Repository
	reservations reservationLoader
	now          func() time.Time
}

// ServiceParams bundles the dependencies required to build a violation
// service.
type ServiceParams struct {
	Repo            *Repository
	ReservationRepo reservationLoader
}

// NewService constructs a violation service instance.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("violation repository required")
	}
	if params.ReservationRepo == nil {
		return nil, fmt.Errorf("reservation repository required")
	}
	return &service{
		repo:         params.Repo,
		reservations: params.ReservationRepo,
		now:          time.Now,
	}, nil
}

// Report files an incident against a reservation. New reports always start
// OPEN.
func (s *service) Report(ctx context.Context, input ReportViolationInput) (*ViolationReportDTO, error) {
	violationType, err := enums.ParseViolationType(input.Type)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown violation type")
	}
	severity, err := enums.ParseViolationSeverity(input.Severity)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown violation severity")
	}
	if input.UserID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "reporter required")
	}

	if _, err := s.reservations.FindByID(ctx, input.ReservationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "reservation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load reservation")
	}

	row := &models.ViolationReport{
		ReservationID: input.ReservationID,
		UserID:        input.UserID,
		Type:          violationType,
		Severity:      severity,
		Status:        enums.ViolationStatusOpen,
		Description:   normalizeDescription(input.Description),
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert violation report")
	}

	dto := FromModel(created)
	return &dto, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ViolationReportDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "violation report not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load violation report")
	}
	dto := FromModel(row)
	return &dto, nil
}

func (s *service) ListAll(ctx context.Context) ([]ViolationReportDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list violation reports")
	}
	return FromModels(rows), nil
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]ViolationReportDTO, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list violation reports")
	}
	return FromModels(rows), nil
}

func (s *service) ListByReservation(ctx context.Context, reservationID int64) ([]ViolationReportDTO, error) {
	rows, err := s.repo.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list violation reports")
	}
	return FromModels(rows), nil
}

// Review moves a report through its lifecycle. RESOLVED and DISMISSED stamp
// resolved_at; moving back to an earlier state clears it. Notes are optional
// and stored alongside the status change.
func (s *service) Review(ctx context.Context, id int64, status, notes string) (*ViolationReportDTO, error) {
	parsed, err := enums.ParseViolationStatus(status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown violation status")
	}

	var resolvedAt *time.Time
	if parsed == enums.ViolationStatusResolved || parsed == enums.ViolationStatusDismissed {
		stamp := s.now().UTC()
		resolvedAt = &stamp
	}

	var stored *string
	if trimmed := strings.TrimSpace(notes); trimmed != "" {
		stored = &trimmed
	}

	if err := s.repo.UpdateStatus(ctx, id, parsed, resolvedAt, stored); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "violation report not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update violation status")
	}
	return s.Get(ctx, id)
}

func normalizeDescription(description string) *string {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil
	}
	runes := []rune(trimmed)
	if len(runes) > maxDescriptionLength {
		trimmed = string(runes[:maxDescriptionLength])
	}
	return &trimmed
}
