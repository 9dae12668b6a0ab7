package branch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/pkg/db"
	"github.com/roverent/roverent-backend/pkg/db/models"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
)

// maxNameLength caps branch names.
const maxNameLength = 100

// Service exposes rental location operations.
type Service interface {
	Create(ctx context.Context, input CreateBranchInput) (*BranchDTO, error)
	Get(ctx context.Context, id int64) (*BranchDTO, error)
	List(ctx context.Context) ([]BranchDTO, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a branch service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("branch repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateBranchInput) (*BranchDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "branch name required")
	}
	if len(name) > maxNameLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "branch name exceeds 100 characters")
	}

	row := &models.Branch{
		Name:     name,
		Address:  strings.TrimSpace(input.Address),
		City:     strings.TrimSpace(input.City),
		Phone:    input.Phone,
		IsActive: true,
	}
	created, err := s.repo.Create(ctx, row)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "branch name already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert branch")
	}

	dto := FromModel(created)
	return &dto, nil
}

func (s *service) Get(ctx context.Context, id int64) (*BranchDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "branch not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load branch")
	}
	dto := FromModel(row)
	return &dto, nil
}

func (s *service) List(ctx context.Context) ([]BranchDTO, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list branches")
	}
	return FromModels(rows), nil
}
