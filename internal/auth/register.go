package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/roverent/roverent-backend/internal/users"
	"github.com/roverent/roverent-backend/pkg/config"
	"github.com/roverent/roverent-backend/pkg/db"
	pkgerrors "github.com/roverent/roverent-backend/pkg/errors"
	"github.com/roverent/roverent-backend/pkg/security"
)

// RegisterRequest contains the payload required to onboard a new renter.
type RegisterRequest struct {
	FirstName     string  `json:"first_name" validate:"required"`
	LastName      string  `json:"last_name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	Password      string  `json:"password" validate:"required,min=8"`
	Phone         *string `json:"phone,omitempty"`
	LicenseNumber *string `json:"license_number,omitempty"`
}

// RegisterService handles the signup transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*users.UserDTO, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// RegisterServiceParams packages the dependencies for the signup flow.
type RegisterServiceParams struct {
	DB             *db.Client
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	db          *db.Client
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided
// dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	return &registerService{
		db:          params.DB,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*users.UserDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var created users.UserDTO
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		exists, err := emailExists(ctx, userRepo, email)
		if err != nil {
			return err
		}
		if exists {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}

		user, err := userRepo.Create(ctx, users.CreateUserDTO{
			Email:         email,
			PasswordHash:  passwordHash,
			FirstName:     strings.TrimSpace(req.FirstName),
			LastName:      strings.TrimSpace(req.LastName),
			Phone:         req.Phone,
			LicenseNumber: req.LicenseNumber,
		})
		if err != nil {
			if db.IsUniqueViolation(err) {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}

		created = users.FromModel(user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// EmailExists reports whether an account already holds the address. The
// duplicate check inside Register stays authoritative, this exists for
// pre-flight validation by clients.
func (s *registerService) EmailExists(ctx context.Context, email string) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	return emailExists(ctx, users.NewRepository(s.db.DB()), normalized)
}

func emailExists(ctx context.Context, repo *users.Repository, email string) (bool, error) {
	if _, err := repo.FindByEmail(ctx, email); err == nil {
		return true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
	}
	return false, nil
}
