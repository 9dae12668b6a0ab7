package users

import (
	"time"

	"github.com/roverent/roverent-backend/pkg/db/models"
)

// CreateUserDTO captures the fields needed to insert a new user row.
type CreateUserDTO struct {
	Email         string
	PasswordHash  string
	FirstName     string
	LastName      string
	Phone         *string
	LicenseNumber *string
}

// ToModel converts the DTO into a persistable model.
func (d CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Email:         d.Email,
		PasswordHash:  d.PasswordHash,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		Phone:         d.Phone,
		LicenseNumber: d.LicenseNumber,
		IsActive:      true,
	}
}

// UserDTO is the user payload returned to clients. The password hash never
// leaves the service layer.
type UserDTO struct {
	ID            int64      `json:"id"`
	Email         string     `json:"email"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Phone         *string    `json:"phone,omitempty"`
	LicenseNumber *string    `json:"license_number,omitempty"`
	IsActive      bool       `json:"is_active"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// FromModel maps a persisted user onto the client payload.
func FromModel(user *models.User) UserDTO {
	return UserDTO{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Phone:         user.Phone,
		LicenseNumber: user.LicenseNumber,
		IsActive:      user.IsActive,
		LastLoginAt:   user.LastLoginAt,
		CreatedAt:     user.CreatedAt,
	}
}
