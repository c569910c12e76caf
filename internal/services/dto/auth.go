package dto

import (
	"time"

	"tconnect_backend/internal/models"
)

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	FullName string          `json:"full_name" validate:"required"`
	Role     models.UserRole `json:"role" validate:"required,oneof=candidate recruiter"`
}

type LoginRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required"`
	Role     models.UserRole `json:"role" validate:"omitempty,is-user-role"`
}

type SendOTPRequest struct {
	Email string          `json:"email" validate:"required,email"`
	Role  models.UserRole `json:"role" validate:"omitempty,is-user-role"`
}

type VerifyOTPRequest struct {
	Email string          `json:"email" validate:"required,email"`
	Code  string          `json:"otp" validate:"required,len=6"`
	Role  models.UserRole `json:"role" validate:"omitempty,is-user-role"`
}

type GoogleLoginRequest struct {
	IDToken string          `json:"id_token" validate:"required"`
	Role    models.UserRole `json:"role" validate:"omitempty,oneof=candidate recruiter"`
}

type UserDTO struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	FullName   string          `json:"full_name"`
	Role       models.UserRole `json:"role"`
	IsVerified bool            `json:"is_verified"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AuthResponse carries the token pair alongside the user. Handlers also set
// the tokens as cookies; the body keeps header-based clients working.
type AuthResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	User         UserDTO `json:"user"`
	IsNewUser    bool    `json:"is_new_user,omitempty"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}
