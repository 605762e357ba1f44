package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	FirstName            string `json:"first_name" validate:"required,max=255"`
	LastName             string `json:"last_name" validate:"required,max=255"`
	Name                 string `json:"name" validate:"required,max=255"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
	UserType             string `json:"user_type" validate:"required"`
	HospitalID           *uint  `json:"hospital_id" validate:"omitempty,gt=0"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
	Gender    string `json:"gender" validate:"required,max=255"`
	Phone     string `json:"phone" validate:"required,max=255"`
}

type ForgetPasswordRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

type ResetPasswordRequest struct {
	ResetToken           string `json:"reset_token" validate:"required"`
	Password             string `json:"password" validate:"required"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// Response DTOs

type LoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Email      string            `json:"email"`
	Gender     string            `json:"gender,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Profile    string            `json:"profile,omitempty"`
	Role       string            `json:"role"`
	HospitalID *uint             `json:"hospital_id,omitempty"`
	Hospital   *HospitalResponse `json:"hospital,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type HospitalResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

type MeResponse struct {
	User  *UserResponse `json:"user"`
	Roles []string      `json:"roles"`
}

type ProfileImageResponse struct {
	URL string `json:"url"`
}

type ForgetPasswordResult struct {
	Found bool
	Token string
}

type ResetPasswordResult struct {
	Valid       bool
	NewPassword string
}

// AccountResponse is the flat body of the password recovery endpoints.
type AccountResponse struct {
	Success     bool        `json:"success"`
	Message     string      `json:"message"`
	ResetToken  string      `json:"reset_token,omitempty"`
	NewPassword string      `json:"new_password,omitempty"`
	Error       interface{} `json:"error,omitempty"`
}
