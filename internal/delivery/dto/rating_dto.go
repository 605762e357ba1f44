package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateRatingRequest struct {
	HospitalID uint   `json:"hospital_id" validate:"required,gt=0"`
	Content    string `json:"content" validate:"required"`
	Star       int    `json:"star" validate:"required,gte=1,lte=5"`
}

type UpdateRatingRequest struct {
	Content string `json:"content" validate:"required"`
	Star    int    `json:"star" validate:"required,gte=1,lte=5"`
}

// AdminUpdateRatingRequest may also move the rating to another author.
type AdminUpdateRatingRequest struct {
	Content string     `json:"content" validate:"required"`
	Star    int        `json:"star" validate:"required,gte=1,lte=5"`
	UserID  *uuid.UUID `json:"user_id"`
}

// Response DTOs

type RatingResponse struct {
	ID         uint                `json:"id"`
	UserID     uuid.UUID           `json:"user_id"`
	UserName   string              `json:"user_name,omitempty"`
	HospitalID uint                `json:"hospital_id"`
	Hospital   *HospitalResponse   `json:"hospital,omitempty"`
	Content    string              `json:"content"`
	Star       int                 `json:"star"`
	Replies    []RateReplyResponse `json:"replies,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type RatingSummaryResponse struct {
	HospitalID uint            `json:"hospital_id"`
	Total      int64           `json:"total"`
	Average    decimal.Decimal `json:"average"`
}
