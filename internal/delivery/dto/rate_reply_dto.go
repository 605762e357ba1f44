package dto

import "time"

// Request DTOs

// CreateRateReplyRequest.HospitalID is accepted but unused; the reply
// always takes the hospital of its rating.
type CreateRateReplyRequest struct {
	RateID     uint   `json:"rate_id" validate:"required,gt=0"`
	HospitalID *uint  `json:"hospital_id" validate:"omitempty,gt=0"`
	Content    string `json:"content" validate:"required"`
}

// UpdateRateReplyRequest.Star is accepted and ignored, replies carry no star.
type UpdateRateReplyRequest struct {
	Content    string `json:"content" validate:"required"`
	HospitalID *uint  `json:"hospital_id" validate:"omitempty,gt=0"`
	Star       *int   `json:"star"`
}

// Response DTOs

type RateReplyResponse struct {
	ID         uint      `json:"id"`
	RateID     uint      `json:"rate_id"`
	HospitalID uint      `json:"hospital_id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
