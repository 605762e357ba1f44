package repository

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RatingSummary aggregates the ratings of one hospital.
type RatingSummary struct {
	Total   int64
	Average decimal.Decimal
}

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	FindByID(ctx context.Context, id uint) (*entity.Rating, error)
	FindAll(ctx context.Context) ([]entity.Rating, error)
	FindByHospitalID(ctx context.Context, hospitalID uint) ([]entity.Rating, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Rating, error)
	Update(ctx context.Context, rating *entity.Rating) error
	Delete(ctx context.Context, id uint) error
	SummaryByHospital(ctx context.Context, hospitalID uint) (*RatingSummary, error)
}
