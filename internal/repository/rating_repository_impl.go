package repository

import (
	"context"
	"errors"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
	domainRepo "github.com/radit-thy/G3-Carefinder-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) domainRepo.RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	return r.db.WithContext(ctx).Omit("User", "Hospital", "Replies").Create(rating).Error
}

func (r *ratingRepository) FindByID(ctx context.Context, id uint) (*entity.Rating, error) {
	var rating entity.Rating
	err := r.db.WithContext(ctx).Preload("User").Preload("Hospital").Preload("Replies").First(&rating, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) FindAll(ctx context.Context) ([]entity.Rating, error) {
	var ratings []entity.Rating
	err := r.preloaded(ctx).Order("created_at DESC").Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) FindByHospitalID(ctx context.Context, hospitalID uint) ([]entity.Rating, error) {
	var ratings []entity.Rating
	err := r.preloaded(ctx).Where("hospital_id = ?", hospitalID).Order("created_at DESC").Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Rating, error) {
	var ratings []entity.Rating
	err := r.preloaded(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	return r.db.WithContext(ctx).Model(rating).Select("user_id", "content", "star").Updates(rating).Error
}

func (r *ratingRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.Rating{}, id).Error
}

func (r *ratingRepository) SummaryByHospital(ctx context.Context, hospitalID uint) (*domainRepo.RatingSummary, error) {
	var row struct {
		Total   int64
		Average decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).Model(&entity.Rating{}).
		Select("COUNT(*) AS total, AVG(star) AS average").
		Where("hospital_id = ?", hospitalID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	summary := &domainRepo.RatingSummary{Total: row.Total, Average: decimal.Zero}
	if row.Average.Valid {
		summary.Average = row.Average.Decimal.Round(2)
	}
	return summary, nil
}

func (r *ratingRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("User").Preload("Hospital")
}
