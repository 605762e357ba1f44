package repository

import (
	"context"
	"errors"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
	domainRepo "github.com/radit-thy/G3-Carefinder-Backend/internal/domain/repository"

	"gorm.io/gorm"
)

type hospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepository(db *gorm.DB) domainRepo.HospitalRepository {
	return &hospitalRepository{db: db}
}

func (r *hospitalRepository) FindByID(ctx context.Context, id uint) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := r.db.WithContext(ctx).First(&hospital, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}
