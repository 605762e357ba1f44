package repository

import (
	"context"
	"errors"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
	domainRepo "github.com/radit-thy/G3-Carefinder-Backend/internal/domain/repository"

	"gorm.io/gorm"
)

type rateReplyRepository struct {
	db *gorm.DB
}

func NewRateReplyRepository(db *gorm.DB) domainRepo.RateReplyRepository {
	return &rateReplyRepository{db: db}
}

func (r *rateReplyRepository) Create(ctx context.Context, reply *entity.RateReply) error {
	return r.db.WithContext(ctx).Omit("Rate").Create(reply).Error
}

func (r *rateReplyRepository) FindByID(ctx context.Context, id uint) (*entity.RateReply, error) {
	var reply entity.RateReply
	err := r.db.WithContext(ctx).First(&reply, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reply, nil
}

func (r *rateReplyRepository) FindAll(ctx context.Context) ([]entity.RateReply, error) {
	var replies []entity.RateReply
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (r *rateReplyRepository) FindByHospitalID(ctx context.Context, hospitalID uint) ([]entity.RateReply, error) {
	var replies []entity.RateReply
	err := r.db.WithContext(ctx).Where("hospital_id = ?", hospitalID).Order("created_at DESC").Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (r *rateReplyRepository) Update(ctx context.Context, reply *entity.RateReply) error {
	return r.db.WithContext(ctx).Model(reply).Select("hospital_id", "content").Updates(reply).Error
}

func (r *rateReplyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&entity.RateReply{}, id).Error
}
