package repository

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
)

type RateReplyRepository interface {
	Create(ctx context.Context, reply *entity.RateReply) error
	FindByID(ctx context.Context, id uint) (*entity.RateReply, error)
	FindAll(ctx context.Context) ([]entity.RateReply, error)
	FindByHospitalID(ctx context.Context, hospitalID uint) ([]entity.RateReply, error)
	Update(ctx context.Context, reply *entity.RateReply) error
	Delete(ctx context.Context, id uint) error
}
