package mocks

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type RateReplyRepository struct{ mock.Mock }

func (m *RateReplyRepository) Create(ctx context.Context, reply *entity.RateReply) error {
	return m.Called(ctx, reply).Error(0)
}

func (m *RateReplyRepository) FindByID(ctx context.Context, id uint) (*entity.RateReply, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RateReply), args.Error(1)
}

func (m *RateReplyRepository) FindAll(ctx context.Context) ([]entity.RateReply, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RateReply), args.Error(1)
}

func (m *RateReplyRepository) FindByHospitalID(ctx context.Context, hospitalID uint) ([]entity.RateReply, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.RateReply), args.Error(1)
}

func (m *RateReplyRepository) Update(ctx context.Context, reply *entity.RateReply) error {
	return m.Called(ctx, reply).Error(0)
}

func (m *RateReplyRepository) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}
