package mocks

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type PasswordResetRepository struct{ mock.Mock }

func (m *PasswordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	return m.Called(ctx, reset).Error(0)
}

func (m *PasswordResetRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PasswordReset), args.Error(1)
}

func (m *PasswordResetRepository) DeleteByToken(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
