package mocks

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type NotificationService struct{ mock.Mock }

func (m *NotificationService) SendWelcome(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *NotificationService) SendPasswordReset(ctx context.Context, user *entity.User, token string) error {
	return m.Called(ctx, user, token).Error(0)
}
