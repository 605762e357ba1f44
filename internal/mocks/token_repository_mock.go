package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type TokenRepository struct{ mock.Mock }

func (m *TokenRepository) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return m.Called(ctx, userID, tokenID, ttl).Error(0)
}

func (m *TokenRepository) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *TokenRepository) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return m.Called(ctx, userID, tokenID).Error(0)
}

func (m *TokenRepository) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}
