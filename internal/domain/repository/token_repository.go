package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenRepository is the allow-list of issued access tokens. A token that is
// not stored is treated as revoked.
type TokenRepository interface {
	Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error
	RevokeAll(ctx context.Context, userID uuid.UUID) error
}
