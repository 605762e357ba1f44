package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "github.com/radit-thy/G3-Carefinder-Backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const scanBatchSize = 100

type tokenRepository struct {
	client *redis.Client
}

func NewTokenRepository(client *redis.Client) domainRepo.TokenRepository {
	return &tokenRepository{client: client}
}

func accessTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
}

func (r *tokenRepository) Store(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, accessTokenKey(userID, tokenID), "valid", ttl).Err()
}

func (r *tokenRepository) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, accessTokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *tokenRepository) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return r.client.Del(ctx, accessTokenKey(userID, tokenID)).Err()
}

// RevokeAll drops every access token of the user.
func (r *tokenRepository) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	pattern := fmt.Sprintf("access_token:%s:*", userID.String())
	iter := r.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan access tokens: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}
