package repository

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
)

type PasswordResetRepository interface {
	Create(ctx context.Context, reset *entity.PasswordReset) error
	FindByToken(ctx context.Context, token string) (*entity.PasswordReset, error)
	DeleteByToken(ctx context.Context, token string) error
}
