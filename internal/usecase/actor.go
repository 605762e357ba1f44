package usecase

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/policy"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/repository"

	"github.com/google/uuid"
)

// resolveActor loads the authenticated account and its policy identity.
func resolveActor(ctx context.Context, userRepo repository.UserRepository, userID uuid.UUID) (*entity.User, policy.Actor, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, policy.Actor{}, err
	}
	if user == nil {
		return nil, policy.Actor{}, ErrUserNotFound
	}

	return user, policy.Actor{
		UserID:     user.ID,
		Role:       policy.Role(user.RoleName()),
		HospitalID: user.HospitalID,
	}, nil
}
