package repository

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
)

type HospitalRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Hospital, error)
}
