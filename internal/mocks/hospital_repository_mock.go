package mocks

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

type HospitalRepository struct{ mock.Mock }

func (m *HospitalRepository) FindByID(ctx context.Context, id uint) (*entity.Hospital, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Hospital), args.Error(1)
}
