package mocks

import (
	"context"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AuditService struct{ mock.Mock }

// NewAuditService returns a mock that accepts any audit call.
func NewAuditService() *AuditService {
	m := new(AuditService)
	m.On("LogEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("LogCreate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	m.On("LogDelete", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	return m
}

func (m *AuditService) LogEvent(ctx context.Context, userID *uuid.UUID, action string, metadata entity.JSON) error {
	return m.Called(ctx, userID, action, metadata).Error(0)
}

func (m *AuditService) LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return m.Called(ctx, userID, action, entityName, entityID, newValue).Error(0)
}

func (m *AuditService) LogUpdate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return m.Called(ctx, userID, action, entityName, entityID, oldValue, newValue).Error(0)
}

func (m *AuditService) LogDelete(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	return m.Called(ctx, userID, action, entityName, entityID, oldValue).Error(0)
}
