package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/mocks"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuditLogHandler_GetAllAuditLogs(t *testing.T) {
	uc := new(mocks.AuditLogUsecase)
	uc.On("GetAllAuditLogs", mock.Anything, 2, 10).Return(&dto.AuditLogListResponse{Total: 12}, nil)
	h := NewAuditLogHandler(uc)

	rec := httptest.NewRecorder()
	h.GetAllAuditLogs(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs?page=2&limit=10", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestAuditLogHandler_GetAuditLog(t *testing.T) {
	uc := new(mocks.AuditLogUsecase)
	uc.On("GetAuditLog", mock.Anything, int64(5)).Return(nil, usecase.ErrAuditLogNotFound)
	h := NewAuditLogHandler(uc)

	rec := httptest.NewRecorder()
	h.GetAuditLog(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs/5", nil), "5"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.GetAuditLog(rec, withID(httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs/x", nil), "x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
