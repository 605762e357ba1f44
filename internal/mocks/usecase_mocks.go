package mocks

import (
	"context"
	"io"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct{ mock.Mock }

func (m *AuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return m.Called(ctx, userID, tokenID).Error(0)
}

func (m *AuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.MeResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MeResponse), args.Error(1)
}

func (m *AuthUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *AuthUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *AuthUsecase) UploadProfileImage(ctx context.Context, userID uuid.UUID, image io.Reader) (*dto.ProfileImageResponse, error) {
	args := m.Called(ctx, userID, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileImageResponse), args.Error(1)
}

func (m *AuthUsecase) ForgetPassword(ctx context.Context, req *dto.ForgetPasswordRequest) (*dto.ForgetPasswordResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ForgetPasswordResult), args.Error(1)
}

func (m *AuthUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.ResetPasswordResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ResetPasswordResult), args.Error(1)
}

type RateReplyUsecase struct{ mock.Mock }

func (m *RateReplyUsecase) List(ctx context.Context, userID uuid.UUID) ([]dto.RateReplyResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RateReplyResponse), args.Error(1)
}

func (m *RateReplyUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateRateReplyRequest) (*dto.RateReplyResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RateReplyResponse), args.Error(1)
}

func (m *RateReplyUsecase) Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateRateReplyRequest) (*dto.RateReplyResponse, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RateReplyResponse), args.Error(1)
}

func (m *RateReplyUsecase) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *RateReplyUsecase) AdminDelete(ctx context.Context, adminID uuid.UUID, id uint) error {
	return m.Called(ctx, adminID, id).Error(0)
}

type RatingUsecase struct{ mock.Mock }

func (m *RatingUsecase) List(ctx context.Context, userID uuid.UUID) ([]dto.RatingResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RatingResponse), args.Error(1)
}

func (m *RatingUsecase) Get(ctx context.Context, userID uuid.UUID, id uint) (*dto.RatingResponse, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *RatingUsecase) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateRatingRequest) (*dto.RatingResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *RatingUsecase) Update(ctx context.Context, userID uuid.UUID, id uint, req *dto.UpdateRatingRequest) (*dto.RatingResponse, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *RatingUsecase) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *RatingUsecase) HospitalSummary(ctx context.Context, hospitalID uint) (*dto.RatingSummaryResponse, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingSummaryResponse), args.Error(1)
}

func (m *RatingUsecase) AdminList(ctx context.Context) ([]dto.RatingResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.RatingResponse), args.Error(1)
}

func (m *RatingUsecase) AdminUpdate(ctx context.Context, adminID uuid.UUID, id uint, req *dto.AdminUpdateRatingRequest) (*dto.RatingResponse, error) {
	args := m.Called(ctx, adminID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.RatingResponse), args.Error(1)
}

func (m *RatingUsecase) AdminDelete(ctx context.Context, adminID uuid.UUID, id uint) error {
	return m.Called(ctx, adminID, id).Error(0)
}

type AuditLogUsecase struct{ mock.Mock }

func (m *AuditLogUsecase) GetAllAuditLogs(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogListResponse), args.Error(1)
}

func (m *AuditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuditLogResponse), args.Error(1)
}
