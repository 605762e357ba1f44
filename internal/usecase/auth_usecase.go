package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"
	"time"

	"github.com/radit-thy/G3-Carefinder-Backend/internal/converter"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/entity"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/domain/repository"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/infrastructure/storage"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/service"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

const (
	resetTokenLength   = 25
	resetTokenAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	userTypeHospital   = "hospital"
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.MeResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	UploadProfileImage(ctx context.Context, userID uuid.UUID, image io.Reader) (*dto.ProfileImageResponse, error)
	ForgetPassword(ctx context.Context, req *dto.ForgetPasswordRequest) (*dto.ForgetPasswordResult, error)
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.ResetPasswordResult, error)
}

type authUsecase struct {
	log                 *logrus.Logger
	userRepo            repository.UserRepository
	hospitalRepo        repository.HospitalRepository
	passwordResetRepo   repository.PasswordResetRepository
	tokenRepo           repository.TokenRepository
	jwtService          *jwt.JWTService
	imageStorage        storage.ImageStorage
	notificationService service.NotificationService
	auditService        service.AuditService
	resetTTL            time.Duration
	now                 func() time.Time
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	hospitalRepo repository.HospitalRepository,
	passwordResetRepo repository.PasswordResetRepository,
	tokenRepo repository.TokenRepository,
	jwtService *jwt.JWTService,
	imageStorage storage.ImageStorage,
	notificationService service.NotificationService,
	auditService service.AuditService,
	resetTTL time.Duration,
) AuthUsecase {
	return &authUsecase{
		log:                 log,
		userRepo:            userRepo,
		hospitalRepo:        hospitalRepo,
		passwordResetRepo:   passwordResetRepo,
		tokenRepo:           tokenRepo,
		jwtService:          jwtService,
		imageStorage:        imageStorage,
		notificationService: notificationService,
		auditService:        auditService,
		resetTTL:            resetTTL,
		now:                 time.Now,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	roleID := entity.RoleIDUser
	var hospitalID *uint
	if req.UserType == userTypeHospital {
		roleID = entity.RoleIDHospital
		if req.HospitalID != nil {
			hospital, err := u.hospitalRepo.FindByID(ctx, *req.HospitalID)
			if err != nil {
				u.log.Warnf("Failed to find hospital: %+v", err)
				return nil, err
			}
			if hospital == nil {
				return nil, ErrHospitalNotFound
			}
			hospitalID = &hospital.ID
		}
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		RoleID:     roleID,
		HospitalID: hospitalID,
		Name:       req.Name,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Password:   string(hashedPassword),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.notificationService.SendWelcome(ctx, user); err != nil {
		u.log.Warnf("Failed to send welcome mail: %+v", err)
	}
	_ = u.auditService.LogCreate(ctx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), entity.JSON{
		"email": user.Email,
		"role":  user.RoleName(),
	})

	return converter.UserToResponse(user, nil), nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleName())
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.tokenRepo.Store(ctx, user.ID, tokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogEvent(ctx, &user.ID, entity.AuditActionUserLogin, entity.JSON{"token_id": tokenID})

	return &dto.LoginResponse{
		Message:     "Login success",
		AccessToken: accessToken,
		Role:        user.RoleName(),
		TokenType:   "Bearer",
	}, nil
}

// Logout revokes only the token the request was made with.
func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := u.tokenRepo.Revoke(ctx, userID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	_ = u.auditService.LogEvent(ctx, &userID, entity.AuditActionUserLogout, entity.JSON{"token_id": tokenID})
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.MeResponse, error) {
	user, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.MeResponse{
		User:  converter.UserToResponse(user, u.imageStorage.URL),
		Roles: []string{user.RoleName()},
	}, nil
}

func (u *authUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return converter.UserToResponse(user, u.imageStorage.URL), nil
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldValue := entity.JSON{
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"gender":     user.Gender,
		"phone":      user.Phone,
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Gender = req.Gender
	user.Phone = req.Phone

	if err := u.userRepo.Update(ctx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogUpdate(ctx, &user.ID, entity.AuditActionProfileUpdate, "user", user.ID.String(), oldValue, req)

	return converter.UserToResponse(user, u.imageStorage.URL), nil
}

// UploadProfileImage writes the new image first, points the user at it, and
// only then removes the previous file.
func (u *authUsecase) UploadProfileImage(ctx context.Context, userID uuid.UUID, image io.Reader) (*dto.ProfileImageResponse, error) {
	user, err := u.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	key, err := u.imageStorage.SaveProfileImage(user.ID, image)
	if err != nil {
		return nil, err
	}

	previous := user.Profile
	if key != previous {
		if err := u.userRepo.UpdateProfileImage(ctx, user.ID, key); err != nil {
			u.log.Warnf("Failed to update profile image: %+v", err)
			if delErr := u.imageStorage.Delete(key); delErr != nil {
				u.log.Warnf("Failed to remove orphaned image %s: %+v", key, delErr)
			}
			return nil, err
		}

		if err := u.imageStorage.Delete(previous); err != nil {
			u.log.Warnf("Failed to remove previous image %s: %+v", previous, err)
		}

		_ = u.auditService.LogUpdate(ctx, &user.ID, entity.AuditActionProfileImage, "user", user.ID.String(), previous, key)
	}

	return &dto.ProfileImageResponse{URL: u.imageStorage.URL(key)}, nil
}

func (u *authUsecase) ForgetPassword(ctx context.Context, req *dto.ForgetPasswordRequest) (*dto.ForgetPasswordResult, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return &dto.ForgetPasswordResult{Found: false}, nil
	}

	token, err := generateResetToken()
	if err != nil {
		u.log.Warnf("Failed to generate reset token: %+v", err)
		return nil, err
	}

	reset := &entity.PasswordReset{
		Email:     user.Email,
		Token:     token,
		CreatedAt: u.now(),
	}
	if err := u.passwordResetRepo.Create(ctx, reset); err != nil {
		u.log.Warnf("Failed to create password reset: %+v", err)
		return nil, err
	}

	if err := u.notificationService.SendPasswordReset(ctx, user, token); err != nil {
		u.log.Warnf("Failed to send password reset mail: %+v", err)
		return nil, err
	}

	return &dto.ForgetPasswordResult{Found: true, Token: token}, nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) (*dto.ResetPasswordResult, error) {
	reset, err := u.passwordResetRepo.FindByToken(ctx, req.ResetToken)
	if err != nil {
		u.log.Warnf("Failed to find password reset: %+v", err)
		return nil, err
	}
	if reset == nil {
		return &dto.ResetPasswordResult{Valid: false}, nil
	}
	if reset.Expired(u.resetTTL, u.now()) {
		if err := u.passwordResetRepo.DeleteByToken(ctx, reset.Token); err != nil {
			u.log.Warnf("Failed to delete expired password reset: %+v", err)
		}
		return &dto.ResetPasswordResult{Valid: false}, nil
	}

	user, err := u.userRepo.FindByEmail(ctx, reset.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return &dto.ResetPasswordResult{Valid: false}, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	if err := u.userRepo.UpdatePassword(ctx, user.ID, string(hashedPassword)); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return nil, err
	}

	if err := u.passwordResetRepo.DeleteByToken(ctx, reset.Token); err != nil {
		u.log.Warnf("Failed to delete password reset: %+v", err)
		return nil, err
	}

	// Best effort, the reset is already committed.
	if err := u.tokenRepo.RevokeAll(ctx, user.ID); err != nil {
		u.log.Warnf("Failed to revoke sessions after password reset: %+v", err)
	}

	_ = u.auditService.LogEvent(ctx, &user.ID, entity.AuditActionPasswordReset, nil)

	return &dto.ResetPasswordResult{Valid: true, NewPassword: req.Password}, nil
}

func (u *authUsecase) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// generateResetToken returns a random alphanumeric token of resetTokenLength characters.
func generateResetToken() (string, error) {
	limit := big.NewInt(int64(len(resetTokenAlphabet)))
	b := make([]byte, resetTokenLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		b[i] = resetTokenAlphabet[n.Int64()]
	}
	return string(b), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
