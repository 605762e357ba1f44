package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/radit-thy/G3-Carefinder-Backend/config"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/http/middleware"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/infrastructure/storage"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/mocks"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/usecase"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/jwt"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(compat config.CompatConfig) (*AuthHandler, *mocks.AuthUsecase) {
	uc := new(mocks.AuthUsecase)
	return NewAuthHandler(uc, validator.NewValidator(), compat, 1<<20), uc
}

func validRegister() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName:            "Jane",
		LastName:             "Doe",
		Name:                 "Jane Doe",
		Email:                "jane@example.com",
		Password:             "secret",
		PasswordConfirmation: "secret",
		UserType:             "user",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		uc.On("Register", mock.Anything, mock.AnythingOfType("*dto.RegisterRequest")).
			Return(&dto.UserResponse{ID: uuid.New(), Email: "jane@example.com"}, nil)

		rec := httptest.NewRecorder()
		h.Register(rec, newRequest(t, http.MethodPost, "/api/v1/register", validRegister(), uuid.Nil, ""))

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "You have been registered", body["message"])
	})

	t.Run("mismatched confirmation is a field error", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		req := validRegister()
		req.PasswordConfirmation = "other"

		rec := httptest.NewRecorder()
		h.Register(rec, newRequest(t, http.MethodPost, "/api/v1/register", req, uuid.Nil, ""))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		fields := decodeBody(t, rec)["error"].(map[string]interface{})
		assert.Contains(t, fields, "password_confirmation")
		uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		uc.On("Register", mock.Anything, mock.Anything).Return(nil, usecase.ErrEmailAlreadyExists)

		rec := httptest.NewRecorder()
		h.Register(rec, newRequest(t, http.MethodPost, "/api/v1/register", validRegister(), uuid.Nil, ""))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		fields := decodeBody(t, rec)["error"].(map[string]interface{})
		assert.Equal(t, "email has already been taken", fields["email"])
	})

	t.Run("unexpected error hides details by default", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		uc.On("Register", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

		rec := httptest.NewRecorder()
		h.Register(rec, newRequest(t, http.MethodPost, "/api/v1/register", validRegister(), uuid.Nil, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("unexpected error exposed with the compat flag", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{ExposeErrors: true})
		uc.On("Register", mock.Anything, mock.Anything).Return(nil, errors.New("pq: connection refused"))

		rec := httptest.NewRecorder()
		h.Register(rec, newRequest(t, http.MethodPost, "/api/v1/register", validRegister(), uuid.Nil, ""))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "pq: connection refused", decodeBody(t, rec)["error"])
	})
}

func TestAuthHandler_LoginFailuresAreIndistinguishable(t *testing.T) {
	h, uc := newAuthHandler(config.CompatConfig{ExposeErrors: true})
	uc.On("Login", mock.Anything, mock.MatchedBy(func(r *dto.LoginRequest) bool { return r.Email == "nobody@example.com" })).
		Return(nil, usecase.ErrInvalidCredentials)
	uc.On("Login", mock.Anything, mock.MatchedBy(func(r *dto.LoginRequest) bool { return r.Email == "jane@example.com" })).
		Return(nil, usecase.ErrInvalidCredentials)

	unknown := httptest.NewRecorder()
	h.Login(unknown, newRequest(t, http.MethodPost, "/api/v1/login", dto.LoginRequest{Email: "nobody@example.com", Password: "x"}, uuid.Nil, ""))
	wrong := httptest.NewRecorder()
	h.Login(wrong, newRequest(t, http.MethodPost, "/api/v1/login", dto.LoginRequest{Email: "jane@example.com", Password: "bad"}, uuid.Nil, ""))

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, unknown.Body.Bytes(), wrong.Body.Bytes())
	assert.JSONEq(t, `{"message":"User not found"}`, unknown.Body.String())
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("validation errors are a 200 body", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})

		rec := httptest.NewRecorder()
		h.Login(rec, newRequest(t, http.MethodPost, "/api/v1/login", dto.LoginRequest{}, uuid.Nil, ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Contains(t, body, "email")
		assert.Contains(t, body, "password")
		uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		uc.On("Login", mock.Anything, mock.Anything).Return(&dto.LoginResponse{
			Message:     "Login success",
			AccessToken: "abc",
			Role:        "user",
			TokenType:   "Bearer",
		}, nil)

		rec := httptest.NewRecorder()
		h.Login(rec, newRequest(t, http.MethodPost, "/api/v1/login", dto.LoginRequest{Email: "jane@example.com", Password: "secret"}, uuid.Nil, ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "abc", body["access_token"])
		assert.Equal(t, "Bearer", body["token_type"])
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	userID := uuid.New()

	t.Run("revokes the request token", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		uc.On("Logout", mock.Anything, userID, "token-1").Return(nil)

		rec := httptest.NewRecorder()
		h.Logout(rec, newRequest(t, http.MethodPost, "/api/v1/logout", nil, userID, "user"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "You have been logged out", decodeBody(t, rec)["message"])
		uc.AssertExpectations(t)
	})

	t.Run("failure", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		uc.On("Logout", mock.Anything, userID, "token-1").Return(errors.New("redis down"))

		rec := httptest.NewRecorder()
		h.Logout(rec, newRequest(t, http.MethodPost, "/api/v1/logout", nil, userID, "user"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthHandler_ForgetPassword(t *testing.T) {
	req := dto.ForgetPasswordRequest{Email: "jane@example.com"}

	t.Run("unknown email", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{EchoResetSecrets: true})
		uc.On("ForgetPassword", mock.Anything, mock.Anything).Return(&dto.ForgetPasswordResult{Found: false}, nil)

		rec := httptest.NewRecorder()
		h.ForgetPassword(rec, newRequest(t, http.MethodPost, "/api/v1/forget-password", req, uuid.Nil, ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"We cannot find a user with that e-mail address"}`, rec.Body.String())
	})

	t.Run("token echoed only with the compat flag", func(t *testing.T) {
		for _, echo := range []bool{false, true} {
			h, uc := newAuthHandler(config.CompatConfig{EchoResetSecrets: echo})
			uc.On("ForgetPassword", mock.Anything, mock.Anything).Return(&dto.ForgetPasswordResult{Found: true, Token: "tok"}, nil)

			rec := httptest.NewRecorder()
			h.ForgetPassword(rec, newRequest(t, http.MethodPost, "/api/v1/forget-password", req, uuid.Nil, ""))

			assert.Equal(t, http.StatusCreated, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, true, body["success"])
			if echo {
				assert.Equal(t, "tok", body["reset_token"])
			} else {
				assert.NotContains(t, body, "reset_token")
			}
		}
	})
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	req := dto.ResetPasswordRequest{ResetToken: "tok", Password: "new", PasswordConfirmation: "new"}

	t.Run("invalid token", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		uc.On("ResetPassword", mock.Anything, mock.Anything).Return(&dto.ResetPasswordResult{Valid: false}, nil)

		rec := httptest.NewRecorder()
		h.ResetPassword(rec, newRequest(t, http.MethodPost, "/api/v1/reset-password", req, uuid.Nil, ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Invalid token"}`, rec.Body.String())
	})

	t.Run("reset with echoed password", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{EchoResetSecrets: true})
		uc.On("ResetPassword", mock.Anything, mock.Anything).Return(&dto.ResetPasswordResult{Valid: true, NewPassword: "new"}, nil)

		rec := httptest.NewRecorder()
		h.ResetPassword(rec, newRequest(t, http.MethodPost, "/api/v1/reset-password", req, uuid.Nil, ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "Your password has been reset", body["message"])
		assert.Equal(t, "new", body["new_password"])
	})

	t.Run("unexpected error", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		uc.On("ResetPassword", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		rec := httptest.NewRecorder()
		h.ResetPassword(rec, newRequest(t, http.MethodPost, "/api/v1/reset-password", req, uuid.Nil, ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Error resetting your password!!"}`, rec.Body.String())
	})
}

func newImageRequest(t *testing.T, userID uuid.UUID, field string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, "avatar.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/profile/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	ctx := middleware.WithClaims(req.Context(), &jwt.Claims{UserID: userID, Role: "user", TokenID: "token-1"})
	return req.WithContext(ctx)
}

func TestAuthHandler_UploadProfileImage(t *testing.T) {
	userID := uuid.New()

	t.Run("stored", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		uc.On("UploadProfileImage", mock.Anything, userID, mock.Anything).
			Return(&dto.ProfileImageResponse{URL: "http://localhost/images/profiles/x.png"}, nil)

		rec := httptest.NewRecorder()
		h.UploadProfileImage(rec, newImageRequest(t, userID, "image", []byte("png bytes")))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Your profile has been uploaded", decodeBody(t, rec)["message"])
	})

	t.Run("missing field", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})

		rec := httptest.NewRecorder()
		h.UploadProfileImage(rec, newImageRequest(t, userID, "avatar", []byte("png bytes")))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		uc.AssertNotCalled(t, "UploadProfileImage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unsupported content", func(t *testing.T) {
		h, uc := newAuthHandler(config.CompatConfig{})
		uc.On("UploadProfileImage", mock.Anything, userID, mock.Anything).Return(nil, storage.ErrUnsupportedImage)

		rec := httptest.NewRecorder()
		h.UploadProfileImage(rec, newImageRequest(t, userID, "image", []byte("%PDF-1.4")))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		fields := decodeBody(t, rec)["error"].(map[string]interface{})
		assert.Equal(t, storage.ErrUnsupportedImage.Error(), fields["image"])
	})
}

func TestAuthHandler_Me(t *testing.T) {
	userID := uuid.New()
	h, uc := newAuthHandler(config.CompatConfig{})
	uc.On("GetCurrentUser", mock.Anything, userID).Return(&dto.MeResponse{
		User:  &dto.UserResponse{ID: userID},
		Roles: []string{"user"},
	}, nil)

	rec := httptest.NewRecorder()
	h.Me(rec, newRequest(t, http.MethodGet, "/api/v1/me", nil, userID, "user"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Login success", decodeBody(t, rec)["message"])
}
