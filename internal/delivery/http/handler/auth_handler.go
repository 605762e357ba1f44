package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/radit-thy/G3-Carefinder-Backend/config"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/http/middleware"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/infrastructure/storage"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/usecase"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/response"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/validator"
)

const multipartOverhead = 1 << 20

type AuthHandler struct {
	authUsecase    usecase.AuthUsecase
	validator      *validator.CustomValidator
	compat         config.CompatConfig
	maxUploadBytes int64
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, compat config.CompatConfig, maxUploadBytes int64) *AuthHandler {
	return &AuthHandler{
		authUsecase:    authUsecase,
		validator:      validator,
		compat:         compat,
		maxUploadBytes: maxUploadBytes,
	}
}

// Register handles account registration
// @Summary Register a new account
// @Description Register a user or hospital account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	user, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			response.ValidationError(w, map[string]string{"email": "email has already been taken"})
		case errors.Is(err, usecase.ErrHospitalNotFound):
			response.ValidationError(w, map[string]string{"hospital_id": "hospital_id is invalid"})
		default:
			writeUnexpected(w, http.StatusBadRequest, "Failed to register", err, h.compat.ExposeErrors)
		}
		return
	}

	response.Success(w, http.StatusCreated, "You have been registered", user)
}

// Login handles login
// @Summary Login
// @Description Login with email and password. Unknown email and wrong password answer identically.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	// Login reports validation errors as a plain 200 body.
	if err := h.validator.Validate(&req); err != nil {
		response.JSON(w, http.StatusOK, h.validator.FormatValidationErrors(err))
		return
	}

	login, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			response.Message(w, http.StatusUnauthorized, "User not found")
			return
		}
		writeUnexpected(w, http.StatusBadRequest, "Failed to login", err, h.compat.ExposeErrors)
		return
	}

	response.JSON(w, http.StatusOK, login)
}

// Logout revokes the token of the current request
// @Summary Logout
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), userID, tokenID); err != nil {
		writeUnexpected(w, http.StatusBadRequest, "Failed to logout", err, h.compat.ExposeErrors)
		return
	}

	response.Success(w, http.StatusOK, "You have been logged out", nil)
}

// Me returns the authenticated account with its role
// @Summary Current account
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	me, err := h.authUsecase.GetCurrentUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		writeUnexpected(w, http.StatusBadRequest, "Failed to get user", err, h.compat.ExposeErrors)
		return
	}

	response.Success(w, http.StatusOK, "Login success", me)
}

// GetProfile returns the profile of the authenticated account
// @Summary Get profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	profile, err := h.authUsecase.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		writeUnexpected(w, http.StatusBadRequest, "Failed to get profile", err, h.compat.ExposeErrors)
		return
	}

	response.Success(w, http.StatusOK, "Profile retrieved successfully", profile)
}

// UpdateProfile updates name, gender and phone
// @Summary Update profile
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Update Profile Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /profile [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.authUsecase.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.NotFound(w, "User not found")
			return
		}
		writeUnexpected(w, http.StatusBadRequest, "Failed to update profile", err, h.compat.ExposeErrors)
		return
	}

	response.Success(w, http.StatusCreated, "You have been updated", profile)
}

// UploadProfileImage stores a new profile picture
// @Summary Upload profile image
// @Description Accepts a jpeg or png in the multipart field "image"
// @Tags Profile
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Profile image"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /profile/image [post]
func (h *AuthHandler) UploadProfileImage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+multipartOverhead)
	file, _, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.ValidationError(w, map[string]string{"image": storage.ErrImageTooLarge.Error()})
			return
		}
		response.ValidationError(w, map[string]string{"image": "image is required"})
		return
	}
	defer file.Close()

	image, err := h.authUsecase.UploadProfileImage(r.Context(), userID, file)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUnsupportedImage),
			errors.Is(err, storage.ErrImageTooLarge),
			errors.Is(err, storage.ErrEmptyImage):
			response.ValidationError(w, map[string]string{"image": err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			response.NotFound(w, "User not found")
		default:
			writeUnexpected(w, http.StatusBadRequest, "Failed to upload profile image", err, h.compat.ExposeErrors)
		}
		return
	}

	response.Success(w, http.StatusCreated, "Your profile has been uploaded", image)
}

// ForgetPassword issues a password reset token
// @Summary Forget password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ForgetPasswordRequest true "Forget Password Request"
// @Success 201 {object} dto.AccountResponse
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} response.Response
// @Router /forget-password [post]
func (h *AuthHandler) ForgetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.ForgetPassword(r.Context(), &req)
	if err != nil {
		writeUnexpected(w, http.StatusBadRequest, "Failed to send password reset", err, h.compat.ExposeErrors)
		return
	}

	if !result.Found {
		response.JSON(w, http.StatusOK, dto.AccountResponse{
			Success: false,
			Message: "We cannot find a user with that e-mail address",
		})
		return
	}

	body := dto.AccountResponse{
		Success: true,
		Message: "We have e-mailed your password reset link!",
	}
	if h.compat.EchoResetSecrets {
		body.ResetToken = result.Token
	}
	response.JSON(w, http.StatusCreated, body)
}

// ResetPassword consumes a reset token and sets a new password
// @Summary Reset password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} dto.AccountResponse
// @Router /reset-password [post]
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.ResetPassword(r.Context(), &req)
	if err != nil {
		body := dto.AccountResponse{Success: false, Message: "Error resetting your password!!"}
		if h.compat.ExposeErrors {
			body.Error = err.Error()
		}
		response.JSON(w, http.StatusOK, body)
		return
	}

	if !result.Valid {
		response.JSON(w, http.StatusOK, dto.AccountResponse{Success: false, Message: "Invalid token"})
		return
	}

	body := dto.AccountResponse{Success: true, Message: "Your password has been reset"}
	if h.compat.EchoResetSecrets {
		body.NewPassword = result.NewPassword
	}
	response.JSON(w, http.StatusOK, body)
}
