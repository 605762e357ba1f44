package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/radit-thy/G3-Carefinder-Backend/config"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/dto"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/delivery/http/middleware"
	"github.com/radit-thy/G3-Carefinder-Backend/internal/usecase"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/response"
	"github.com/radit-thy/G3-Carefinder-Backend/pkg/validator"
)

type RatingHandler struct {
	ratingUsecase usecase.RatingUsecase
	validator     *validator.CustomValidator
	compat        config.CompatConfig
}

func NewRatingHandler(ratingUsecase usecase.RatingUsecase, validator *validator.CustomValidator, compat config.CompatConfig) *RatingHandler {
	return &RatingHandler{
		ratingUsecase: ratingUsecase,
		validator:     validator,
		compat:        compat,
	}
}

// List returns the ratings visible to the caller
// @Summary List ratings
// @Tags Ratings
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rates [get]
func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	ratings, err := h.ratingUsecase.List(r.Context(), userID)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: ratings})
}

// Get returns one rating
// @Summary Get a rating
// @Tags Ratings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Rating ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rates/{id} [get]
func (h *RatingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Rating not found")
		return
	}

	rating, err := h.ratingUsecase.Get(r.Context(), userID, id)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: rating})
}

// Create rates a hospital
// @Summary Rate a hospital
// @Tags Ratings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRatingRequest true "Create Rating Request"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rates [post]
func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	rating, err := h.ratingUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Rating added successfully", rating)
}

// Update rewrites the caller's own rating
// @Summary Update a rating
// @Tags Ratings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Rating ID"
// @Param request body dto.UpdateRatingRequest true "Update Rating Request"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rates/{id} [put]
func (h *RatingHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Rating not found")
		return
	}

	var req dto.UpdateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	rating, err := h.ratingUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Rating has been updated", rating)
}

// Delete removes the caller's own rating
// @Summary Delete a rating
// @Tags Ratings
// @Security BearerAuth
// @Produce json
// @Param id path int true "Rating ID"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rates/{id} [delete]
func (h *RatingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Rating not found")
		return
	}

	if err := h.ratingUsecase.Delete(r.Context(), userID, id); err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Rating has been deleted", nil)
}

// HospitalSummary returns the rating count and average of a hospital
// @Summary Hospital rating summary
// @Tags Ratings
// @Produce json
// @Param id path int true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hospitals/{id}/rating [get]
func (h *RatingHandler) HospitalSummary(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Hospital not found")
		return
	}

	summary, err := h.ratingUsecase.HospitalSummary(r.Context(), id)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: summary})
}

// AdminList returns every rating
// @Summary List all ratings (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/rates [get]
func (h *RatingHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.ratingUsecase.AdminList(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: ratings})
}

// AdminUpdate edits any rating and may reassign its author
// @Summary Update a rating (admin)
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Rating ID"
// @Param request body dto.AdminUpdateRatingRequest true "Admin Update Rating Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /admin/rates/{id} [put]
func (h *RatingHandler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Rating not found")
		return
	}

	var req dto.AdminUpdateRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	rating, err := h.ratingUsecase.AdminUpdate(r.Context(), adminID, id, &req)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Rating has been updated", rating)
}

// AdminDelete removes any rating
// @Summary Delete a rating (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Rating ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/rates/{id} [delete]
func (h *RatingHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Rating not found")
		return
	}

	if err := h.ratingUsecase.AdminDelete(r.Context(), adminID, id); err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Rating has been deleted", nil)
}

func (h *RatingHandler) fail(w http.ResponseWriter, err error) {
	if writeDenied(w, err) {
		return
	}
	switch {
	case errors.Is(err, usecase.ErrRatingNotFound):
		response.NotFound(w, "Rating not found")
	case errors.Is(err, usecase.ErrHospitalNotFound):
		response.NotFound(w, "Hospital not found")
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(w, "User not found")
	case errors.Is(err, usecase.ErrInvalidStar):
		response.ValidationError(w, map[string]string{"star": "star must be between 1 and 5"})
	default:
		writeUnexpected(w, http.StatusUnprocessableEntity, "Failed to process rating", err, h.compat.ExposeErrors)
	}
}
