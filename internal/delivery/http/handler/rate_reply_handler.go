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

type RateReplyHandler struct {
	rateReplyUsecase usecase.RateReplyUsecase
	validator        *validator.CustomValidator
	compat           config.CompatConfig
}

func NewRateReplyHandler(rateReplyUsecase usecase.RateReplyUsecase, validator *validator.CustomValidator, compat config.CompatConfig) *RateReplyHandler {
	return &RateReplyHandler{
		rateReplyUsecase: rateReplyUsecase,
		validator:        validator,
		compat:           compat,
	}
}

// List returns the replies visible to the caller
// @Summary List rating replies
// @Tags Rate Replies
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rate-replies [get]
func (h *RateReplyHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	replies, err := h.rateReplyUsecase.List(r.Context(), userID)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: replies})
}

// Create adds a hospital's reply to a rating
// @Summary Reply to a rating
// @Tags Rate Replies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRateReplyRequest true "Create Reply Request"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rate-replies [post]
func (h *RateReplyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateRateReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reply, err := h.rateReplyUsecase.Create(r.Context(), userID, &req)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Reply added successfully", reply)
}

// Update rewrites a reply owned by the caller's hospital
// @Summary Update a reply
// @Tags Rate Replies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Reply ID"
// @Param request body dto.UpdateRateReplyRequest true "Update Reply Request"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /rate-replies/{id} [put]
func (h *RateReplyHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Reply not found")
		return
	}

	var req dto.UpdateRateReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	reply, err := h.rateReplyUsecase.Update(r.Context(), userID, id, &req)
	if err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Rate has been updated", reply)
}

// Delete removes a reply owned by the caller's hospital
// @Summary Delete a reply
// @Tags Rate Replies
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reply ID"
// @Success 201 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /rate-replies/{id} [delete]
func (h *RateReplyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Reply not found")
		return
	}

	if err := h.rateReplyUsecase.Delete(r.Context(), userID, id); err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Rate has been deleted", nil)
}

// AdminDelete removes any reply
// @Summary Delete a reply (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reply ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/rate-replies/{id} [delete]
func (h *RateReplyHandler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, err := parseID(r)
	if err != nil {
		response.NotFound(w, "Reply not found")
		return
	}

	if err := h.rateReplyUsecase.AdminDelete(r.Context(), adminID, id); err != nil {
		h.fail(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Rate has been deleted", nil)
}

func (h *RateReplyHandler) fail(w http.ResponseWriter, err error) {
	if writeDenied(w, err) {
		return
	}
	switch {
	case errors.Is(err, usecase.ErrRateReplyNotFound):
		response.NotFound(w, "Reply not found")
	case errors.Is(err, usecase.ErrRatingNotFound):
		response.NotFound(w, "Rating not found")
	default:
		writeUnexpected(w, http.StatusUnprocessableEntity, "Failed to process reply", err, h.compat.ExposeErrors)
	}
}
