package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/simranbali-ace04/CampusHubX/internal/usecase"
)

// Envelope is the uniform response shape of every endpoint.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data"`
	Message string     `json:"message"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody carries the stable error code clients switch on.
type ErrorBody struct {
	Code string `json:"code"`
}

// PageData wraps a result page with its pagination block.
type PageData struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Pagination describes one page of a paginated response.
type Pagination struct {
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

func newPageData(items any, total, page, limit int64) PageData {
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	return PageData{
		Data: items,
		Pagination: Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	}
}

func writeSuccess(w http.ResponseWriter, status int, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func writeFailure(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(Envelope{
		Success: false,
		Data:    nil,
		Message: message,
		Error:   &ErrorBody{Code: code},
	})
}

// writeError maps domain errors onto HTTP statuses and stable error codes.
func writeError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		writeFailure(w, http.StatusNotFound, "PROFILE_NOT_FOUND", "profile not found")
	case errors.Is(err, usecase.ErrNotFound):
		writeFailure(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, usecase.ErrForbidden):
		writeFailure(w, http.StatusForbidden, "FORBIDDEN", "access denied")
	case errors.Is(err, usecase.ErrInvalidTransition):
		writeFailure(w, http.StatusBadRequest, "INVALID_TRANSITION", "status transition not allowed")
	case errors.Is(err, usecase.ErrInvalidStatus):
		writeFailure(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid status value")
	case errors.Is(err, usecase.ErrDuplicateApplication):
		writeFailure(w, http.StatusConflict, "DUPLICATE_APPLICATION", "you have already applied to this opportunity")
	default:
		logger.Error().Err(err).Msg("request failed")
		writeFailure(w, http.StatusInternalServerError, "INTERNAL", "something went wrong")
	}
}

func writeValidationError(w http.ResponseWriter, message string) {
	writeFailure(w, http.StatusBadRequest, "VALIDATION_ERROR", message)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeValidationError(w, "invalid request body")
		return false
	}

	return true
}
