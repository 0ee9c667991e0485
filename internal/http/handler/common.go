package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devNevtis/salesToolsAdminSpace/internal/domain"
	"github.com/devNevtis/salesToolsAdminSpace/internal/service"
	"github.com/devNevtis/salesToolsAdminSpace/internal/validation"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// respondValidationErrors sends the complete set of field errors for a
// rejected payload
func respondValidationErrors(w http.ResponseWriter, fields validation.FieldErrors) {
	respondJSON(w, http.StatusBadRequest, domain.APIError{
		Type:   domain.ErrorTypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
		Detail: "One or more fields failed validation",
		Errors: fields,
	})
}

// respondWithError sends a standardized JSON error response
func respondWithError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, domain.APIError{
		Type:   getErrorType(status),
		Title:  http.StatusText(status),
		Status: status,
		Detail: message,
	})
}

// getErrorType returns the appropriate error type for an HTTP status code
func getErrorType(status int) string {
	switch status {
	case http.StatusBadRequest:
		return domain.ErrorTypeBadRequest
	case http.StatusNotFound:
		return domain.ErrorTypeNotFound
	case http.StatusConflict:
		return domain.ErrorTypeConflict
	default:
		return domain.ErrorTypeInternal
	}
}

// handleServiceError maps service errors onto HTTP responses. Unrecognized
// errors become a 500 and are logged.
func handleServiceError(w http.ResponseWriter, logger *zap.Logger, err error, action string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		respondValidationErrors(w, verr.Fields)
		return
	}

	switch {
	case errors.Is(err, service.ErrCompanyNotFound):
		respondWithError(w, http.StatusNotFound, "Company not found")
	case errors.Is(err, service.ErrUserNotFound):
		respondWithError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, service.ErrDuplicateEmail):
		respondWithError(w, http.StatusConflict, "A user with this email already exists")
	case errors.Is(err, service.ErrManagerHasReports):
		respondWithError(w, http.StatusConflict, "Manager still has salespeople assigned")
	case errors.Is(err, service.ErrPBXDisabled):
		respondWithError(w, http.StatusServiceUnavailable, "PBX integration is disabled")
	default:
		logger.Error("request failed", zap.String("action", action), zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parseUUIDParam reads a UUID path parameter. A second return of false means
// the response has already been written.
func parseUUIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes a JSON request body. A second return of false means the
// response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, target interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
