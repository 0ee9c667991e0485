package service

import (
	"errors"

	"github.com/devNevtis/salesToolsAdminSpace/internal/validation"
)

// Common service errors
var (
	// ErrCompanyNotFound is returned when a company is not found
	ErrCompanyNotFound = errors.New("company not found")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when a user email is already taken
	ErrDuplicateEmail = errors.New("email already in use")

	// ErrManagerHasReports is returned when deleting a manager who still has salespeople assigned
	ErrManagerHasReports = errors.New("manager still has salespeople assigned")

	// ErrPBXDisabled is returned when PBX integration is not configured
	ErrPBXDisabled = errors.New("pbx integration is disabled")
)

// ValidationError carries the complete set of field errors for a rejected
// payload. Handlers translate it into a 422 response.
type ValidationError struct {
	Fields validation.FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func newValidationError(fields validation.FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

func fieldError(path, message string) *ValidationError {
	return &ValidationError{Fields: validation.FieldErrors{path: message}}
}
