package apperrors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error carrying the HTTP status
// and stable error code the handlers report to clients.
type AppError struct {
	Code          string
	UserMessage   string
	HTTPStatus    int
	OriginalError error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
	}
	return e.UserMessage
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// Common error codes
const (
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeNotAuthorized      = "NOT_AUTHORIZED"
	ErrCodeDuplicateID        = "DUPLICATE_PROPERTY_ID"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeDuplicateFavorite  = "DUPLICATE_FAVORITE"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEvaluationFailed   = "EVALUATION_FAILED"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// NewAppError creates a new AppError instance.
func NewAppError(code, userMessage string, status int, originalErr error) *AppError {
	return &AppError{
		Code:          code,
		UserMessage:   userMessage,
		HTTPStatus:    status,
		OriginalError: originalErr,
	}
}

func Validation(message string) *AppError {
	return NewAppError(ErrCodeValidationFailed, message, http.StatusBadRequest, nil)
}

func NotFound(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound, nil)
}

func NotAuthorized(message string) *AppError {
	return NewAppError(ErrCodeNotAuthorized, message, http.StatusForbidden, nil)
}

func Internal(err error) *AppError {
	return NewAppError(ErrCodeInternal, "Server error", http.StatusInternalServerError, err)
}
