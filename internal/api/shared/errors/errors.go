package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/feral-file/ff-donate/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeTooManyRequests  ErrorCode = "too_many_requests"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Status returns the HTTP status code matching the error code
func (e *APIError) Status() int {
	switch e.Code {
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the envelope every error body is wrapped in
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// Error constructors for common error types
func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: joinDetails(details),
	}
}

// NewMalformedBodyError reports a request body that could not be decoded
func NewMalformedBodyError(cause error) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Malformed request body",
		Details: cause.Error(),
	}
}

func NewValidationError(details any) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: details,
	}
}

func NewTooManyRequestsError(message string) *APIError {
	return &APIError{
		Code:    ErrCodeTooManyRequests,
		Message: message,
	}
}

func NewInternalError(message string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
	}
}

// FromError maps a domain error onto its API error. Unknown errors become
// internal errors that carry no detail of the cause.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return NewValidationError(validationErr.Fields)
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		return NewNotFoundError(capitalize(notFoundErr.Entity) + " not found")
	}

	return NewInternalError("Internal server error")
}

func joinDetails(details []string) any {
	if len(details) == 0 {
		return nil
	}
	return strings.Join(details, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
