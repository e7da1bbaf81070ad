package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-donate/internal/domain"
)

func TestFromError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    ErrorCode
		status  int
		message string
	}{
		{
			name:    "validation error",
			err:     &domain.ValidationError{Fields: []domain.FieldError{{Field: "goal", Message: "must be a positive number"}}},
			code:    ErrCodeValidationFailed,
			status:  http.StatusBadRequest,
			message: "Validation failed",
		},
		{
			name:    "wrapped not found error",
			err:     fmt.Errorf("failed to create donation: %w", domain.NewNotFoundError(domain.ENTITY_CAMPAIGN, "c1")),
			code:    ErrCodeNotFound,
			status:  http.StatusNotFound,
			message: "Campaign not found",
		},
		{
			name:    "api error passes through",
			err:     NewMalformedBodyError(fmt.Errorf("unexpected EOF")),
			code:    ErrCodeValidationFailed,
			status:  http.StatusBadRequest,
			message: "Malformed request body",
		},
		{
			name:    "unknown error",
			err:     fmt.Errorf("failed to list campaigns: connection reset"),
			code:    ErrCodeInternalError,
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := FromError(tt.err)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.status, apiErr.Status())
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestFromError_InternalHidesCause(t *testing.T) {
	apiErr := FromError(fmt.Errorf("password=hunter2"))
	assert.Nil(t, apiErr.Details)
	assert.NotContains(t, apiErr.Error(), "hunter2")
}

func TestErrorResponse_JSON(t *testing.T) {
	body, err := json.Marshal(ErrorResponse{Error: FromError(&domain.ValidationError{
		Fields: []domain.FieldError{{Field: "title", Message: "must be at least 3 characters"}},
	})})
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":{"code":"validation_failed","message":"Validation failed","details":[{"field":"title","message":"must be at least 3 characters"}]}}`, string(body))
}

func TestNewNotFoundError(t *testing.T) {
	assert.Nil(t, NewNotFoundError("Post not found").Details)
	assert.Equal(t, "a, b", NewNotFoundError("Post not found", "a", "b").Details)
	assert.Equal(t, http.StatusTooManyRequests, NewTooManyRequestsError("slow down").Status())
}
