package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "required field error",
			field:    "text",
			message:  "required",
			expected: "validation error on field 'text': required",
		},
		{
			name:     "range error",
			field:    "compression_ratio",
			message:  "must be between 0 and 1",
			expected: "validation error on field 'compression_ratio': must be between 0 and 1",
		},
		{
			name:     "empty message",
			field:    "url",
			message:  "",
			expected: "validation error on field 'url': ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_UnwrapsToInvalidInput(t *testing.T) {
	err := fmt.Errorf("summarize: %w", &ValidationError{Field: "text", Message: "required"})

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrDocumentTooLarge))

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "text", validationErr.Field)
}

func TestSentinelErrors_ErrorMessages(t *testing.T) {
	assert.Equal(t, "invalid input", ErrInvalidInput.Error())
	assert.Equal(t, "document too large", ErrDocumentTooLarge.Error())
	assert.NotEqual(t, ErrInvalidInput, ErrDocumentTooLarge)
}
