package entity

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
			field:    "title",
			message:  "Title is required",
			expected: "validation error on field 'title': Title is required",
		},
		{
			name:     "empty message",
			field:    "status",
			message:  "",
			expected: "validation error on field 'status': ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &ValidationError{Field: tt.field, Message: tt.message}
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestValidationError_IsValidationFailed(t *testing.T) {
	err := fmt.Errorf("create article: %w", &ValidationError{Field: "title", Message: "Title is required"})

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.False(t, errors.Is(err, ErrNotFound))

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "title", validationErr.Field)
}

func TestValidationErrors(t *testing.T) {
	ve := ValidationErrors{
		{Field: "title", Message: "Title is required"},
		{Field: "summary", Message: "Summary is required"},
		{Field: "title", Message: "second message"},
	}

	assert.Equal(t, "validation failed: title: Title is required; summary: Summary is required; title: second message", ve.Error())
	assert.Equal(t, []string{"title", "summary", "title"}, ve.Fields())
	assert.True(t, ve.Has("summary"))
	assert.False(t, ve.Has("content"))
	assert.Equal(t, map[string]string{
		"title":   "Title is required",
		"summary": "Summary is required",
	}, ve.Messages())
}

func TestAsValidationErrors(t *testing.T) {
	t.Run("collection wrapped", func(t *testing.T) {
		err := fmt.Errorf("update article: %w", ValidationErrors{{Field: "content", Message: "x"}})
		ve, ok := AsValidationErrors(err)
		require.True(t, ok)
		assert.Equal(t, []string{"content"}, ve.Fields())
		assert.True(t, errors.Is(err, ErrValidationFailed))
	})

	t.Run("single error", func(t *testing.T) {
		ve, ok := AsValidationErrors(UnknownUserError())
		require.True(t, ok)
		assert.Equal(t, []string{"user_id"}, ve.Fields())
	})

	t.Run("unrelated error", func(t *testing.T) {
		_, ok := AsValidationErrors(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestSentinelErrors_ErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "ErrNotFound", err: ErrNotFound, expected: "entity not found"},
		{name: "ErrInvalidInput", err: ErrInvalidInput, expected: "invalid input"},
		{name: "ErrValidationFailed", err: ErrValidationFailed, expected: "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
