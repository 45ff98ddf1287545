//nolint:revive // Package name matches the package it tests
package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	assert.NotEqual(t, ErrValidation, ErrPermission)
	assert.NotEqual(t, ErrValidation, ErrNotFound)
	assert.NotEqual(t, ErrNotFound, ErrCancelled)
}

func TestDetailErrorError(t *testing.T) {
	detail := &DetailError{
		Type:     "validation failed",
		Message:  "unknown template: nope",
		Location: "/tmp/out",
		Field:    "--template",
		Context:  map[string]string{"Template": "nope"},
		Hint:     "Valid templates: hello-world, rest-api",
	}

	output := detail.Error()

	assert.Contains(t, output, "Error: validation failed")
	assert.Contains(t, output, "Location: /tmp/out")
	assert.Contains(t, output, "Field: --template")
	assert.Contains(t, output, "Template: nope")
	assert.Contains(t, output, "unknown template: nope")
	assert.Contains(t, output, "Hint: Valid templates")
}

func TestDetailErrorUnwrap(t *testing.T) {
	detail := &DetailError{
		Type:    "test",
		Message: "test message",
		Cause:   ErrValidation,
	}

	assert.True(t, errors.Is(detail, ErrValidation))
	assert.Equal(t, ErrValidation, detail.Unwrap())
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("invalid db type", "--db-type", "Use sqlite, postgresql or mysql")

	require.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var detail *DetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, "validation failed", detail.Type)
	assert.Equal(t, "--db-type", detail.Field)
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("directory does not exist", "./missing", "")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "./missing")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrNotFound, "template lookup failed")

	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Contains(t, wrapped.Error(), "template lookup failed")
}

func TestExitCodeFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"exit error", NewExitError(errors.New("boom"), ExitPermissionDenied), ExitPermissionDenied},
		{"wrapped exit error", fmt.Errorf("outer: %w", NewExitError(errors.New("x"), ExitNotFound)), ExitNotFound},
		{"validation", Wrap(ErrValidation, "bad"), ExitValidationError},
		{"not found", NewNotFoundError("gone", "", ""), ExitNotFound},
		{"permission", NewPermissionError("denied", "/root", ""), ExitPermissionDenied},
		{"cancelled", ErrCancelled, ExitSuccess},
		{"other", errors.New("random"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeFromError(tt.err))
		})
	}
}

func TestExitErrorWithoutCause(t *testing.T) {
	e := &ExitError{Code: 3}
	assert.Equal(t, "exit status 3", e.Error())
	assert.Nil(t, e.Unwrap())
}
