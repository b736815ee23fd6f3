package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("missing alert event")

	assert.Equal(t, "Input validation failed: missing alert event", err.Error())
	assert.Equal(t, "missing alert event", err.Details())
	assert.Empty(t, ErrValidationFailed.Details())
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrValidationFailed)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to create alert")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())

	var appErr AppError
	require.ErrorAs(t, fmt.Errorf("outer: %w", err), &appErr)
	assert.Equal(t, "failed to create alert", appErr.Details())
}
