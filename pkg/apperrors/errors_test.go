package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("db down")
	err := InternalError(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode)
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(ErrInvalidCredentials)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, "Invalid credentials", appErr.Message)

	wrapped := fmt.Errorf("context: %w", ErrAlreadyApplied)
	appErr, ok = AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestDomainErrorCodes(t *testing.T) {
	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrInsufficientPermissions.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrNotResourceOwner.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrRequestNotPending.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrOwnRequest.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrInvalidStateTransition("request", "no").HTTPCode)
}
