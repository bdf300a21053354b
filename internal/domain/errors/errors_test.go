package errors

import (
	"net/http"
	"testing"

	"campusradar/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapMessage_KeepsIdentityAndAddsDetails(t *testing.T) {
	err := ErrInvalidArgument.WrapMessage("user id is required")

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrInvalidRadius)
	assert.Equal(t, "invalid argument: user id is required", err.Error())

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "INVALID_ARGUMENT", appErr.ErrorCode())
	assert.Equal(t, "invalid argument", appErr.Message())
	assert.Equal(t, "user id is required", appErr.Details())

	// the predefined value is untouched
	assert.Empty(t, ErrInvalidArgument.Details())
}

func TestBaseError_SurvivesWrapping(t *testing.T) {
	err := errors.Wrap(ErrCacheState, "closest_user")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
	assert.ErrorIs(t, err, ErrCacheState)
}
