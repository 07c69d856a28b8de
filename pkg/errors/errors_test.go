package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorUnknownBecomesInternal(t *testing.T) {
	cause := errors.New("socket closed")
	appErr := FromError(cause)

	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.ErrorIs(t, appErr, cause)
}

func TestFromErrorKeepsTypedError(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", Clone(ErrNotFound, "note not found"))
	appErr := FromError(wrapped)

	assert.Equal(t, "NOT_FOUND", appErr.Code)
	assert.Equal(t, "note not found", appErr.Message)
}

func TestCloneMatchesSentinel(t *testing.T) {
	err := Clone(ErrForbidden, "not the author")

	assert.True(t, errors.Is(err, ErrForbidden))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "forbidden", ErrForbidden.Message)
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("search: %w", Wrap(errors.New("no doc"), ErrInvalidCursor.Code, ErrInvalidCursor.Status, "cursor not found"))

	assert.True(t, HasCode(err, "INVALID_CURSOR"))
	assert.False(t, HasCode(err, "NOT_FOUND"))
	assert.False(t, HasCode(errors.New("plain"), "INVALID_CURSOR"))
}
