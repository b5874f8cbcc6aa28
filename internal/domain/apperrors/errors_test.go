package apperrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesSentinelIdentity(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	wrapped := Wrap(ErrDuplicateEmail, cause)

	assert.ErrorIs(t, wrapped, ErrDuplicateEmail)
	assert.NotErrorIs(t, wrapped, ErrDuplicateUsername)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, KindConflict, KindOf(wrapped))
}

func TestInternal(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.Equal(t, KindInternal, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "internal error")
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(ErrInvalidUsername))
	assert.Equal(t, KindNotFound, KindOf(ErrUserNotFound))
	assert.Equal(t, KindConflict, KindOf(ErrAlreadyLiked))
	assert.Equal(t, KindForbidden, KindOf(ErrNotTweetAuthor))
	assert.Equal(t, KindUnauthorized, KindOf(ErrAuthenticationFailed))

	// Plain errors default to internal so they never map below a 500.
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}
