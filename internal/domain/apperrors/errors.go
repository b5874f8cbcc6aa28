package apperrors

import (
	"errors"
	"fmt"
)

// Kind tags every domain failure so the transport layer can map the whole
// closed set to status codes exhaustively.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindForbidden    Kind = "FORBIDDEN"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindInternal     Kind = "INTERNAL"
)

// Error is the one error type that crosses the application boundary.
// Messages are human-readable and never carry secrets.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets sentinel comparisons match on kind+message pairs so that wrapped
// storage errors still satisfy errors.Is against the sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

func newErr(kind Kind, msg string) *Error { return &Error{Kind: kind, Msg: msg} }

// Wrap attaches an underlying cause to a sentinel, preserving its kind.
func Wrap(sentinel *Error, err error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: err}
}

// Internal wraps an unexpected collaborator failure.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Msg: "internal error", Err: err}
}

// KindOf reports the kind of err, or KindInternal when err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

var (
	// validation
	ErrInvalidUsername     = newErr(KindValidation, "username must be 3-20 characters")
	ErrInvalidEmail        = newErr(KindValidation, "email address is malformed")
	ErrInvalidTweetContent = newErr(KindValidation, "tweet content must be 1-280 characters")
	ErrInvalidPage         = newErr(KindValidation, "page must not be negative")
	ErrInvalidPageSize     = newErr(KindValidation, "page size must be between 1 and 100")
	ErrWeakSecret          = newErr(KindValidation, "signing secret must be at least 32 bytes")

	// not found
	ErrUserNotFound  = newErr(KindNotFound, "user not found")
	ErrTweetNotFound = newErr(KindNotFound, "tweet not found")

	// conflict
	ErrDuplicateUsername   = newErr(KindConflict, "username is already taken")
	ErrDuplicateEmail      = newErr(KindConflict, "email is already registered")
	ErrSelfFollow          = newErr(KindConflict, "users cannot follow themselves")
	ErrAlreadyFollowing    = newErr(KindConflict, "already following this user")
	ErrNotFollowing        = newErr(KindConflict, "not following this user")
	ErrAlreadyLiked        = newErr(KindConflict, "tweet is already liked")
	ErrAlreadyRetweeted    = newErr(KindConflict, "tweet is already retweeted")
	ErrTweetAlreadyDeleted = newErr(KindConflict, "tweet is already deleted")

	// forbidden
	ErrNotTweetAuthor = newErr(KindForbidden, "only the author can delete a tweet")

	// unauthorized, deliberately one message for unknown user and wrong password
	ErrAuthenticationFailed = newErr(KindUnauthorized, "invalid username or password")
)
