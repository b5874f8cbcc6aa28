package valueobject

import (
	"strings"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
)

const (
	usernameMinLen = 3
	usernameMaxLen = 20
)

// Username is a 3-20 character handle, trimmed of surrounding whitespace.
type Username struct {
	value string
}

func NewUsername(raw string) (Username, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Username{}, apperrors.ErrInvalidUsername
	}
	if n := len([]rune(v)); n < usernameMinLen || n > usernameMaxLen {
		return Username{}, apperrors.ErrInvalidUsername
	}
	return Username{value: v}, nil
}

func (u Username) String() string         { return u.value }
func (u Username) Equals(o Username) bool { return u.value == o.value }
