package valueobject

import (
	"regexp"
	"strings"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// Email is a trimmed address matching a conventional local@domain.tld shape.
type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	v := strings.TrimSpace(raw)
	if v == "" || !emailPattern.MatchString(v) {
		return Email{}, apperrors.ErrInvalidEmail
	}
	return Email{value: v}, nil
}

func (e Email) String() string      { return e.value }
func (e Email) Equals(o Email) bool { return e.value == o.value }
