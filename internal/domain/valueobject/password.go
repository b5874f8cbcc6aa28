package valueobject

import (
	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 10

// Password holds only a bcrypt hash, never the plaintext. Its String form is a
// fixed placeholder so a stray log line cannot leak the hash.
type Password struct {
	hash string
}

// NewPassword hashes a plaintext password.
func NewPassword(plain string) (Password, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), passwordHashCost)
	if err != nil {
		return Password{}, err
	}
	return Password{hash: string(b)}, nil
}

// PasswordFromHash rehydrates a password loaded from storage.
func PasswordFromHash(hash string) Password {
	return Password{hash: hash}
}

// Matches reports whether plain hashes to the stored value. bcrypt's own
// comparison is resistant to timing differences.
func (p Password) Matches(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plain)) == nil
}

// Hash exposes the stored hash for persistence only.
func (p Password) Hash() string { return p.hash }

func (p Password) String() string { return "[PROTECTED]" }
