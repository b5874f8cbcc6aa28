package entity

import (
	"time"

	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// User is the aggregate root for the account domain. Username and email
// uniqueness is enforced by the storage layer, not here.
type User struct {
	ID          valueobject.UserID
	Username    valueobject.Username
	Email       valueobject.Email
	Password    valueobject.Password
	DisplayName *string
	Bio         *string
	AvatarURL   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUser creates an account from registration input, hashing the plaintext
// password.
func NewUser(username valueobject.Username, email valueobject.Email, plainPassword string) (*User, error) {
	pwd, err := valueobject.NewPassword(plainPassword)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	return &User{
		ID:        valueobject.NewUserID(),
		Username:  username,
		Email:     email,
		Password:  pwd,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ReconstructUser rehydrates a stored account; the password is already hashed.
func ReconstructUser(id valueobject.UserID, username valueobject.Username, email valueobject.Email,
	password valueobject.Password, displayName, bio, avatarURL *string, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:          id,
		Username:    username,
		Email:       email,
		Password:    password,
		DisplayName: displayName,
		Bio:         bio,
		AvatarURL:   avatarURL,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// UpdateProfile replaces all three profile fields atomically. Callers must
// pass the current value of any field they want to keep; a nil clears it.
func (u *User) UpdateProfile(displayName, bio, avatarURL *string) {
	u.DisplayName = displayName
	u.Bio = bio
	u.AvatarURL = avatarURL
	u.UpdatedAt = time.Now().UTC()
}

// SetAvatarURL updates only the avatar, used by the upload flow.
func (u *User) SetAvatarURL(url string) {
	u.AvatarURL = &url
	u.UpdatedAt = time.Now().UTC()
}

// Equals compares by identity only.
func (u *User) Equals(other *User) bool {
	if other == nil {
		return false
	}
	return u.ID.Equals(other.ID)
}
