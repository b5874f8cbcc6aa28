package entity

import (
	"time"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// Tweet is a single post. Deletion is logical: the row stays, IsDeleted flips.
type Tweet struct {
	ID        valueobject.TweetID
	UserID    valueobject.UserID
	Content   valueobject.TweetContent
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewTweet(userID valueobject.UserID, content valueobject.TweetContent) *Tweet {
	now := time.Now().UTC()
	return &Tweet{
		ID:        valueobject.NewTweetID(),
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func ReconstructTweet(id valueobject.TweetID, userID valueobject.UserID, content valueobject.TweetContent,
	isDeleted bool, createdAt, updatedAt time.Time) *Tweet {
	return &Tweet{
		ID:        id,
		UserID:    userID,
		Content:   content,
		IsDeleted: isDeleted,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// IsAuthor reports whether userID wrote this tweet.
func (t *Tweet) IsAuthor(userID valueobject.UserID) bool {
	return t.UserID.Equals(userID)
}

// Delete marks the tweet deleted. Only the author may delete, and a tweet can
// be deleted once.
func (t *Tweet) Delete(requestingUserID valueobject.UserID) error {
	if !t.IsAuthor(requestingUserID) {
		return apperrors.ErrNotTweetAuthor
	}
	if t.IsDeleted {
		return apperrors.ErrTweetAlreadyDeleted
	}
	t.IsDeleted = true
	t.UpdatedAt = time.Now().UTC()
	return nil
}

func (t *Tweet) Equals(other *Tweet) bool {
	if other == nil {
		return false
	}
	return t.ID.Equals(other.ID)
}
