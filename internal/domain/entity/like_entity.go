package entity

import (
	"time"

	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// Like marks that a user liked a tweet. One per (user, tweet) pair, enforced
// by the use-case pre-check plus a unique index in storage.
type Like struct {
	ID        valueobject.LikeID
	UserID    valueobject.UserID
	TweetID   valueobject.TweetID
	CreatedAt time.Time
}

func NewLike(userID valueobject.UserID, tweetID valueobject.TweetID) *Like {
	return &Like{
		ID:        valueobject.NewLikeID(),
		UserID:    userID,
		TweetID:   tweetID,
		CreatedAt: time.Now().UTC(),
	}
}

func ReconstructLike(id valueobject.LikeID, userID valueobject.UserID, tweetID valueobject.TweetID, createdAt time.Time) *Like {
	return &Like{ID: id, UserID: userID, TweetID: tweetID, CreatedAt: createdAt}
}
