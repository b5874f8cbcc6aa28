package entity

import (
	"time"

	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// Retweet marks that a user re-shared a tweet. Same one-per-pair rule as Like.
type Retweet struct {
	ID        valueobject.RetweetID
	UserID    valueobject.UserID
	TweetID   valueobject.TweetID
	CreatedAt time.Time
}

func NewRetweet(userID valueobject.UserID, tweetID valueobject.TweetID) *Retweet {
	return &Retweet{
		ID:        valueobject.NewRetweetID(),
		UserID:    userID,
		TweetID:   tweetID,
		CreatedAt: time.Now().UTC(),
	}
}

func ReconstructRetweet(id valueobject.RetweetID, userID valueobject.UserID, tweetID valueobject.TweetID, createdAt time.Time) *Retweet {
	return &Retweet{ID: id, UserID: userID, TweetID: tweetID, CreatedAt: createdAt}
}
