package repository

import (
	"context"

	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// RetweetRepository defines the persistence contract for retweets.
type RetweetRepository interface {
	Create(ctx context.Context, r *entity.Retweet) error
	Delete(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error
	Get(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) (*entity.Retweet, error)
	GetByTweetID(ctx context.Context, tweetID valueobject.TweetID) ([]*entity.Retweet, error)
	GetByUserID(ctx context.Context, userID valueobject.UserID) ([]*entity.Retweet, error)
	FilterRetweetedTweetIDs(ctx context.Context, userID valueobject.UserID, tweetIDs []valueobject.TweetID) ([]valueobject.TweetID, error)
}
