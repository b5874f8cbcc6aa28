package repository

import (
	"context"

	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// LikeRepository defines the persistence contract for likes. Delete of a
// missing pair is a no-op, not an error.
type LikeRepository interface {
	Create(ctx context.Context, l *entity.Like) error
	Delete(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error
	Get(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) (*entity.Like, error)
	GetByTweetID(ctx context.Context, tweetID valueobject.TweetID) ([]*entity.Like, error)
	GetByUserID(ctx context.Context, userID valueobject.UserID) ([]*entity.Like, error)
	// FilterLikedTweetIDs returns the subset of tweetIDs the user has liked,
	// in one query.
	FilterLikedTweetIDs(ctx context.Context, userID valueobject.UserID, tweetIDs []valueobject.TweetID) ([]valueobject.TweetID, error)
}
