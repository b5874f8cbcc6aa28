package repository

import (
	"context"

	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// TweetRepository defines the persistence contract for tweets. GetByUserIDs is
// the single batched query the timeline is built on: non-deleted tweets by any
// of the given authors, newest first (id breaks creation-time ties so pages
// stay stable), sliced by limit/offset.
type TweetRepository interface {
	Create(ctx context.Context, t *entity.Tweet) error
	Update(ctx context.Context, t *entity.Tweet) error
	GetByID(ctx context.Context, id valueobject.TweetID) (*entity.Tweet, error)
	GetByUserIDs(ctx context.Context, userIDs []valueobject.UserID, limit, offset int) ([]*entity.Tweet, error)
	CountByUserIDs(ctx context.Context, userIDs []valueobject.UserID) (int, error)
}
