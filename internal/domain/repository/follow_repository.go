package repository

import (
	"context"

	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// FollowRepository defines the persistence contract for the social graph.
// Delete of a missing pair is a no-op, not an error.
type FollowRepository interface {
	Create(ctx context.Context, f *entity.Follow) error
	Delete(ctx context.Context, followerID, followedID valueobject.UserID) error
	Get(ctx context.Context, followerID, followedID valueobject.UserID) (*entity.Follow, error)
	// GetFollowedIDs lists every account the user follows (timeline source set).
	GetFollowedIDs(ctx context.Context, followerID valueobject.UserID) ([]valueobject.UserID, error)
	// ListFollowerIDs / ListFollowingIDs return one page of relation ids,
	// newest relation first.
	ListFollowerIDs(ctx context.Context, userID valueobject.UserID, limit, offset int) ([]valueobject.UserID, error)
	ListFollowingIDs(ctx context.Context, userID valueobject.UserID, limit, offset int) ([]valueobject.UserID, error)
	CountFollowers(ctx context.Context, userID valueobject.UserID) (int, error)
	CountFollowing(ctx context.Context, userID valueobject.UserID) (int, error)
	// FilterFollowedIDs returns the subset of candidateIDs that followerID
	// follows, in one query.
	FilterFollowedIDs(ctx context.Context, followerID valueobject.UserID, candidateIDs []valueobject.UserID) ([]valueobject.UserID, error)
}
