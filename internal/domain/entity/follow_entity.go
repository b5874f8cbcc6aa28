package entity

import (
	"time"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// Follow is a directed edge in the social graph. Uniqueness of the
// (follower, followed) pair is guaranteed by the social graph service's
// pre-check plus a unique index in storage; the entity only rules out
// self-follows as a second line of defense.
type Follow struct {
	ID             valueobject.FollowID
	FollowerUserID valueobject.UserID
	FollowedUserID valueobject.UserID
	CreatedAt      time.Time
}

func NewFollow(followerUserID, followedUserID valueobject.UserID) (*Follow, error) {
	if followerUserID.Equals(followedUserID) {
		return nil, apperrors.ErrSelfFollow
	}
	return &Follow{
		ID:             valueobject.NewFollowID(),
		FollowerUserID: followerUserID,
		FollowedUserID: followedUserID,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

func ReconstructFollow(id valueobject.FollowID, followerUserID, followedUserID valueobject.UserID, createdAt time.Time) *Follow {
	return &Follow{
		ID:             id,
		FollowerUserID: followerUserID,
		FollowedUserID: followedUserID,
		CreatedAt:      createdAt,
	}
}
