package service

import (
	"context"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/repository"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// SocialGraphService validates follow/unfollow requests against the current
// graph. It is stateless and never mutates anything: the caller constructs and
// persists the Follow after a successful validation, so the service stays
// trivially testable with a fake relation lookup.
type SocialGraphService struct {
	follows repository.FollowRepository
}

func NewSocialGraphService(follows repository.FollowRepository) *SocialGraphService {
	return &SocialGraphService{follows: follows}
}

func (s *SocialGraphService) ValidateFollow(ctx context.Context, followerID, followedID valueobject.UserID) error {
	if followerID.Equals(followedID) {
		return apperrors.ErrSelfFollow
	}
	existing, err := s.follows.Get(ctx, followerID, followedID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if existing != nil {
		return apperrors.ErrAlreadyFollowing
	}
	return nil
}

func (s *SocialGraphService) ValidateUnfollow(ctx context.Context, followerID, followedID valueobject.UserID) error {
	existing, err := s.follows.Get(ctx, followerID, followedID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if existing == nil {
		return apperrors.ErrNotFollowing
	}
	return nil
}

func (s *SocialGraphService) IsFollowing(ctx context.Context, followerID, followedID valueobject.UserID) (bool, error) {
	existing, err := s.follows.Get(ctx, followerID, followedID)
	if err != nil {
		return false, apperrors.Internal(err)
	}
	return existing != nil, nil
}
