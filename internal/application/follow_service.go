package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/repository"
	domainsvc "github.com/oksasatya/go-twitter-clone/internal/domain/service"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// FollowService orchestrates follow/unfollow: graph validation, then the
// construct-and-persist step the validation deliberately leaves to the caller.
type FollowService struct {
	Users   repository.UserRepository
	Follows repository.FollowRepository
	Graph   *domainsvc.SocialGraphService
	Logger  *logrus.Logger
}

func NewFollowService(users repository.UserRepository, follows repository.FollowRepository,
	graph *domainsvc.SocialGraphService, logger *logrus.Logger) *FollowService {
	return &FollowService{Users: users, Follows: follows, Graph: graph, Logger: logger}
}

func (s *FollowService) Follow(ctx context.Context, followerID, followedID valueobject.UserID) error {
	target, err := s.Users.GetByID(ctx, followedID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if target == nil {
		return apperrors.ErrUserNotFound
	}
	if err := s.Graph.ValidateFollow(ctx, followerID, followedID); err != nil {
		return err
	}
	f, err := entity.NewFollow(followerID, followedID)
	if err != nil {
		return err
	}
	// A concurrent identical request can still slip past the pre-check; the
	// unique index turns that into ErrAlreadyFollowing at the repository.
	return s.Follows.Create(ctx, f)
}

func (s *FollowService) Unfollow(ctx context.Context, followerID, followedID valueobject.UserID) error {
	if err := s.Graph.ValidateUnfollow(ctx, followerID, followedID); err != nil {
		return err
	}
	if err := s.Follows.Delete(ctx, followerID, followedID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}
