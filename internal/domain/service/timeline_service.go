package service

import (
	"context"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/repository"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

const (
	timelineMinPageSize = 1
	timelineMaxPageSize = 100
)

// TimelineService assembles the reverse-chronological feed. It issues exactly
// one batched tweet query per call; per-tweet lookups at feed scale are the
// performance property this service protects.
type TimelineService struct {
	tweets repository.TweetRepository
}

func NewTimelineService(tweets repository.TweetRepository) *TimelineService {
	return &TimelineService{tweets: tweets}
}

// GetTimeline returns page (zero-based) of size tweets authored by
// followedUserIDs, newest first, excluding logically deleted tweets. An empty
// author set is the common case for a new account and returns an empty slice
// without touching storage.
func (s *TimelineService) GetTimeline(ctx context.Context, followedUserIDs []valueobject.UserID, page, size int) ([]*entity.Tweet, error) {
	if len(followedUserIDs) == 0 {
		return []*entity.Tweet{}, nil
	}
	if page < 0 {
		return nil, apperrors.ErrInvalidPage
	}
	if size < timelineMinPageSize || size > timelineMaxPageSize {
		return nil, apperrors.ErrInvalidPageSize
	}
	tweets, err := s.tweets.GetByUserIDs(ctx, followedUserIDs, size, page*size)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return tweets, nil
}

// CountPages returns the number of timeline pages for the given author set.
func (s *TimelineService) CountPages(ctx context.Context, followedUserIDs []valueobject.UserID, size int) (int, error) {
	if len(followedUserIDs) == 0 {
		return 0, nil
	}
	if size <= 0 {
		return 0, apperrors.ErrInvalidPageSize
	}
	total, err := s.tweets.CountByUserIDs(ctx, followedUserIDs)
	if err != nil {
		return 0, apperrors.Internal(err)
	}
	return (total + size - 1) / size, nil
}
