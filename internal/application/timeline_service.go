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

// FeedItem is one timeline entry annotated for the requesting user.
type FeedItem struct {
	Tweet                  *entity.Tweet
	LikedByCurrentUser     bool
	RetweetedByCurrentUser bool
}

// TimelineQueryService composes the caller's followed set, the domain
// timeline service, and batched like/retweet annotation into the feed use
// case.
type TimelineQueryService struct {
	Follows  repository.FollowRepository
	Likes    repository.LikeRepository
	Retweets repository.RetweetRepository
	Timeline *domainsvc.TimelineService
	Logger   *logrus.Logger
}

func NewTimelineQueryService(follows repository.FollowRepository, likes repository.LikeRepository,
	retweets repository.RetweetRepository, timeline *domainsvc.TimelineService, logger *logrus.Logger) *TimelineQueryService {
	return &TimelineQueryService{
		Follows:  follows,
		Likes:    likes,
		Retweets: retweets,
		Timeline: timeline,
		Logger:   logger,
	}
}

// GetTimeline returns one feed page for userID. Like/retweet status is
// resolved with one subset query each, never per tweet.
func (s *TimelineQueryService) GetTimeline(ctx context.Context, userID valueobject.UserID, page, size int) ([]FeedItem, error) {
	followedIDs, err := s.Follows.GetFollowedIDs(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	tweets, err := s.Timeline.GetTimeline(ctx, followedIDs, page, size)
	if err != nil {
		return nil, err
	}
	if len(tweets) == 0 {
		return []FeedItem{}, nil
	}

	tweetIDs := make([]valueobject.TweetID, 0, len(tweets))
	for _, t := range tweets {
		tweetIDs = append(tweetIDs, t.ID)
	}

	likedIDs, err := s.Likes.FilterLikedTweetIDs(ctx, userID, tweetIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	retweetedIDs, err := s.Retweets.FilterRetweetedTweetIDs(ctx, userID, tweetIDs)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	liked := make(map[string]bool, len(likedIDs))
	for _, id := range likedIDs {
		liked[id.String()] = true
	}
	retweeted := make(map[string]bool, len(retweetedIDs))
	for _, id := range retweetedIDs {
		retweeted[id.String()] = true
	}

	items := make([]FeedItem, 0, len(tweets))
	for _, t := range tweets {
		items = append(items, FeedItem{
			Tweet:                  t,
			LikedByCurrentUser:     liked[t.ID.String()],
			RetweetedByCurrentUser: retweeted[t.ID.String()],
		})
	}
	return items, nil
}

// CountPages reports how many feed pages of the given size exist for userID.
func (s *TimelineQueryService) CountPages(ctx context.Context, userID valueobject.UserID, size int) (int, error) {
	followedIDs, err := s.Follows.GetFollowedIDs(ctx, userID)
	if err != nil {
		return 0, apperrors.Internal(err)
	}
	return s.Timeline.CountPages(ctx, followedIDs, size)
}
