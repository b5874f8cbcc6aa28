package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/repository"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// TweetService orchestrates the tweet lifecycle and the like/retweet actions.
type TweetService struct {
	Tweets        repository.TweetRepository
	Likes         repository.LikeRepository
	Retweets      repository.RetweetRepository
	Logger        *logrus.Logger
	ES            *elasticsearch.Client
	ESTweetsIndex string
}

func NewTweetService(tweets repository.TweetRepository, likes repository.LikeRepository,
	retweets repository.RetweetRepository, logger *logrus.Logger,
	es *elasticsearch.Client, esTweetsIndex string) *TweetService {
	return &TweetService{
		Tweets:        tweets,
		Likes:         likes,
		Retweets:      retweets,
		Logger:        logger,
		ES:            es,
		ESTweetsIndex: esTweetsIndex,
	}
}

// PostTweet validates content and persists a new tweet, then indexes it for
// search. Indexing is best-effort: the tweet exists once the repository write
// succeeds.
func (s *TweetService) PostTweet(ctx context.Context, userID valueobject.UserID, content string) (*entity.Tweet, error) {
	c, err := valueobject.NewTweetContent(content)
	if err != nil {
		return nil, err
	}
	t := entity.NewTweet(userID, c)
	if err := s.Tweets.Create(ctx, t); err != nil {
		return nil, apperrors.Internal(err)
	}
	_ = s.indexTweet(ctx, t)
	return t, nil
}

// DeleteTweet performs the logical delete. Authorship and double-delete rules
// live on the entity.
func (s *TweetService) DeleteTweet(ctx context.Context, tweetID valueobject.TweetID, requestingUserID valueobject.UserID) error {
	t, err := s.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if t == nil {
		return apperrors.ErrTweetNotFound
	}
	if err := t.Delete(requestingUserID); err != nil {
		return err
	}
	if err := s.Tweets.Update(ctx, t); err != nil {
		return apperrors.Internal(err)
	}
	s.deindexTweet(ctx, t)
	return nil
}

// GetTweet returns a tweet; logically deleted tweets are reported as absent.
func (s *TweetService) GetTweet(ctx context.Context, tweetID valueobject.TweetID) (*entity.Tweet, error) {
	t, err := s.Tweets.GetByID(ctx, tweetID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if t == nil || t.IsDeleted {
		return nil, apperrors.ErrTweetNotFound
	}
	return t, nil
}

// Like records a like. Liking an already-liked tweet is a conflict; the unique
// index in storage backs the pre-check against concurrent requests.
func (s *TweetService) Like(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error {
	if _, err := s.GetTweet(ctx, tweetID); err != nil {
		return err
	}
	existing, err := s.Likes.Get(ctx, userID, tweetID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if existing != nil {
		return apperrors.ErrAlreadyLiked
	}
	return s.Likes.Create(ctx, entity.NewLike(userID, tweetID))
}

// Unlike removes a like. Removing a like that does not exist is a no-op;
// creation and removal are intentionally asymmetric.
func (s *TweetService) Unlike(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error {
	if err := s.Likes.Delete(ctx, userID, tweetID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *TweetService) Retweet(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error {
	if _, err := s.GetTweet(ctx, tweetID); err != nil {
		return err
	}
	existing, err := s.Retweets.Get(ctx, userID, tweetID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if existing != nil {
		return apperrors.ErrAlreadyRetweeted
	}
	return s.Retweets.Create(ctx, entity.NewRetweet(userID, tweetID))
}

func (s *TweetService) Unretweet(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error {
	if err := s.Retweets.Delete(ctx, userID, tweetID); err != nil {
		return apperrors.Internal(err)
	}
	return nil
}

func (s *TweetService) indexTweet(ctx context.Context, t *entity.Tweet) error {
	if s.ES == nil || s.ESTweetsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         t.ID.String(),
		"user_id":    t.UserID.String(),
		"content":    t.Content.String(),
		"created_at": t.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESTweetsIndex, DocumentID: t.ID.String(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("tweet_id", t.ID.String()).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("tweet_id", t.ID.String()).Warn("es index response error")
	}
	return nil
}

func (s *TweetService) deindexTweet(ctx context.Context, t *entity.Tweet) {
	if s.ES == nil || s.ESTweetsIndex == "" {
		return
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	req := esapi.DeleteRequest{Index: s.ESTweetsIndex, DocumentID: t.ID.String()}
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("tweet_id", t.ID.String()).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// TweetSearchHit is one search result document.
type TweetSearchHit struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// SearchTweets performs a match query over tweet content.
func (s *TweetService) SearchTweets(ctx context.Context, q string, size int) ([]TweetSearchHit, error) {
	if s.ES == nil || s.ESTweetsIndex == "" {
		return []TweetSearchHit{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"match": map[string]any{
				"content": q,
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESTweetsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source TweetSearchHit `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, apperrors.Internal(err)
	}

	out := make([]TweetSearchHit, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
