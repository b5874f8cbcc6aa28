package application

import (
	"context"
	"io"
	"sort"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	domainsvc "github.com/oksasatya/go-twitter-clone/internal/domain/service"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// In-memory repositories backing the use-case tests. They mirror the
// postgres implementations' contracts: lookups return (nil, nil) when
// absent, deletes of missing rows are no-ops.

type memUserRepo struct {
	users   []*entity.User
	saveErr error
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	clone := *u
	r.users = append(r.users, &clone)
	return nil
}

func (r *memUserRepo) Update(_ context.Context, u *entity.User) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	for i, existing := range r.users {
		if existing.ID.Equals(u.ID) {
			clone := *u
			r.users[i] = &clone
		}
	}
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id valueobject.UserID) error {
	for i, u := range r.users {
		if u.ID.Equals(id) {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id valueobject.UserID) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID.Equals(id) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username valueobject.Username) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username.Equals(username) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email valueobject.Email) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email.Equals(email) {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByIDs(_ context.Context, ids []valueobject.UserID) ([]*entity.User, error) {
	var out []*entity.User
	for _, id := range ids {
		for _, u := range r.users {
			if u.ID.Equals(id) {
				clone := *u
				out = append(out, &clone)
			}
		}
	}
	return out, nil
}

type memTweetRepo struct {
	tweets []*entity.Tweet
}

func (r *memTweetRepo) Create(_ context.Context, t *entity.Tweet) error {
	clone := *t
	r.tweets = append(r.tweets, &clone)
	return nil
}

func (r *memTweetRepo) Update(_ context.Context, t *entity.Tweet) error {
	for i, existing := range r.tweets {
		if existing.ID.Equals(t.ID) {
			clone := *t
			r.tweets[i] = &clone
		}
	}
	return nil
}

func (r *memTweetRepo) GetByID(_ context.Context, id valueobject.TweetID) (*entity.Tweet, error) {
	for _, t := range r.tweets {
		if t.ID.Equals(id) {
			clone := *t
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memTweetRepo) GetByUserIDs(_ context.Context, userIDs []valueobject.UserID, limit, offset int) ([]*entity.Tweet, error) {
	authors := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		authors[id.String()] = true
	}
	var matched []*entity.Tweet
	for _, t := range r.tweets {
		if authors[t.UserID.String()] && !t.IsDeleted {
			clone := *t
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})
	if offset >= len(matched) {
		return []*entity.Tweet{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *memTweetRepo) CountByUserIDs(_ context.Context, userIDs []valueobject.UserID) (int, error) {
	authors := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		authors[id.String()] = true
	}
	n := 0
	for _, t := range r.tweets {
		if authors[t.UserID.String()] && !t.IsDeleted {
			n++
		}
	}
	return n, nil
}

type memFollowRepo struct {
	follows []*entity.Follow
}

func (r *memFollowRepo) Create(_ context.Context, f *entity.Follow) error {
	clone := *f
	r.follows = append(r.follows, &clone)
	return nil
}

func (r *memFollowRepo) Delete(_ context.Context, followerID, followedID valueobject.UserID) error {
	for i, f := range r.follows {
		if f.FollowerUserID.Equals(followerID) && f.FollowedUserID.Equals(followedID) {
			r.follows = append(r.follows[:i], r.follows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memFollowRepo) Get(_ context.Context, followerID, followedID valueobject.UserID) (*entity.Follow, error) {
	for _, f := range r.follows {
		if f.FollowerUserID.Equals(followerID) && f.FollowedUserID.Equals(followedID) {
			clone := *f
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memFollowRepo) GetFollowedIDs(_ context.Context, followerID valueobject.UserID) ([]valueobject.UserID, error) {
	var out []valueobject.UserID
	for _, f := range r.follows {
		if f.FollowerUserID.Equals(followerID) {
			out = append(out, f.FollowedUserID)
		}
	}
	return out, nil
}

func (r *memFollowRepo) ListFollowerIDs(_ context.Context, userID valueobject.UserID, limit, offset int) ([]valueobject.UserID, error) {
	var out []valueobject.UserID
	for i := len(r.follows) - 1; i >= 0; i-- {
		if r.follows[i].FollowedUserID.Equals(userID) {
			out = append(out, r.follows[i].FollowerUserID)
		}
	}
	return pageIDs(out, limit, offset), nil
}

func (r *memFollowRepo) ListFollowingIDs(_ context.Context, userID valueobject.UserID, limit, offset int) ([]valueobject.UserID, error) {
	var out []valueobject.UserID
	for i := len(r.follows) - 1; i >= 0; i-- {
		if r.follows[i].FollowerUserID.Equals(userID) {
			out = append(out, r.follows[i].FollowedUserID)
		}
	}
	return pageIDs(out, limit, offset), nil
}

func (r *memFollowRepo) CountFollowers(_ context.Context, userID valueobject.UserID) (int, error) {
	n := 0
	for _, f := range r.follows {
		if f.FollowedUserID.Equals(userID) {
			n++
		}
	}
	return n, nil
}

func (r *memFollowRepo) CountFollowing(_ context.Context, userID valueobject.UserID) (int, error) {
	n := 0
	for _, f := range r.follows {
		if f.FollowerUserID.Equals(userID) {
			n++
		}
	}
	return n, nil
}

func (r *memFollowRepo) FilterFollowedIDs(_ context.Context, followerID valueobject.UserID, candidateIDs []valueobject.UserID) ([]valueobject.UserID, error) {
	var out []valueobject.UserID
	for _, c := range candidateIDs {
		if f, _ := r.Get(context.Background(), followerID, c); f != nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func pageIDs(ids []valueobject.UserID, limit, offset int) []valueobject.UserID {
	if offset >= len(ids) {
		return nil
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}
	return ids[offset:end]
}

type memLikeRepo struct {
	likes []*entity.Like
}

func (r *memLikeRepo) Create(_ context.Context, l *entity.Like) error {
	clone := *l
	r.likes = append(r.likes, &clone)
	return nil
}

func (r *memLikeRepo) Delete(_ context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error {
	for i, l := range r.likes {
		if l.UserID.Equals(userID) && l.TweetID.Equals(tweetID) {
			r.likes = append(r.likes[:i], r.likes[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memLikeRepo) Get(_ context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) (*entity.Like, error) {
	for _, l := range r.likes {
		if l.UserID.Equals(userID) && l.TweetID.Equals(tweetID) {
			clone := *l
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memLikeRepo) GetByTweetID(_ context.Context, tweetID valueobject.TweetID) ([]*entity.Like, error) {
	var out []*entity.Like
	for _, l := range r.likes {
		if l.TweetID.Equals(tweetID) {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memLikeRepo) GetByUserID(_ context.Context, userID valueobject.UserID) ([]*entity.Like, error) {
	var out []*entity.Like
	for _, l := range r.likes {
		if l.UserID.Equals(userID) {
			clone := *l
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memLikeRepo) FilterLikedTweetIDs(_ context.Context, userID valueobject.UserID, tweetIDs []valueobject.TweetID) ([]valueobject.TweetID, error) {
	var out []valueobject.TweetID
	for _, id := range tweetIDs {
		if l, _ := r.Get(context.Background(), userID, id); l != nil {
			out = append(out, id)
		}
	}
	return out, nil
}

type memRetweetRepo struct {
	retweets []*entity.Retweet
}

func (r *memRetweetRepo) Create(_ context.Context, rt *entity.Retweet) error {
	clone := *rt
	r.retweets = append(r.retweets, &clone)
	return nil
}

func (r *memRetweetRepo) Delete(_ context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error {
	for i, rt := range r.retweets {
		if rt.UserID.Equals(userID) && rt.TweetID.Equals(tweetID) {
			r.retweets = append(r.retweets[:i], r.retweets[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memRetweetRepo) Get(_ context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) (*entity.Retweet, error) {
	for _, rt := range r.retweets {
		if rt.UserID.Equals(userID) && rt.TweetID.Equals(tweetID) {
			clone := *rt
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memRetweetRepo) GetByTweetID(_ context.Context, tweetID valueobject.TweetID) ([]*entity.Retweet, error) {
	var out []*entity.Retweet
	for _, rt := range r.retweets {
		if rt.TweetID.Equals(tweetID) {
			clone := *rt
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memRetweetRepo) GetByUserID(_ context.Context, userID valueobject.UserID) ([]*entity.Retweet, error) {
	var out []*entity.Retweet
	for _, rt := range r.retweets {
		if rt.UserID.Equals(userID) {
			clone := *rt
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memRetweetRepo) FilterRetweetedTweetIDs(_ context.Context, userID valueobject.UserID, tweetIDs []valueobject.TweetID) ([]valueobject.TweetID, error) {
	var out []valueobject.TweetID
	for _, id := range tweetIDs {
		if rt, _ := r.Get(context.Background(), userID, id); rt != nil {
			out = append(out, id)
		}
	}
	return out, nil
}

// env bundles the services under test over a shared set of in-memory repos.
type env struct {
	users    *memUserRepo
	tweets   *memTweetRepo
	follows  *memFollowRepo
	likes    *memLikeRepo
	retweets *memRetweetRepo

	userSvc     *UserService
	tweetSvc    *TweetService
	followSvc   *FollowService
	timelineSvc *TimelineQueryService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	auth, err := domainsvc.NewAuthService("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	e := &env{
		users:    &memUserRepo{},
		tweets:   &memTweetRepo{},
		follows:  &memFollowRepo{},
		likes:    &memLikeRepo{},
		retweets: &memRetweetRepo{},
	}
	e.userSvc = NewUserService(e.users, e.follows, auth, nil, "", nil, nil, logger)
	e.tweetSvc = NewTweetService(e.tweets, e.likes, e.retweets, logger, nil, "")
	e.followSvc = NewFollowService(e.users, e.follows, domainsvc.NewSocialGraphService(e.follows), logger)
	e.timelineSvc = NewTimelineQueryService(e.follows, e.likes, e.retweets,
		domainsvc.NewTimelineService(e.tweets), logger)
	return e
}

func (e *env) register(t *testing.T, username, email string) *entity.User {
	t.Helper()
	u, err := e.userSvc.Register(context.Background(), username, email, "s3cret-pass")
	require.NoError(t, err)
	return u
}
