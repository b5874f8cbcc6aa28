package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
)

func postAt(t *testing.T, e *env, author *entity.User, content string, at time.Time) *entity.Tweet {
	t.Helper()
	tw, err := e.tweetSvc.PostTweet(context.Background(), author.ID, content)
	require.NoError(t, err)
	tw.CreatedAt = at
	require.NoError(t, e.tweets.Update(context.Background(), tw))
	return tw
}

func TestTimelineEndToEnd(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.register(t, "alice", "alice@example.com")
	bob := e.register(t, "bob", "bob@example.com")
	require.NoError(t, e.followSvc.Follow(ctx, alice.ID, bob.ID))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	first := postAt(t, e, bob, "bob's first", base)
	second := postAt(t, e, bob, "bob's second", base.Add(time.Minute))
	// Alice's own tweets are not in her timeline; she does not follow herself.
	postAt(t, e, alice, "alice talking", base.Add(2*time.Minute))

	feed, err := e.timelineSvc.GetTimeline(ctx, alice.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.True(t, feed[0].Tweet.Equals(second))
	assert.True(t, feed[1].Tweet.Equals(first))
	for _, item := range feed {
		assert.False(t, item.LikedByCurrentUser)
		assert.False(t, item.RetweetedByCurrentUser)
	}
}

func TestTimelineAnnotatesLikesAndRetweets(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.register(t, "alice", "alice@example.com")
	bob := e.register(t, "bob", "bob@example.com")
	require.NoError(t, e.followSvc.Follow(ctx, alice.ID, bob.ID))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	liked := postAt(t, e, bob, "liked one", base)
	retweeted := postAt(t, e, bob, "retweeted one", base.Add(time.Minute))
	plain := postAt(t, e, bob, "plain one", base.Add(2*time.Minute))

	require.NoError(t, e.tweetSvc.Like(ctx, alice.ID, liked.ID))
	require.NoError(t, e.tweetSvc.Retweet(ctx, alice.ID, retweeted.ID))

	feed, err := e.timelineSvc.GetTimeline(ctx, alice.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed, 3)

	byID := map[string]FeedItem{}
	for _, item := range feed {
		byID[item.Tweet.ID.String()] = item
	}
	assert.True(t, byID[liked.ID.String()].LikedByCurrentUser)
	assert.False(t, byID[liked.ID.String()].RetweetedByCurrentUser)
	assert.True(t, byID[retweeted.ID.String()].RetweetedByCurrentUser)
	assert.False(t, byID[retweeted.ID.String()].LikedByCurrentUser)
	assert.False(t, byID[plain.ID.String()].LikedByCurrentUser)
	assert.False(t, byID[plain.ID.String()].RetweetedByCurrentUser)

	// Annotations are per viewer: bob sees his own tweets unmarked.
	require.NoError(t, e.followSvc.Follow(ctx, bob.ID, alice.ID))
	bobFeed, err := e.timelineSvc.GetTimeline(ctx, bob.ID, 0, 10)
	require.NoError(t, err)
	for _, item := range bobFeed {
		assert.False(t, item.LikedByCurrentUser)
	}
}

func TestTimelineExcludesDeletedAndUnfollowed(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.register(t, "alice", "alice@example.com")
	bob := e.register(t, "bob", "bob@example.com")
	carol := e.register(t, "carol", "carol@example.com")
	require.NoError(t, e.followSvc.Follow(ctx, alice.ID, bob.ID))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	kept := postAt(t, e, bob, "kept", base)
	deleted := postAt(t, e, bob, "deleted", base.Add(time.Minute))
	postAt(t, e, carol, "not followed", base.Add(2*time.Minute))
	require.NoError(t, e.tweetSvc.DeleteTweet(ctx, deleted.ID, bob.ID))

	feed, err := e.timelineSvc.GetTimeline(ctx, alice.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.True(t, feed[0].Tweet.Equals(kept))
}

func TestTimelineEmptyForNewAccount(t *testing.T) {
	e := newEnv(t)
	alice := e.register(t, "alice", "alice@example.com")

	feed, err := e.timelineSvc.GetTimeline(context.Background(), alice.ID, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestTimelinePaging(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	alice := e.register(t, "alice", "alice@example.com")
	bob := e.register(t, "bob", "bob@example.com")
	require.NoError(t, e.followSvc.Follow(ctx, alice.ID, bob.ID))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		postAt(t, e, bob, "tweet", base.Add(time.Duration(i)*time.Minute))
	}

	page0, err := e.timelineSvc.GetTimeline(ctx, alice.ID, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page0, 2)

	page2, err := e.timelineSvc.GetTimeline(ctx, alice.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page2, 1)

	pages, err := e.timelineSvc.CountPages(ctx, alice.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, pages)

	_, err = e.timelineSvc.GetTimeline(ctx, alice.ID, -1, 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPage)

	_, err = e.timelineSvc.GetTimeline(ctx, alice.ID, 0, 101)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPageSize)
}
