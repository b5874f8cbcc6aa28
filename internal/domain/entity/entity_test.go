package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

func mustUsername(t *testing.T, v string) valueobject.Username {
	t.Helper()
	u, err := valueobject.NewUsername(v)
	require.NoError(t, err)
	return u
}

func mustEmail(t *testing.T, v string) valueobject.Email {
	t.Helper()
	e, err := valueobject.NewEmail(v)
	require.NoError(t, err)
	return e
}

func mustContent(t *testing.T, v string) valueobject.TweetContent {
	t.Helper()
	c, err := valueobject.NewTweetContent(v)
	require.NoError(t, err)
	return c
}

func TestNewUser(t *testing.T) {
	u, err := NewUser(mustUsername(t, "alice"), mustEmail(t, "alice@example.com"), "s3cret-pass")
	require.NoError(t, err)

	assert.False(t, u.ID.IsZero())
	assert.Equal(t, "alice", u.Username.String())
	assert.True(t, u.Password.Matches("s3cret-pass"))
	assert.Nil(t, u.DisplayName)
	assert.Nil(t, u.Bio)
	assert.Nil(t, u.AvatarURL)
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestUserUpdateProfile(t *testing.T) {
	u, err := NewUser(mustUsername(t, "alice"), mustEmail(t, "alice@example.com"), "s3cret-pass")
	require.NoError(t, err)

	name := "Alice"
	bio := "hello"
	u.UpdateProfile(&name, &bio, nil)
	require.NotNil(t, u.DisplayName)
	assert.Equal(t, "Alice", *u.DisplayName)
	require.NotNil(t, u.Bio)
	assert.Equal(t, "hello", *u.Bio)
	assert.Nil(t, u.AvatarURL)

	// Full replacement: omitting a field clears it.
	u.UpdateProfile(nil, nil, nil)
	assert.Nil(t, u.DisplayName)
	assert.Nil(t, u.Bio)
}

func TestUserEquals(t *testing.T) {
	a, err := NewUser(mustUsername(t, "alice"), mustEmail(t, "alice@example.com"), "pw-alice-1")
	require.NoError(t, err)
	b, err := NewUser(mustUsername(t, "bob"), mustEmail(t, "bob@example.com"), "pw-bob-22")
	require.NoError(t, err)

	assert.True(t, a.Equals(a))
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))

	// Identity comparison only: same id, different attributes.
	clone := *a
	clone.Username = b.Username
	assert.True(t, a.Equals(&clone))
}

func TestTweetDelete(t *testing.T) {
	author := valueobject.NewUserID()
	other := valueobject.NewUserID()
	tw := NewTweet(author, mustContent(t, "hello"))

	assert.True(t, tw.IsAuthor(author))
	assert.False(t, tw.IsAuthor(other))

	err := tw.Delete(other)
	assert.ErrorIs(t, err, apperrors.ErrNotTweetAuthor)
	assert.False(t, tw.IsDeleted)

	require.NoError(t, tw.Delete(author))
	assert.True(t, tw.IsDeleted)

	err = tw.Delete(author)
	assert.ErrorIs(t, err, apperrors.ErrTweetAlreadyDeleted)
}

func TestTweetDeleteAuthorCheckedFirst(t *testing.T) {
	author := valueobject.NewUserID()
	other := valueobject.NewUserID()
	tw := NewTweet(author, mustContent(t, "hello"))
	require.NoError(t, tw.Delete(author))

	// A non-author hitting an already deleted tweet still gets the
	// authorization error, not the deleted-state one.
	err := tw.Delete(other)
	assert.ErrorIs(t, err, apperrors.ErrNotTweetAuthor)
}

func TestNewFollow(t *testing.T) {
	follower := valueobject.NewUserID()
	followed := valueobject.NewUserID()

	f, err := NewFollow(follower, followed)
	require.NoError(t, err)
	assert.True(t, f.FollowerUserID.Equals(follower))
	assert.True(t, f.FollowedUserID.Equals(followed))

	_, err = NewFollow(follower, follower)
	assert.ErrorIs(t, err, apperrors.ErrSelfFollow)
}

func TestNewLikeAndRetweet(t *testing.T) {
	user := valueobject.NewUserID()
	tweet := valueobject.NewTweetID()

	l := NewLike(user, tweet)
	assert.True(t, l.UserID.Equals(user))
	assert.True(t, l.TweetID.Equals(tweet))
	assert.False(t, l.CreatedAt.IsZero())

	r := NewRetweet(user, tweet)
	assert.True(t, r.UserID.Equals(user))
	assert.True(t, r.TweetID.Equals(tweet))
	assert.False(t, r.CreatedAt.IsZero())
}
