package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

func TestRegister(t *testing.T) {
	e := newEnv(t)

	u := e.register(t, "alice", "alice@example.com")
	assert.Equal(t, "alice", u.Username.String())
	assert.Equal(t, "alice@example.com", u.Email.String())
	assert.True(t, u.Password.Matches("s3cret-pass"))

	stored, err := e.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
}

func TestRegisterValidation(t *testing.T) {
	e := newEnv(t)

	_, err := e.userSvc.Register(context.Background(), "ab", "alice@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidUsername)

	_, err = e.userSvc.Register(context.Background(), "alice", "not-an-email", "s3cret-pass")
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)
}

func TestRegisterDuplicates(t *testing.T) {
	e := newEnv(t)
	e.register(t, "alice", "alice@example.com")

	_, err := e.userSvc.Register(context.Background(), "alice", "other@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateUsername)

	_, err = e.userSvc.Register(context.Background(), "alice2", "alice@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestLogin(t *testing.T) {
	e := newEnv(t)
	u := e.register(t, "alice", "alice@example.com")

	res, err := e.userSvc.Login(context.Background(), "alice", "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, res.User.ID.Equals(u.ID))
	assert.NotEmpty(t, res.Token)
	assert.False(t, res.ExpiresAt.IsZero())

	// The token round-trips through the verifier.
	uid, ok := e.userSvc.Auth.ValidateToken(res.Token)
	require.True(t, ok)
	assert.True(t, u.ID.Equals(uid))
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	e := newEnv(t)
	e.register(t, "alice", "alice@example.com")

	_, unknownErr := e.userSvc.Login(context.Background(), "nobody", "s3cret-pass")
	assert.ErrorIs(t, unknownErr, apperrors.ErrAuthenticationFailed)

	_, wrongErr := e.userSvc.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, wrongErr, apperrors.ErrAuthenticationFailed)

	// Same message either way: the response cannot leak which part failed.
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestGetProfile(t *testing.T) {
	e := newEnv(t)
	u := e.register(t, "alice", "alice@example.com")

	got, err := e.userSvc.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.True(t, got.Equals(u))

	_, err = e.userSvc.GetProfile(context.Background(), valueobject.NewUserID())
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	e := newEnv(t)
	u := e.register(t, "alice", "alice@example.com")

	name := "Alice"
	bio := "gopher"
	updated, err := e.userSvc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{DisplayName: &name, Bio: &bio})
	require.NoError(t, err)
	require.NotNil(t, updated.DisplayName)
	assert.Equal(t, "Alice", *updated.DisplayName)

	// Replacement semantics: the next update without bio clears it.
	updated, err = e.userSvc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{DisplayName: &name})
	require.NoError(t, err)
	assert.Nil(t, updated.Bio)

	stored, err := e.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Bio)
}

func TestGetFollowersAnnotatesCallerFollows(t *testing.T) {
	e := newEnv(t)
	alice := e.register(t, "alice", "alice@example.com")
	bob := e.register(t, "bob", "bob@example.com")
	carol := e.register(t, "carol", "carol@example.com")

	// bob and carol follow alice; carol also follows bob.
	require.NoError(t, e.followSvc.Follow(context.Background(), bob.ID, alice.ID))
	require.NoError(t, e.followSvc.Follow(context.Background(), carol.ID, alice.ID))
	require.NoError(t, e.followSvc.Follow(context.Background(), carol.ID, bob.ID))

	followers, total, err := e.userSvc.GetFollowers(context.Background(), alice.ID, &carol.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, followers, 2)

	byName := map[string]RelatedUser{}
	for _, f := range followers {
		byName[f.User.Username.String()] = f
	}
	assert.True(t, byName["bob"].FollowedByCaller)
	assert.False(t, byName["carol"].FollowedByCaller)
}

func TestGetFollowingAnonymousCaller(t *testing.T) {
	e := newEnv(t)
	alice := e.register(t, "alice", "alice@example.com")
	bob := e.register(t, "bob", "bob@example.com")
	require.NoError(t, e.followSvc.Follow(context.Background(), alice.ID, bob.ID))

	following, total, err := e.userSvc.GetFollowing(context.Background(), alice.ID, nil, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, following, 1)
	assert.True(t, following[0].User.ID.Equals(bob.ID))
	assert.False(t, following[0].FollowedByCaller)
}

func TestListRelationsValidation(t *testing.T) {
	e := newEnv(t)
	alice := e.register(t, "alice", "alice@example.com")

	_, _, err := e.userSvc.GetFollowers(context.Background(), alice.ID, nil, -1, 10)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPage)

	_, _, err = e.userSvc.GetFollowers(context.Background(), alice.ID, nil, 0, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPageSize)

	_, _, err = e.userSvc.GetFollowers(context.Background(), valueobject.NewUserID(), nil, 0, 10)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
