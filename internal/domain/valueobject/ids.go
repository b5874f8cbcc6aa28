package valueobject

import "github.com/google/uuid"

// Identifiers are UUIDv4 values wrapped per aggregate so that a TweetID can
// never be passed where a UserID is expected. Compared by value.

type UserID struct {
	value string
}

func NewUserID() UserID {
	return UserID{value: uuid.NewString()}
}

// UserIDFromString rehydrates an id loaded from storage.
func UserIDFromString(s string) (UserID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID{value: id.String()}, nil
}

func (id UserID) String() string       { return id.value }
func (id UserID) IsZero() bool         { return id.value == "" }
func (id UserID) Equals(o UserID) bool { return id.value == o.value }

type TweetID struct {
	value string
}

func NewTweetID() TweetID {
	return TweetID{value: uuid.NewString()}
}

func TweetIDFromString(s string) (TweetID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TweetID{}, err
	}
	return TweetID{value: id.String()}, nil
}

func (id TweetID) String() string        { return id.value }
func (id TweetID) IsZero() bool          { return id.value == "" }
func (id TweetID) Equals(o TweetID) bool { return id.value == o.value }

type FollowID struct {
	value string
}

func NewFollowID() FollowID {
	return FollowID{value: uuid.NewString()}
}

func FollowIDFromString(s string) (FollowID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return FollowID{}, err
	}
	return FollowID{value: id.String()}, nil
}

func (id FollowID) String() string { return id.value }

type LikeID struct {
	value string
}

func NewLikeID() LikeID {
	return LikeID{value: uuid.NewString()}
}

func LikeIDFromString(s string) (LikeID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return LikeID{}, err
	}
	return LikeID{value: id.String()}, nil
}

func (id LikeID) String() string { return id.value }

type RetweetID struct {
	value string
}

func NewRetweetID() RetweetID {
	return RetweetID{value: uuid.NewString()}
}

func RetweetIDFromString(s string) (RetweetID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return RetweetID{}, err
	}
	return RetweetID{value: id.String()}, nil
}

func (id RetweetID) String() string { return id.value }
