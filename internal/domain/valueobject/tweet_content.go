package valueobject

import (
	"strings"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
)

const tweetContentMaxLen = 280

// TweetContent is the 1-280 character body of a tweet. Trimming happens before
// the length check, so an all-whitespace string is rejected as blank.
type TweetContent struct {
	value string
}

func NewTweetContent(raw string) (TweetContent, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return TweetContent{}, apperrors.ErrInvalidTweetContent
	}
	if len([]rune(v)) > tweetContentMaxLen {
		return TweetContent{}, apperrors.ErrInvalidTweetContent
	}
	return TweetContent{value: v}, nil
}

func (c TweetContent) String() string             { return c.value }
func (c TweetContent) Equals(o TweetContent) bool { return c.value == o.value }
