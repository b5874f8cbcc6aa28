package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/repository"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

type RetweetRepository struct {
	pool *pgxpool.Pool
}

func NewRetweetRepository(pool *pgxpool.Pool) *RetweetRepository {
	return &RetweetRepository{pool: pool}
}

func (r *RetweetRepository) Create(ctx context.Context, rt *entity.Retweet) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO retweets (id, user_id, tweet_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, rt.ID.String(), rt.UserID.String(), rt.TweetID.String(), rt.CreatedAt)
	if _, ok := uniqueViolation(err); ok {
		return apperrors.Wrap(apperrors.ErrAlreadyRetweeted, err)
	}
	return err
}

func (r *RetweetRepository) Delete(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM retweets WHERE user_id = $1 AND tweet_id = $2
	`, userID.String(), tweetID.String())
	return err
}

func (r *RetweetRepository) Get(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) (*entity.Retweet, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, tweet_id, created_at FROM retweets
		WHERE user_id = $1 AND tweet_id = $2
	`, userID.String(), tweetID.String())
	rt, err := scanRetweet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *RetweetRepository) GetByTweetID(ctx context.Context, tweetID valueobject.TweetID) ([]*entity.Retweet, error) {
	return r.list(ctx, `SELECT id, user_id, tweet_id, created_at FROM retweets WHERE tweet_id = $1 ORDER BY created_at DESC`, tweetID.String())
}

func (r *RetweetRepository) GetByUserID(ctx context.Context, userID valueobject.UserID) ([]*entity.Retweet, error) {
	return r.list(ctx, `SELECT id, user_id, tweet_id, created_at FROM retweets WHERE user_id = $1 ORDER BY created_at DESC`, userID.String())
}

func (r *RetweetRepository) list(ctx context.Context, query string, arg any) ([]*entity.Retweet, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	retweets := make([]*entity.Retweet, 0)
	for rows.Next() {
		rt, err := scanRetweet(rows)
		if err != nil {
			return nil, err
		}
		retweets = append(retweets, rt)
	}
	return retweets, rows.Err()
}

func (r *RetweetRepository) FilterRetweetedTweetIDs(ctx context.Context, userID valueobject.UserID, tweetIDs []valueobject.TweetID) ([]valueobject.TweetID, error) {
	if len(tweetIDs) == 0 {
		return []valueobject.TweetID{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT tweet_id FROM retweets WHERE user_id = $1 AND tweet_id = ANY($2)
	`, userID.String(), tweetIDStrings(tweetIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTweetIDs(rows)
}

func scanRetweet(row pgx.Row) (*entity.Retweet, error) {
	var (
		id, userID, tweetID string
		createdAt           time.Time
	)
	if err := row.Scan(&id, &userID, &tweetID, &createdAt); err != nil {
		return nil, err
	}
	rid, err := valueobject.RetweetIDFromString(id)
	if err != nil {
		return nil, err
	}
	uid, err := valueobject.UserIDFromString(userID)
	if err != nil {
		return nil, err
	}
	tid, err := valueobject.TweetIDFromString(tweetID)
	if err != nil {
		return nil, err
	}
	return entity.ReconstructRetweet(rid, uid, tid, createdAt), nil
}

var _ repository.RetweetRepository = (*RetweetRepository)(nil)
