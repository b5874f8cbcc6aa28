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

type LikeRepository struct {
	pool *pgxpool.Pool
}

func NewLikeRepository(pool *pgxpool.Pool) *LikeRepository {
	return &LikeRepository{pool: pool}
}

func (r *LikeRepository) Create(ctx context.Context, l *entity.Like) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO likes (id, user_id, tweet_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, l.ID.String(), l.UserID.String(), l.TweetID.String(), l.CreatedAt)
	if _, ok := uniqueViolation(err); ok {
		return apperrors.Wrap(apperrors.ErrAlreadyLiked, err)
	}
	return err
}

func (r *LikeRepository) Delete(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM likes WHERE user_id = $1 AND tweet_id = $2
	`, userID.String(), tweetID.String())
	return err
}

func (r *LikeRepository) Get(ctx context.Context, userID valueobject.UserID, tweetID valueobject.TweetID) (*entity.Like, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, tweet_id, created_at FROM likes
		WHERE user_id = $1 AND tweet_id = $2
	`, userID.String(), tweetID.String())
	l, err := scanLike(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LikeRepository) GetByTweetID(ctx context.Context, tweetID valueobject.TweetID) ([]*entity.Like, error) {
	return r.list(ctx, `SELECT id, user_id, tweet_id, created_at FROM likes WHERE tweet_id = $1 ORDER BY created_at DESC`, tweetID.String())
}

func (r *LikeRepository) GetByUserID(ctx context.Context, userID valueobject.UserID) ([]*entity.Like, error) {
	return r.list(ctx, `SELECT id, user_id, tweet_id, created_at FROM likes WHERE user_id = $1 ORDER BY created_at DESC`, userID.String())
}

func (r *LikeRepository) list(ctx context.Context, query string, arg any) ([]*entity.Like, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	likes := make([]*entity.Like, 0)
	for rows.Next() {
		l, err := scanLike(rows)
		if err != nil {
			return nil, err
		}
		likes = append(likes, l)
	}
	return likes, rows.Err()
}

func (r *LikeRepository) FilterLikedTweetIDs(ctx context.Context, userID valueobject.UserID, tweetIDs []valueobject.TweetID) ([]valueobject.TweetID, error) {
	if len(tweetIDs) == 0 {
		return []valueobject.TweetID{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT tweet_id FROM likes WHERE user_id = $1 AND tweet_id = ANY($2)
	`, userID.String(), tweetIDStrings(tweetIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTweetIDs(rows)
}

func scanLike(row pgx.Row) (*entity.Like, error) {
	var (
		id, userID, tweetID string
		createdAt           time.Time
	)
	if err := row.Scan(&id, &userID, &tweetID, &createdAt); err != nil {
		return nil, err
	}
	lid, err := valueobject.LikeIDFromString(id)
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
	return entity.ReconstructLike(lid, uid, tid, createdAt), nil
}

func tweetIDStrings(ids []valueobject.TweetID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

func scanTweetIDs(rows pgx.Rows) ([]valueobject.TweetID, error) {
	ids := make([]valueobject.TweetID, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		id, err := valueobject.TweetIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ repository.LikeRepository = (*LikeRepository)(nil)
