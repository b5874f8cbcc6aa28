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

type TweetRepository struct {
	pool *pgxpool.Pool
}

func NewTweetRepository(pool *pgxpool.Pool) *TweetRepository {
	return &TweetRepository{pool: pool}
}

const tweetColumns = `id, user_id, content, is_deleted, created_at, updated_at`

func scanTweet(row pgx.Row) (*entity.Tweet, error) {
	var (
		id, userID, content  string
		isDeleted            bool
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &userID, &content, &isDeleted, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	tid, err := valueobject.TweetIDFromString(id)
	if err != nil {
		return nil, err
	}
	uid, err := valueobject.UserIDFromString(userID)
	if err != nil {
		return nil, err
	}
	c, err := valueobject.NewTweetContent(content)
	if err != nil {
		return nil, err
	}
	return entity.ReconstructTweet(tid, uid, c, isDeleted, createdAt, updatedAt), nil
}

func (r *TweetRepository) Create(ctx context.Context, t *entity.Tweet) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO tweets (id, user_id, content, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.ID.String(), t.UserID.String(), t.Content.String(), t.IsDeleted, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *TweetRepository) Update(ctx context.Context, t *entity.Tweet) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE tweets
		SET content = $1, is_deleted = $2, updated_at = $3
		WHERE id = $4
	`, t.Content.String(), t.IsDeleted, t.UpdatedAt, t.ID.String())
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.ErrTweetNotFound
	}
	return nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id valueobject.TweetID) (*entity.Tweet, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+tweetColumns+` FROM tweets WHERE id = $1`, id.String())
	t, err := scanTweet(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetByUserIDs is the one batched timeline query: non-deleted tweets by any of
// the authors, newest first with id as the stable tiebreak.
func (r *TweetRepository) GetByUserIDs(ctx context.Context, userIDs []valueobject.UserID, limit, offset int) ([]*entity.Tweet, error) {
	if len(userIDs) == 0 {
		return []*entity.Tweet{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+tweetColumns+`
		FROM tweets
		WHERE user_id = ANY($1) AND is_deleted = FALSE
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, idStrings(userIDs), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tweets := make([]*entity.Tweet, 0, limit)
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}

func (r *TweetRepository) CountByUserIDs(ctx context.Context, userIDs []valueobject.UserID) (int, error) {
	if len(userIDs) == 0 {
		return 0, nil
	}
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM tweets WHERE user_id = ANY($1) AND is_deleted = FALSE
	`, idStrings(userIDs)).Scan(&count)
	return count, err
}

var _ repository.TweetRepository = (*TweetRepository)(nil)
