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

type FollowRepository struct {
	pool *pgxpool.Pool
}

func NewFollowRepository(pool *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{pool: pool}
}

func (r *FollowRepository) Create(ctx context.Context, f *entity.Follow) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO follows (id, follower_user_id, followed_user_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, f.ID.String(), f.FollowerUserID.String(), f.FollowedUserID.String(), f.CreatedAt)
	if _, ok := uniqueViolation(err); ok {
		return apperrors.Wrap(apperrors.ErrAlreadyFollowing, err)
	}
	return err
}

func (r *FollowRepository) Delete(ctx context.Context, followerID, followedID valueobject.UserID) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM follows WHERE follower_user_id = $1 AND followed_user_id = $2
	`, followerID.String(), followedID.String())
	return err
}

func (r *FollowRepository) Get(ctx context.Context, followerID, followedID valueobject.UserID) (*entity.Follow, error) {
	var (
		id, follower, followed string
		createdAt              time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, follower_user_id, followed_user_id, created_at
		FROM follows
		WHERE follower_user_id = $1 AND followed_user_id = $2
	`, followerID.String(), followedID.String()).Scan(&id, &follower, &followed, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	fid, err := valueobject.FollowIDFromString(id)
	if err != nil {
		return nil, err
	}
	fromID, err := valueobject.UserIDFromString(follower)
	if err != nil {
		return nil, err
	}
	toID, err := valueobject.UserIDFromString(followed)
	if err != nil {
		return nil, err
	}
	return entity.ReconstructFollow(fid, fromID, toID, createdAt), nil
}

func (r *FollowRepository) GetFollowedIDs(ctx context.Context, followerID valueobject.UserID) ([]valueobject.UserID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT followed_user_id FROM follows WHERE follower_user_id = $1
	`, followerID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUserIDs(rows)
}

func (r *FollowRepository) ListFollowerIDs(ctx context.Context, userID valueobject.UserID, limit, offset int) ([]valueobject.UserID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT follower_user_id FROM follows
		WHERE followed_user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID.String(), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUserIDs(rows)
}

func (r *FollowRepository) ListFollowingIDs(ctx context.Context, userID valueobject.UserID, limit, offset int) ([]valueobject.UserID, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT followed_user_id FROM follows
		WHERE follower_user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID.String(), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUserIDs(rows)
}

func (r *FollowRepository) CountFollowers(ctx context.Context, userID valueobject.UserID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM follows WHERE followed_user_id = $1
	`, userID.String()).Scan(&count)
	return count, err
}

func (r *FollowRepository) CountFollowing(ctx context.Context, userID valueobject.UserID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM follows WHERE follower_user_id = $1
	`, userID.String()).Scan(&count)
	return count, err
}

func (r *FollowRepository) FilterFollowedIDs(ctx context.Context, followerID valueobject.UserID, candidateIDs []valueobject.UserID) ([]valueobject.UserID, error) {
	if len(candidateIDs) == 0 {
		return []valueobject.UserID{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT followed_user_id FROM follows
		WHERE follower_user_id = $1 AND followed_user_id = ANY($2)
	`, followerID.String(), idStrings(candidateIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUserIDs(rows)
}

func scanUserIDs(rows pgx.Rows) ([]valueobject.UserID, error) {
	ids := make([]valueobject.UserID, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		id, err := valueobject.UserIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

var _ repository.FollowRepository = (*FollowRepository)(nil)
