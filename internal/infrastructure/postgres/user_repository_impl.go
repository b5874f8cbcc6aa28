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

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, username, email, password_hash, display_name, bio, avatar_url, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id, username, email, hash string
		displayName, bio, avatar  *string
		createdAt, updatedAt      time.Time
	)
	if err := row.Scan(&id, &username, &email, &hash, &displayName, &bio, &avatar, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return rebuildUser(id, username, email, hash, displayName, bio, avatar, createdAt, updatedAt)
}

func rebuildUser(id, username, email, hash string, displayName, bio, avatar *string, createdAt, updatedAt time.Time) (*entity.User, error) {
	uid, err := valueobject.UserIDFromString(id)
	if err != nil {
		return nil, err
	}
	uname, err := valueobject.NewUsername(username)
	if err != nil {
		return nil, err
	}
	mail, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}
	return entity.ReconstructUser(uid, uname, mail, valueobject.PasswordFromHash(hash),
		displayName, bio, avatar, createdAt, updatedAt), nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, username, email, password_hash, display_name, bio, avatar_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, u.ID.String(), u.Username.String(), u.Email.String(), u.Password.Hash(),
		u.DisplayName, u.Bio, u.AvatarURL, u.CreatedAt, u.UpdatedAt)
	if constraint, ok := uniqueViolation(err); ok {
		if constraint == "users_email_key" {
			return apperrors.Wrap(apperrors.ErrDuplicateEmail, err)
		}
		return apperrors.Wrap(apperrors.ErrDuplicateUsername, err)
	}
	return err
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, email = $2, password_hash = $3, display_name = $4, bio = $5, avatar_url = $6, updated_at = $7
		WHERE id = $8
	`, u.Username.String(), u.Email.String(), u.Password.Hash(),
		u.DisplayName, u.Bio, u.AvatarURL, u.UpdatedAt, u.ID.String())
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id valueobject.UserID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id.String())
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id valueobject.UserID) (*entity.User, error) {
	return r.getBy(ctx, `WHERE id = $1`, id.String())
}

func (r *UserRepository) GetByUsername(ctx context.Context, username valueobject.Username) (*entity.User, error) {
	return r.getBy(ctx, `WHERE username = $1`, username.String())
}

func (r *UserRepository) GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	return r.getBy(ctx, `WHERE email = $1`, email.String())
}

func (r *UserRepository) getBy(ctx context.Context, where string, arg any) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users `+where, arg)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []valueobject.UserID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, idStrings(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*entity.User, 0, len(ids))
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func idStrings(ids []valueobject.UserID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

var _ repository.UserRepository = (*UserRepository)(nil)
