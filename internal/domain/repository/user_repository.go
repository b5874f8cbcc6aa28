package repository

import (
	"context"

	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

// UserRepository defines the persistence contract for accounts. Lookups return
// (nil, nil) when no row matches; errors are reserved for storage failures.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id valueobject.UserID) error
	GetByID(ctx context.Context, id valueobject.UserID) (*entity.User, error)
	GetByUsername(ctx context.Context, username valueobject.Username) (*entity.User, error)
	GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)
	// GetByIDs batch-fetches users; missing ids are simply absent from the result.
	GetByIDs(ctx context.Context, ids []valueobject.UserID) ([]*entity.User, error)
}
