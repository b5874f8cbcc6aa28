package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/repository"
	domainsvc "github.com/oksasatya/go-twitter-clone/internal/domain/service"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
	"github.com/oksasatya/go-twitter-clone/pkg/helpers"
	"github.com/oksasatya/go-twitter-clone/pkg/mailer"
)

// UserService orchestrates account use cases: register, login, profile,
// avatar upload, and follower/following listings.
type UserService struct {
	Users     repository.UserRepository
	Follows   repository.FollowRepository
	Auth      *domainsvc.AuthService
	GCS       *storage.Client
	GCSBucket string
	Redis     *redis.Client
	Pub       *helpers.RabbitPublisher
	Logger    *logrus.Logger
}

func NewUserService(users repository.UserRepository, follows repository.FollowRepository,
	auth *domainsvc.AuthService, gcs *storage.Client, gcsBucket string,
	rdb *redis.Client, pub *helpers.RabbitPublisher, logger *logrus.Logger) *UserService {
	return &UserService{
		Users:     users,
		Follows:   follows,
		Auth:      auth,
		GCS:       gcs,
		GCSBucket: gcsBucket,
		Redis:     rdb,
		Pub:       pub,
		Logger:    logger,
	}
}

func sessionKey(userID string) string {
	return "user:session:" + userID
}

// Register creates an account. The repository's unique constraints are the
// final arbiter against concurrent registrations; a constraint violation from
// Create surfaces as the same duplicate error the pre-checks produce.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	uname, err := valueobject.NewUsername(username)
	if err != nil {
		return nil, err
	}
	mail, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, err
	}

	if existing, err := s.Users.GetByUsername(ctx, uname); err != nil {
		return nil, apperrors.Internal(err)
	} else if existing != nil {
		return nil, apperrors.ErrDuplicateUsername
	}
	if existing, err := s.Users.GetByEmail(ctx, mail); err != nil {
		return nil, apperrors.Internal(err)
	} else if existing != nil {
		return nil, apperrors.ErrDuplicateEmail
	}

	u, err := entity.NewUser(uname, mail, password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	// Welcome email is best-effort: the account exists either way.
	if s.Pub != nil {
		job := mailer.EmailJob{To: u.Email.String(), Template: "welcome", Data: mailer.WelcomeData{Username: u.Username.String()}}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID.String()).Warn("welcome email enqueue failed")
		}
	}
	return u, nil
}

// LoginResult is the payload handed back to the transport layer after login.
type LoginResult struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// Login authenticates by username and issues a bearer token. Unknown username
// and wrong password produce the same error so the response cannot reveal
// which one occurred.
func (s *UserService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	uname, err := valueobject.NewUsername(username)
	if err != nil {
		return nil, apperrors.ErrAuthenticationFailed
	}
	u, err := s.Users.GetByUsername(ctx, uname)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if u == nil || !s.Auth.Authenticate(u, password) {
		return nil, apperrors.ErrAuthenticationFailed
	}

	token, exp, err := s.Auth.IssueToken(u.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	if s.Redis != nil {
		key := sessionKey(u.ID.String())
		fields := map[string]any{
			"user_id":    u.ID.String(),
			"username":   u.Username.String(),
			"logged_in":  true,
			"created_at": time.Now().UTC().Format(time.RFC3339Nano),
		}
		pipe := s.Redis.Pipeline()
		pipe.HSet(ctx, key, fields)
		pipe.Expire(ctx, key, time.Until(exp))
		if _, rErr := pipe.Exec(ctx); rErr != nil && s.Logger != nil {
			s.Logger.WithError(rErr).WithField("key", key).Warn("redis pipeline failed")
		}
	}

	return &LoginResult{User: u, Token: token, ExpiresAt: exp}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID valueobject.UserID) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if u == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

// UpdateProfileInput carries the full replacement set for the three profile
// fields; a nil clears the field.
type UpdateProfileInput struct {
	DisplayName *string
	Bio         *string
	AvatarURL   *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID valueobject.UserID, in UpdateProfileInput) (*entity.User, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.UpdateProfile(in.DisplayName, in.Bio, in.AvatarURL)
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, apperrors.Internal(err)
	}
	return u, nil
}

// UploadAvatar stores the image in GCS under avatars/<user>/ and points the
// profile at its public URL.
func (s *UserService) UploadAvatar(ctx context.Context, userID valueobject.UserID, r io.Reader, filename, contentType string) (string, error) {
	u, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", apperrors.Internal(errAvatarStorageUnavailable)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID.String(), uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", apperrors.Internal(err)
	}
	u.SetAvatarURL(url)
	if err := s.Users.Update(ctx, u); err != nil {
		return "", apperrors.Internal(err)
	}
	return url, nil
}

var errAvatarStorageUnavailable = errors.New("avatar storage not configured")

// RelatedUser is one entry in a followers/following listing, annotated with
// whether the requesting caller already follows the listed account.
type RelatedUser struct {
	User             *entity.User
	FollowedByCaller bool
}

// GetFollowers returns one page of accounts following userID, preserving the
// relation order. User records and the caller's follow subset are each
// fetched in a single batched call.
func (s *UserService) GetFollowers(ctx context.Context, userID valueobject.UserID, callerID *valueobject.UserID, page, size int) ([]RelatedUser, int, error) {
	return s.listRelations(ctx, userID, callerID, page, size, s.Follows.ListFollowerIDs, s.Follows.CountFollowers)
}

// GetFollowing returns one page of accounts userID follows.
func (s *UserService) GetFollowing(ctx context.Context, userID valueobject.UserID, callerID *valueobject.UserID, page, size int) ([]RelatedUser, int, error) {
	return s.listRelations(ctx, userID, callerID, page, size, s.Follows.ListFollowingIDs, s.Follows.CountFollowing)
}

type relationPageFn func(ctx context.Context, userID valueobject.UserID, limit, offset int) ([]valueobject.UserID, error)
type relationCountFn func(ctx context.Context, userID valueobject.UserID) (int, error)

func (s *UserService) listRelations(ctx context.Context, userID valueobject.UserID, callerID *valueobject.UserID,
	page, size int, list relationPageFn, count relationCountFn) ([]RelatedUser, int, error) {
	if page < 0 {
		return nil, 0, apperrors.ErrInvalidPage
	}
	if size < 1 || size > 100 {
		return nil, 0, apperrors.ErrInvalidPageSize
	}
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return nil, 0, err
	}

	ids, err := list(ctx, userID, size, page*size)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	total, err := count(ctx, userID)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	if len(ids) == 0 {
		return []RelatedUser{}, total, nil
	}

	users, err := s.Users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}
	byID := make(map[string]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID.String()] = u
	}

	// Skip the follow-subset query entirely for anonymous callers.
	followed := map[string]bool{}
	if callerID != nil {
		subset, err := s.Follows.FilterFollowedIDs(ctx, *callerID, ids)
		if err != nil {
			return nil, 0, apperrors.Internal(err)
		}
		for _, id := range subset {
			followed[id.String()] = true
		}
	}

	out := make([]RelatedUser, 0, len(ids))
	for _, id := range ids {
		u, ok := byID[id.String()]
		if !ok {
			continue
		}
		out = append(out, RelatedUser{User: u, FollowedByCaller: followed[id.String()]})
	}
	return out, total, nil
}
