package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/oksasatya/go-twitter-clone/internal/domain/apperrors"
	"github.com/oksasatya/go-twitter-clone/internal/domain/entity"
	"github.com/oksasatya/go-twitter-clone/internal/domain/valueobject"
)

const minSecretLen = 32 // minimum safe key length for HS256

// AuthService verifies credentials and issues/validates HS256 bearer tokens.
// The validation entry points never return an error: any malformed, forged, or
// expired token yields ok=false, so the transport layer has a single
// unauthenticated path regardless of why the token failed.
type AuthService struct {
	secret   []byte
	tokenTTL time.Duration
}

type tokenClaims struct {
	jwt.RegisteredClaims
}

func NewAuthService(secret string, tokenTTL time.Duration) (*AuthService, error) {
	if strings.TrimSpace(secret) == "" || len(secret) < minSecretLen {
		return nil, apperrors.ErrWeakSecret
	}
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{secret: []byte(secret), tokenTTL: tokenTTL}, nil
}

// Authenticate reports whether plain matches the user's stored password hash.
// Nil user or empty password is simply false, never an error.
func (s *AuthService) Authenticate(user *entity.User, plain string) bool {
	if user == nil || plain == "" {
		return false
	}
	return user.Password.Matches(plain)
}

// IssueToken produces a signed token for the subject, expiring one TTL from
// now. Every token carries a unique jti claim, so two tokens for the same
// subject differ even when issued within the same second.
func (s *AuthService) IssueToken(userID valueobject.UserID) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.tokenTTL)
	claims := &tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ValidateToken returns the subject id of a structurally valid,
// signature-verified, non-expired token.
func (s *AuthService) ValidateToken(token string) (valueobject.UserID, bool) {
	claims, ok := s.parse(token)
	if !ok {
		return valueobject.UserID{}, false
	}
	uid, err := valueobject.UserIDFromString(claims.Subject)
	if err != nil {
		return valueobject.UserID{}, false
	}
	return uid, true
}

// ExpirationTime returns the expiry instant of a valid token.
func (s *AuthService) ExpirationTime(token string) (time.Time, bool) {
	claims, ok := s.parse(token)
	if !ok || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func (s *AuthService) parse(token string) (*tokenClaims, bool) {
	if strings.TrimSpace(token) == "" {
		return nil, false
	}
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, false
	}
	return claims, true
}
