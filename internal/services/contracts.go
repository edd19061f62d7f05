package services

import (
	"context"
	"errors"
	"time"

	"github.com/tasknest/tasknest/internal/models"
)

// ErrRotationConflict is returned by SessionStore.Rotate when the presented
// token was already rotated by a concurrent refresh. The losing caller must
// not end up with a second divergent successor token.
var ErrRotationConflict = errors.New("refresh token already rotated")

// UserStore persists account and credential state. Lookups return (nil, nil)
// when no record matches, so the engine stays free of storage error types.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id uint) (*models.User, error)
	// FindByVerificationCode and FindByResetCode only match unexpired codes.
	FindByVerificationCode(ctx context.Context, code string) (*models.User, error)
	FindByResetCode(ctx context.Context, code string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	MarkVerified(ctx context.Context, id uint) error
	SetVerificationCode(ctx context.Context, id uint, code string, expires time.Time) error
	SetResetCode(ctx context.Context, id uint, code string, expires time.Time) error
	// UpdatePassword stores the new hash and clears any pending reset code.
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
}

// SessionStore persists refresh-token records. The store must enforce
// uniqueness of the token value.
type SessionStore interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	FindByID(ctx context.Context, id uint) (*models.RefreshToken, error)
	UpdateLastUsed(ctx context.Context, token string) error
	Revoke(ctx context.Context, token string, replacedBy *string) error
	// Rotate atomically persists next and revokes oldToken, marking it as
	// replaced by next.Token. The new record must be durable before the old
	// one is revoked; if oldToken is already revoked, Rotate persists
	// nothing and returns ErrRotationConflict.
	Rotate(ctx context.Context, oldToken string, next *models.RefreshToken) error
	RevokeAllForUser(ctx context.Context, userID uint) error
	RevokeAllExcept(ctx context.Context, userID uint, keepToken string) error
	// ListActiveForUser returns unrevoked, unexpired sessions, most recently
	// used first.
	ListActiveForUser(ctx context.Context, userID uint) ([]models.RefreshToken, error)
	PurgeExpiredRevoked(ctx context.Context) (int64, error)
}

// Notifier delivers one-time codes by email.
type Notifier interface {
	SendVerificationEmail(ctx context.Context, to, name, code string) error
	SendPasswordResetEmail(ctx context.Context, to, name, code string) error
}
