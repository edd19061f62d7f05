package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tasknest/tasknest/internal/models"
	"github.com/tasknest/tasknest/internal/services"
)

// GormSessionStore is the database-backed refresh-token store. The unique
// index on the token column is the at-most-one-winner guard for concurrent
// rotation of the same token.
type GormSessionStore struct {
	db *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{db: db}
}

var _ services.SessionStore = (*GormSessionStore)(nil)

func (s *GormSessionStore) Create(ctx context.Context, token *models.RefreshToken) error {
	return s.db.WithContext(ctx).Create(token).Error
}

func (s *GormSessionStore) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var record models.RefreshToken
	err := s.db.WithContext(ctx).Where("token = ?", token).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GormSessionStore) FindByID(ctx context.Context, id uint) (*models.RefreshToken, error) {
	var record models.RefreshToken
	err := s.db.WithContext(ctx).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *GormSessionStore) UpdateLastUsed(ctx context.Context, token string) error {
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token = ?", token).
		Update("last_used", time.Now()).Error
}

func (s *GormSessionStore) Revoke(ctx context.Context, token string, replacedBy *string) error {
	updates := map[string]interface{}{"revoked": true}
	if replacedBy != nil {
		updates["replaced_by_token"] = *replacedBy
	}
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("token = ? AND revoked = ?", token, false).
		Updates(updates).Error
}

// Rotate inserts next, then revokes oldToken with a conditional update. Both
// happen in one transaction: the new token is durable before the old one is
// revoked, and if another rotation already revoked oldToken the whole
// transaction rolls back (the inserted row included) with
// ErrRotationConflict.
func (s *GormSessionStore) Rotate(ctx context.Context, oldToken string, next *models.RefreshToken) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(next).Error; err != nil {
			return err
		}

		res := tx.Model(&models.RefreshToken{}).
			Where("token = ? AND revoked = ?", oldToken, false).
			Updates(map[string]interface{}{
				"revoked":           true,
				"replaced_by_token": next.Token,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return services.ErrRotationConflict
		}
		return nil
	})
}

func (s *GormSessionStore) RevokeAllForUser(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true).Error
}

func (s *GormSessionStore) RevokeAllExcept(ctx context.Context, userID uint, keepToken string) error {
	return s.db.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked = ? AND token <> ?", userID, false, keepToken).
		Update("revoked", true).Error
}

func (s *GormSessionStore) ListActiveForUser(ctx context.Context, userID uint) ([]models.RefreshToken, error) {
	var records []models.RefreshToken
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND revoked = ? AND expires_at > ?", userID, false, time.Now()).
		Order("last_used DESC, created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// PurgeExpiredRevoked deletes sessions that are both expired and revoked.
// Revoked-but-unexpired rows stay put so replay of a rotated token is still
// detectable.
func (s *GormSessionStore) PurgeExpiredRevoked(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("revoked = ? AND expires_at < ?", true, time.Now()).
		Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}
