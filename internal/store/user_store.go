package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tasknest/tasknest/internal/models"
	"github.com/tasknest/tasknest/internal/services"
)

// GormUserStore is the database-backed credential store.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

var _ services.UserStore = (*GormUserStore)(nil)

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByVerificationCode(ctx context.Context, code string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("verification_code = ? AND verification_expires > ?", code, time.Now()).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) FindByResetCode(ctx context.Context, code string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("reset_code = ? AND reset_expires > ?", code, time.Now()).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) Create(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *GormUserStore) MarkVerified(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_verified":          true,
			"verification_code":    nil,
			"verification_expires": nil,
		}).Error
}

func (s *GormUserStore) SetVerificationCode(ctx context.Context, id uint, code string, expires time.Time) error {
	return s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"verification_code":    code,
			"verification_expires": expires,
		}).Error
}

func (s *GormUserStore) SetResetCode(ctx context.Context, id uint, code string, expires time.Time) error {
	return s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"reset_code":    code,
			"reset_expires": expires,
		}).Error
}

func (s *GormUserStore) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	return s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"password":      passwordHash,
			"reset_code":    nil,
			"reset_expires": nil,
		}).Error
}
