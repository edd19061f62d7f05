package models

import "time"

// User is an account record. Exactly one User exists per email; the hash in
// Password is the only credential material ever persisted.
type User struct {
	ID                  uint       `gorm:"primaryKey" json:"id"`
	Name                string     `gorm:"size:100;not null" json:"name"`
	Email               string     `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password            string     `gorm:"size:255;not null" json:"-"`
	IsVerified          bool       `gorm:"default:false" json:"is_verified"`
	VerificationCode    *string    `gorm:"size:6;index" json:"-"`
	VerificationExpires *time.Time `json:"-"`
	ResetCode           *string    `gorm:"size:6;index" json:"-"`
	ResetExpires        *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }
