package models

import "time"

// RefreshToken is one logged-in session. A token value is never reused and a
// revoked token is never un-revoked; revoked-but-unexpired rows are retained
// so that replay of a rotated token can be detected.
type RefreshToken struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Token           string     `gorm:"uniqueIndex;size:80;not null" json:"-"`
	UserID          uint       `gorm:"index;not null" json:"user_id"`
	ExpiresAt       time.Time  `gorm:"index;not null" json:"expires_at"`
	Revoked         bool       `gorm:"default:false;index" json:"revoked"`
	ReplacedByToken *string    `gorm:"size:80" json:"-"`
	DeviceName      string     `gorm:"size:100" json:"device_name,omitempty"`
	DeviceType      string     `gorm:"size:20" json:"device_type,omitempty"`
	Browser         string     `gorm:"size:50" json:"browser,omitempty"`
	IPAddress       string     `gorm:"size:64" json:"ip_address,omitempty"`
	LastUsed        *time.Time `json:"last_used,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (RefreshToken) TableName() string { return "refresh_tokens" }
