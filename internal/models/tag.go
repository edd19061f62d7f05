package models

import "time"

// Tag names are unique per owner, not globally.
type Tag struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_tags_user_name;not null" json:"user_id"`
	Name      string    `gorm:"uniqueIndex:idx_tags_user_name;size:100;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string { return "tags" }
