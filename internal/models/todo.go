package models

import "time"

// Todo is a task owned by a single user. All queries filter on UserID.
type Todo struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"size:2000" json:"description,omitempty"`
	Completed   bool       `gorm:"default:false;index" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Priority    int        `gorm:"default:3" json:"priority"` // 1 (lowest) .. 5 (highest)
	ImageURLs   []string   `gorm:"serializer:json" json:"image_urls"`
	Tags        []Tag      `gorm:"many2many:todo_tags" json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Todo) TableName() string { return "todos" }
