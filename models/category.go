package models

import "time"

// Category groups posts by topic. Categories are referenced by zero or more
// posts through the post_categories join table.
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name" validate:"required,max=255"`
	Description string    `gorm:"size:1024" json:"description" validate:"max=1024"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
