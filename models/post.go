package models

import "time"

// Post is a published article. Author and Date are stamped from the
// authenticated caller on every create and update; Date therefore means
// "last modified" while CreatedAt keeps the original creation time.
type Post struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Title      string     `gorm:"size:255;not null" json:"title" validate:"required,max=255"`
	Content    string     `gorm:"type:text;not null" json:"content" validate:"required"`
	AuthorID   uint       `gorm:"index;not null" json:"author_id"`
	Author     User       `json:"author"`
	Date       time.Time  `json:"date"`
	ImageID    *uint      `json:"image_id,omitempty"`
	Image      *Media     `json:"image,omitempty"`
	Categories []Category `gorm:"many2many:post_categories;" json:"categories"`
	Tags       []Tag      `gorm:"many2many:post_tags;" json:"tags"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// All returns every model that participates in schema migration.
func All() []interface{} {
	return []interface{}{&User{}, &Category{}, &Tag{}, &Media{}, &Post{}}
}
