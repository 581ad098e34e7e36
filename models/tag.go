package models

// Tag labels posts. Tags are keyed by exact, case-sensitive name: an incoming
// tag name matching an existing row reuses it, otherwise a new row is created
// on demand during the post upsert.
type Tag struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:64;uniqueIndex;not null" json:"name" validate:"required,max=64"`
}
