package models

import "time"

// Media records an uploaded file. Name is the stored filename inside the
// configured media directory; the extension is sniffed from the file content,
// never taken from the client.
type Media struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name" validate:"required,max=255"`
	CreatedAt time.Time `json:"created_at"`
}
