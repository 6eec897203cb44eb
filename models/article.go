package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Article is the shared shape of dated editorial records (blog posts and
// news items). Each concrete kind keeps its own table so the collections
// stay independent.
type Article struct {
	ID        uuid.UUID      `gorm:"primaryKey;type:uuid;not null;unique;default:gen_random_uuid()" json:"id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Category  string         `gorm:"size:100;not null" json:"category"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Date      time.Time      `gorm:"not null;index" json:"date"`
	Images    pq.StringArray `gorm:"type:text[]" json:"images"`
	CreatedAt time.Time      `gorm:"not null;default:clock_timestamp()" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"not null;default:clock_timestamp()" json:"updatedAt"`
}

type BlogPost struct {
	Article
}

type NewsItem struct {
	Article
}
