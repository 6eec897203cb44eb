package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Event struct {
	ID          uuid.UUID      `gorm:"primaryKey;type:uuid;not null;unique;default:gen_random_uuid()" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Date        time.Time      `gorm:"not null;index" json:"date"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	CreatedAt   time.Time      `gorm:"not null;default:clock_timestamp()" json:"createdAt"`
	UpdatedAt   time.Time      `gorm:"not null;default:clock_timestamp()" json:"updatedAt"`
}
