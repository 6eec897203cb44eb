package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteContent is a keyed asset reference (logo URL, banner image, literal
// text) resolved by the front-end by name. Key is the natural identifier;
// lookups never use the generated id.
type SiteContent struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;not null;unique;default:gen_random_uuid()" json:"id"`
	Key       string    `gorm:"size:255;not null;unique" json:"key"`
	Value     string    `gorm:"type:text;not null;default:''" json:"value"`
	Type      string    `gorm:"size:20;not null;default:'image';check:type IN ('image','text','link')" json:"type"`
	Category  string    `gorm:"size:100;not null;default:'general'" json:"category"`
	Label     string    `gorm:"size:255;not null;default:''" json:"label"`
	CreatedAt time.Time `gorm:"not null;default:clock_timestamp()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:clock_timestamp()" json:"updatedAt"`
}
