package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaType tags a media entry. Ranking within a type is by Position ascending.
type MediaType string

const (
	MediaImage   MediaType = "image"
	MediaVideo   MediaType = "video"
	MediaYoutube MediaType = "youtube"
)

// ValidMediaType reports whether t is a recognized media type.
func ValidMediaType(t MediaType) bool {
	return t == MediaImage || t == MediaVideo || t == MediaYoutube
}

// ProductMedia is one entry in a product's ordered media gallery.
type ProductMedia struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PartNumber string    `gorm:"index;not null"`
	MediaType  MediaType `gorm:"not null"`
	URL        string    `gorm:"not null"`
	Position   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
}
