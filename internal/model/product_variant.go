package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductVariant links a variant product to its parent. Each variant part
// number appears at most once (one parent per variant); the hierarchy is
// single-level — a parent must never itself be someone's variant. Both rules
// live in VariantService, not in the schema.
type ProductVariant struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VariantPartNumber string    `gorm:"uniqueIndex;not null"`
	ParentPartNumber  string    `gorm:"index;not null"`
	CreatedAt         time.Time
}
