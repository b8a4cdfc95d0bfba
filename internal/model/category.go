package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is a node in the product classification tree. ParentID is nil for
// roots. The parent graph must stay acyclic — storage does not enforce that,
// CategoryService does at write time.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"index;not null"`
	GccCode   *string
	ParentID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Parent *Category `gorm:"foreignKey:ParentID"`
}

// CategoryAttribute declares that an attribute applies to a category, and
// whether it is required there. (CategoryID, AttributeID) is unique — the
// assignment operation is an idempotent upsert keyed by the pair.
type CategoryAttribute struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CategoryID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_category_attribute;not null"`
	AttributeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_category_attribute;not null"`
	Required    bool      `gorm:"not null;default:false"`
	SortOrder   int       `gorm:"not null;default:0"`

	Category  *Category  `gorm:"foreignKey:CategoryID"`
	Attribute *Attribute `gorm:"foreignKey:AttributeID"`
}
