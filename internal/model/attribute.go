package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/damian-dev1/Ecommerce-Manager/internal/domain"
)

// Attribute is one typed facet in the catalog schema. Code is the stable key
// integrations use; it is unique and must never change once values reference it.
type Attribute struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code     string          `gorm:"uniqueIndex;not null"`
	Label    string          `gorm:"not null"`
	DataType domain.DataType `gorm:"not null"`
	// IsVariant marks attributes that differentiate sibling variants (size, color).
	IsVariant  bool `gorm:"not null;default:false"`
	IsRequired bool `gorm:"not null;default:false"`
	// IsFacet exposes the attribute for search filtering.
	IsFacet   bool `gorm:"not null;default:false"`
	UnitCode  *string
	GroupID   *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Group *AttributeGroup `gorm:"foreignKey:GroupID"`
}

// AttributeGroup orders attributes for form and facet display.
type AttributeGroup struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Code      string    `gorm:"uniqueIndex;not null"`
	Label     string    `gorm:"not null"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttributeOption is one enumerated value of an enum attribute.
// (AttributeID, Value) is unique; Value is canonical, Label is for display.
type AttributeOption struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AttributeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_attribute_option;not null"`
	Value       string    `gorm:"uniqueIndex:idx_attribute_option;not null"`
	Label       string    `gorm:"not null"`
	CreatedAt   time.Time

	Attribute *Attribute `gorm:"foreignKey:AttributeID"`
}
