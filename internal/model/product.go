package model

import (
	"time"

	"github.com/google/uuid"
)

// Product is the catalog's central record. PartNumber is the business key
// every other table points at; the UUID is internal only.
type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PartNumber   string    `gorm:"uniqueIndex;not null"`
	ModelCode    *string
	Barcode      *string `gorm:"index"`
	SapArticleID *string

	DescriptionShort     *string
	DescriptionLong      *string
	DescriptionTechnical *string
	CountryOfOriginCode  *string

	BrandID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID   *uuid.UUID `gorm:"type:uuid;index"`
	VendorID     *uuid.UUID `gorm:"type:uuid;index"`
	WarrantyID   *uuid.UUID `gorm:"type:uuid"`
	DimensionsID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Brand      *Brand      `gorm:"foreignKey:BrandID"`
	Category   *Category   `gorm:"foreignKey:CategoryID"`
	Vendor     *Vendor     `gorm:"foreignKey:VendorID"`
	Warranty   *Warranty   `gorm:"foreignKey:WarrantyID"`
	Dimensions *Dimensions `gorm:"foreignKey:DimensionsID"`
}
