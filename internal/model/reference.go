package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Reference registries consumed by the catalog projection. These are plain
// records looked up by ID — no derived logic lives here.

type Brand struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Vendor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"not null"`
	Country   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Warranty struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TypeCode       string    `gorm:"not null"`
	DurationMonths int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
}

// Dimensions carries the seven physical measurement fields projected into the
// catalog record.
type Dimensions struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LengthMm      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	WidthMm       *decimal.Decimal `gorm:"type:decimal(10,2)"`
	HeightMm      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	WeightKg      *decimal.Decimal `gorm:"type:decimal(10,3)"`
	GrossWeightKg *decimal.Decimal `gorm:"type:decimal(10,3)"`
	VolumeM3      *decimal.Decimal `gorm:"type:decimal(10,4)"`
	PackQty       *int
	CreatedAt     time.Time
}
