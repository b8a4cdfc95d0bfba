package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is one dated price record for a product. (PartNumber, EffectiveDate)
// is unique; "current price" is derived by PriceService, never stored. The
// integer primary key doubles as the deterministic tie-break when duplicate
// effective dates slip in despite the index.
type Price struct {
	ID            uint      `gorm:"primaryKey"`
	PartNumber    string    `gorm:"uniqueIndex:idx_price_part_date;not null"`
	EffectiveDate time.Time `gorm:"uniqueIndex:idx_price_part_date;not null"`
	CurrencyCode  string    `gorm:"not null;default:'AUD'"`

	Msrp           *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Rrp            *decimal.Decimal `gorm:"type:decimal(12,2)"`
	RetailPrice    decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	DiscountPrice  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CostPriceExTax *decimal.Decimal `gorm:"type:decimal(12,2)"`

	CreatedAt time.Time
}
