package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductAttributeValue holds one typed value per (part_number, attribute)
// pair. Exactly one of the Value* / OptionID slots is populated; the slot must
// match the owning attribute's DataType. The exactly-one invariant is enforced
// by AttributeValueService at write time — every write sets all slots, one
// non-nil and the rest nil, inside a single transaction.
type ProductAttributeValue struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PartNumber  string    `gorm:"uniqueIndex:idx_product_attribute;not null"`
	AttributeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_product_attribute;not null"`

	ValueText    *string
	ValueInt     *int64
	ValueDecimal *decimal.Decimal `gorm:"type:decimal(18,6)"`
	ValueBool    *bool
	ValueDate    *time.Time
	ValueJSON    *string
	OptionID     *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Attribute *Attribute       `gorm:"foreignKey:AttributeID"`
	Option    *AttributeOption `gorm:"foreignKey:OptionID"`
}
