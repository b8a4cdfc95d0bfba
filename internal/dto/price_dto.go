package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type AddPriceRequest struct {
	// EffectiveDate in YYYY-MM-DD form.
	EffectiveDate  string           `json:"effective_date" validate:"required,datetime=2006-01-02"`
	CurrencyCode   string           `json:"currency_code"  validate:"omitempty,len=3"`
	Msrp           *decimal.Decimal `json:"msrp"`
	Rrp            *decimal.Decimal `json:"rrp"`
	RetailPrice    *decimal.Decimal `json:"retail_price"   validate:"required"`
	DiscountPrice  *decimal.Decimal `json:"discount_price"`
	CostPriceExTax *decimal.Decimal `json:"cost_price_ex_tax"`
}

type PriceResponse struct {
	ID             uint             `json:"id"`
	PartNumber     string           `json:"part_number"`
	EffectiveDate  time.Time        `json:"effective_date"`
	CurrencyCode   string           `json:"currency_code"`
	Msrp           *decimal.Decimal `json:"msrp"`
	Rrp            *decimal.Decimal `json:"rrp"`
	RetailPrice    decimal.Decimal  `json:"retail_price"`
	DiscountPrice  *decimal.Decimal `json:"discount_price"`
	CostPriceExTax *decimal.Decimal `json:"cost_price_ex_tax"`
}

type PriceSeriesResponse struct {
	PartNumber string          `json:"part_number"`
	Prices     []PriceResponse `json:"prices"`
}

// CurrentPriceResponse is returned by the public price check endpoint.
type CurrentPriceResponse struct {
	PartNumber    string           `json:"part_number"`
	CurrencyCode  string           `json:"currency_code"`
	RetailPrice   decimal.Decimal  `json:"retail_price"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	EffectiveDate time.Time        `json:"effective_date"`
}
