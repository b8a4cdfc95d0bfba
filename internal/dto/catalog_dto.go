package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogRecord is the denormalized, read-optimized view of one product.
// Reference fields use outer-join semantics: an absent brand/category/vendor/
// warranty/dimensions reference yields nulls, never an error. The price block
// comes from PriceService; all its fields are null when no price row exists.
type CatalogRecord struct {
	PartNumber   string  `json:"part_number"`
	ModelCode    *string `json:"model_code"`
	Barcode      *string `json:"barcode"`
	SapArticleID *string `json:"sap_article_id"`

	DescriptionShort     *string `json:"description_short"`
	DescriptionLong      *string `json:"description_long"`
	DescriptionTechnical *string `json:"description_technical"`
	CountryOfOriginCode  *string `json:"country_of_origin_code"`

	BrandName *string `json:"brand_name"`

	CategoryCode    *string `json:"category_code"`
	CategoryName    *string `json:"category_name"`
	CategoryGccCode *string `json:"category_gcc_code"`

	VendorName    *string `json:"vendor_name"`
	VendorCountry *string `json:"vendor_country"`

	WarrantyTypeCode       *string `json:"warranty_type_code"`
	WarrantyDurationMonths *int    `json:"warranty_duration_months"`

	LengthMm      *decimal.Decimal `json:"length_mm"`
	WidthMm       *decimal.Decimal `json:"width_mm"`
	HeightMm      *decimal.Decimal `json:"height_mm"`
	WeightKg      *decimal.Decimal `json:"weight_kg"`
	GrossWeightKg *decimal.Decimal `json:"gross_weight_kg"`
	VolumeM3      *decimal.Decimal `json:"volume_m3"`
	PackQty       *int             `json:"pack_qty"`

	ImageMainURL *string `json:"image_main_url"`
	YoutubeURL   *string `json:"youtube_url"`

	CurrencyCode   *string          `json:"currency_code"`
	Msrp           *decimal.Decimal `json:"msrp"`
	Rrp            *decimal.Decimal `json:"rrp"`
	RetailPrice    *decimal.Decimal `json:"retail_price"`
	DiscountPrice  *decimal.Decimal `json:"discount_price"`
	CostPriceExTax *decimal.Decimal `json:"cost_price_ex_tax"`
	EffectiveDate  *time.Time       `json:"effective_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
