package dto

import "github.com/shopspring/decimal"

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=1,max=120"`
}

type BrandResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateVendorRequest struct {
	Name    string  `json:"name"    validate:"required,min=1,max=120"`
	Country *string `json:"country" validate:"omitempty,len=2"`
}

type VendorResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country *string `json:"country"`
}

type CreateWarrantyRequest struct {
	TypeCode       string `json:"type_code"       validate:"required,min=1,max=32"`
	DurationMonths int    `json:"duration_months" validate:"min=0"`
}

type WarrantyResponse struct {
	ID             string `json:"id"`
	TypeCode       string `json:"type_code"`
	DurationMonths int    `json:"duration_months"`
}

type CreateDimensionsRequest struct {
	LengthMm      *decimal.Decimal `json:"length_mm"`
	WidthMm       *decimal.Decimal `json:"width_mm"`
	HeightMm      *decimal.Decimal `json:"height_mm"`
	WeightKg      *decimal.Decimal `json:"weight_kg"`
	GrossWeightKg *decimal.Decimal `json:"gross_weight_kg"`
	VolumeM3      *decimal.Decimal `json:"volume_m3"`
	PackQty       *int             `json:"pack_qty" validate:"omitempty,min=0"`
}

type DimensionsResponse struct {
	ID            string           `json:"id"`
	LengthMm      *decimal.Decimal `json:"length_mm"`
	WidthMm       *decimal.Decimal `json:"width_mm"`
	HeightMm      *decimal.Decimal `json:"height_mm"`
	WeightKg      *decimal.Decimal `json:"weight_kg"`
	GrossWeightKg *decimal.Decimal `json:"gross_weight_kg"`
	VolumeM3      *decimal.Decimal `json:"volume_m3"`
	PackQty       *int             `json:"pack_qty"`
}
