package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	PartNumber   string  `json:"part_number" validate:"required,min=1,max=64"`
	ModelCode    *string `json:"model_code"`
	Barcode      *string `json:"barcode"`
	SapArticleID *string `json:"sap_article_id"`

	DescriptionShort     *string `json:"description_short"`
	DescriptionLong      *string `json:"description_long"`
	DescriptionTechnical *string `json:"description_technical"`
	CountryOfOriginCode  *string `json:"country_of_origin_code" validate:"omitempty,len=2"`

	BrandID      string  `json:"brand_id"      validate:"required,uuid"`
	CategoryID   *string `json:"category_id"   validate:"omitempty,uuid"`
	VendorID     *string `json:"vendor_id"     validate:"omitempty,uuid"`
	WarrantyID   *string `json:"warranty_id"   validate:"omitempty,uuid"`
	DimensionsID *string `json:"dimensions_id" validate:"omitempty,uuid"`
}

type UpdateProductRequest struct {
	ModelCode    *string `json:"model_code"`
	Barcode      *string `json:"barcode"`
	SapArticleID *string `json:"sap_article_id"`

	DescriptionShort     *string `json:"description_short"`
	DescriptionLong      *string `json:"description_long"`
	DescriptionTechnical *string `json:"description_technical"`
	CountryOfOriginCode  *string `json:"country_of_origin_code" validate:"omitempty,len=2"`

	BrandID      *string `json:"brand_id"      validate:"omitempty,uuid"`
	CategoryID   *string `json:"category_id"   validate:"omitempty,uuid"`
	VendorID     *string `json:"vendor_id"     validate:"omitempty,uuid"`
	WarrantyID   *string `json:"warranty_id"   validate:"omitempty,uuid"`
	DimensionsID *string `json:"dimensions_id" validate:"omitempty,uuid"`
}

type AddMediaRequest struct {
	MediaType string `json:"media_type" validate:"required,oneof=image video youtube"`
	URL       string `json:"url"        validate:"required,url"`
	Position  int    `json:"position"   validate:"min=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	PartNumber string `form:"part_number"`
	Barcode    string `form:"barcode"`
	BrandID    string `form:"brand_id"`
	CategoryID string `form:"category_id"`
	Page       int    `form:"page,default=1"   validate:"min=1"`
	Limit      int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	PartNumber   string  `json:"part_number"`
	ModelCode    *string `json:"model_code"`
	Barcode      *string `json:"barcode"`
	SapArticleID *string `json:"sap_article_id"`

	DescriptionShort     *string `json:"description_short"`
	DescriptionLong      *string `json:"description_long"`
	DescriptionTechnical *string `json:"description_technical"`
	CountryOfOriginCode  *string `json:"country_of_origin_code"`

	BrandID      string  `json:"brand_id"`
	CategoryID   *string `json:"category_id"`
	VendorID     *string `json:"vendor_id"`
	WarrantyID   *string `json:"warranty_id"`
	DimensionsID *string `json:"dimensions_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

type MediaResponse struct {
	ID        string `json:"id"`
	MediaType string `json:"media_type"`
	URL       string `json:"url"`
	Position  int    `json:"position"`
}

type VariantLinkRequest struct {
	ParentPartNumber string `json:"parent_part_number" validate:"required"`
}

type VariantResponse struct {
	VariantPartNumber string `json:"variant_part_number"`
	ParentPartNumber  string `json:"parent_part_number"`
}
