package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type DefineAttributeRequest struct {
	Code       string  `json:"code"       validate:"required,min=1,max=64"`
	Label      string  `json:"label"      validate:"required,min=1,max=120"`
	DataType   string  `json:"data_type"  validate:"required,oneof=text int decimal bool date enum json"`
	IsVariant  bool    `json:"is_variant"`
	IsRequired bool    `json:"is_required"`
	IsFacet    bool    `json:"is_facet"`
	UnitCode   *string `json:"unit_code"`
	GroupCode  *string `json:"group_code"`
}

type DefineGroupRequest struct {
	Code      string `json:"code"  validate:"required,min=1,max=64"`
	Label     string `json:"label" validate:"required,min=1,max=120"`
	SortOrder int    `json:"sort_order" validate:"min=0"`
}

type DefineOptionRequest struct {
	Value string `json:"value" validate:"required,min=1,max=120"`
	Label string `json:"label" validate:"required,min=1,max=120"`
}

type AssignAttributeRequest struct {
	AttributeCode string `json:"attribute_code" validate:"required"`
	Required      bool   `json:"required"`
	SortOrder     int    `json:"sort_order" validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AttributeResponse struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Label      string  `json:"label"`
	DataType   string  `json:"data_type"`
	IsVariant  bool    `json:"is_variant"`
	IsRequired bool    `json:"is_required"`
	IsFacet    bool    `json:"is_facet"`
	UnitCode   *string `json:"unit_code"`
	GroupCode  *string `json:"group_code"`
}

type GroupResponse struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Label     string `json:"label"`
	SortOrder int    `json:"sort_order"`
}

type OptionResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

type CategoryAttributeResponse struct {
	AttributeID   string `json:"attribute_id"`
	AttributeCode string `json:"attribute_code"`
	Required      bool   `json:"required"`
	SortOrder     int    `json:"sort_order"`
}
