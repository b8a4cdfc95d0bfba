package dto

import (
	"encoding/json"
	"time"
)

// SetValueRequest carries the raw value exactly as the client sent it — the
// service coerces it against the attribute's declared data type.
type SetValueRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

// ValueResponse reinterprets the stored slot as its semantic type: Value is a
// string for text/date/enum, a number for int/decimal, a bool for bool, and
// raw JSON for json attributes.
type ValueResponse struct {
	PartNumber    string      `json:"part_number"`
	AttributeCode string      `json:"attribute_code"`
	DataType      string      `json:"data_type"`
	Value         interface{} `json:"value"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

type RequiredMissingResponse struct {
	PartNumber   string   `json:"part_number"`
	CategoryCode string   `json:"category_code"`
	Missing      []string `json:"missing"`
}
