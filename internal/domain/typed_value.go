package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DataType enumerates the value representations an attribute may declare.
type DataType string

const (
	TypeText    DataType = "text"
	TypeInt     DataType = "int"
	TypeDecimal DataType = "decimal"
	TypeBool    DataType = "bool"
	TypeDate    DataType = "date"
	TypeEnum    DataType = "enum"
	TypeJSON    DataType = "json"
)

// Valid reports whether dt is one of the declared data types.
func (dt DataType) Valid() bool {
	switch dt {
	case TypeText, TypeInt, TypeDecimal, TypeBool, TypeDate, TypeEnum, TypeJSON:
		return true
	}
	return false
}

// TypedValue is the tagged union carried by one (product, attribute) pair.
// Exactly one payload field is meaningful, selected by Kind. Construction
// goes through the New* helpers so an inconsistent union cannot be built.
type TypedValue struct {
	Kind DataType

	Text    string
	Int     int64
	Decimal decimal.Decimal
	Bool    bool
	Date    time.Time
	JSON    string

	// OptionID and OptionValue are set when Kind == TypeEnum. OptionValue is
	// the canonical option value, resolved at read time for convenience.
	OptionID    uuid.UUID
	OptionValue string
}

func NewTextValue(s string) TypedValue    { return TypedValue{Kind: TypeText, Text: s} }
func NewIntValue(i int64) TypedValue      { return TypedValue{Kind: TypeInt, Int: i} }
func NewBoolValue(b bool) TypedValue      { return TypedValue{Kind: TypeBool, Bool: b} }
func NewDateValue(t time.Time) TypedValue { return TypedValue{Kind: TypeDate, Date: t} }
func NewJSONValue(raw string) TypedValue  { return TypedValue{Kind: TypeJSON, JSON: raw} }

func NewDecimalValue(d decimal.Decimal) TypedValue {
	return TypedValue{Kind: TypeDecimal, Decimal: d}
}

func NewOptionValue(id uuid.UUID, value string) TypedValue {
	return TypedValue{Kind: TypeEnum, OptionID: id, OptionValue: value}
}
