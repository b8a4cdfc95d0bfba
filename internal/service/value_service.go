package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/domain"
	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
	"github.com/damian-dev1/Ecommerce-Manager/internal/repository"
)

const dateLayout = "2006-01-02"

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// AttributeValueService stores one typed value per (product, attribute) pair.
// Every write validates the raw value against the attribute's declared data
// type and rewrites all slots atomically, so exactly one slot is populated no
// matter how many updates or writers the pair has seen.
type AttributeValueService interface {
	SetValue(ctx context.Context, partNumber, attributeCode string, raw json.RawMessage) (*dto.ValueResponse, error)
	GetValue(ctx context.Context, partNumber, attributeCode string) (*dto.ValueResponse, error)
	ListValues(ctx context.Context, partNumber string) ([]dto.ValueResponse, error)
	// RequiredMissing returns the attributes required for the category that
	// have no stored value for the product.
	RequiredMissing(ctx context.Context, partNumber string, categoryCode string) (*dto.RequiredMissingResponse, error)
}

type attributeValueService struct {
	attrs      repository.AttributeRepository
	values     repository.ValueRepository
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

func NewAttributeValueService(
	attrs repository.AttributeRepository,
	values repository.ValueRepository,
	products repository.ProductRepository,
	categories repository.CategoryRepository,
) AttributeValueService {
	return &attributeValueService{attrs: attrs, values: values, products: products, categories: categories}
}

// SetValue flow:
//  1. resolve the attribute (ErrUnknownAttribute) and product (ErrUnknownProduct)
//  2. coerce the raw value against the declared data type
//  3. lock the (part, attribute) row, write all slots — one populated, rest
//     nil — and commit; updated_at moves on every successful write
func (s *attributeValueService) SetValue(ctx context.Context, partNumber, attributeCode string, raw json.RawMessage) (*dto.ValueResponse, error) {
	attr, err := s.attrs.FindByCode(ctx, attributeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAttribute, attributeCode)
		}
		return nil, err
	}

	exists, err := s.products.Exists(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProduct, partNumber)
	}

	tv, err := s.coerce(ctx, attr, raw)
	if err != nil {
		return nil, err
	}

	var row *model.ProductAttributeValue
	write := func(tx *gorm.DB) error {
		existing, err := s.values.FindForUpdateTx(tx, partNumber, attr.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = &model.ProductAttributeValue{PartNumber: partNumber, AttributeID: attr.ID}
			applySlot(row, tv)
			return s.values.CreateTx(tx, row)
		}
		if err != nil {
			return err
		}
		row = existing
		applySlot(row, tv)
		return s.values.SaveTx(tx, row)
	}
	err = runTx(ctx, s.values.DB(), write)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// A concurrent first write won the insert. FOR UPDATE does not lock an
		// absent row, so the losing writer retries and takes the update path.
		err = runTx(ctx, s.values.DB(), write)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: concurrent writes on %q/%q", domain.ErrConflict, partNumber, attributeCode)
		}
		return nil, err
	}

	return &dto.ValueResponse{
		PartNumber:    partNumber,
		AttributeCode: attr.Code,
		DataType:      string(attr.DataType),
		Value:         presentValue(tv),
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func (s *attributeValueService) GetValue(ctx context.Context, partNumber, attributeCode string) (*dto.ValueResponse, error) {
	attr, err := s.attrs.FindByCode(ctx, attributeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAttribute, attributeCode)
		}
		return nil, err
	}
	row, err := s.values.FindByKey(ctx, partNumber, attr.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no value for %q on %q", domain.ErrNotFound, attributeCode, partNumber)
		}
		return nil, err
	}
	tv, err := readSlot(row, attr.DataType)
	if err != nil {
		return nil, err
	}
	return &dto.ValueResponse{
		PartNumber:    partNumber,
		AttributeCode: attr.Code,
		DataType:      string(attr.DataType),
		Value:         presentValue(tv),
		UpdatedAt:     row.UpdatedAt,
	}, nil
}

func (s *attributeValueService) ListValues(ctx context.Context, partNumber string) ([]dto.ValueResponse, error) {
	rows, err := s.values.ListByPart(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ValueResponse, 0, len(rows))
	for _, row := range rows {
		if row.Attribute == nil {
			continue
		}
		tv, err := readSlot(&row, row.Attribute.DataType)
		if err != nil {
			return nil, err
		}
		result = append(result, dto.ValueResponse{
			PartNumber:    partNumber,
			AttributeCode: row.Attribute.Code,
			DataType:      string(row.Attribute.DataType),
			Value:         presentValue(tv),
			UpdatedAt:     row.UpdatedAt,
		})
	}
	return result, nil
}

// RequiredMissing is the set difference between "required for the category"
// and "has a stored value for this product".
func (s *attributeValueService) RequiredMissing(ctx context.Context, partNumber string, categoryCode string) (*dto.RequiredMissingResponse, error) {
	exists, err := s.products.Exists(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProduct, partNumber)
	}
	category, err := s.categories.FindByCode(ctx, categoryCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %q", domain.ErrNotFound, categoryCode)
		}
		return nil, err
	}

	assignments, err := s.attrs.ListCategoryAttributes(ctx, category.ID)
	if err != nil {
		return nil, err
	}
	present, err := s.values.AttributeIDsWithValue(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	presentSet := make(map[string]bool, len(present))
	for _, id := range present {
		presentSet[id.String()] = true
	}

	missing := make([]string, 0)
	for _, ca := range assignments {
		if !ca.Required || presentSet[ca.AttributeID.String()] {
			continue
		}
		if ca.Attribute != nil {
			missing = append(missing, ca.Attribute.Code)
		} else {
			missing = append(missing, ca.AttributeID.String())
		}
	}
	return &dto.RequiredMissingResponse{
		PartNumber:   partNumber,
		CategoryCode: categoryCode,
		Missing:      missing,
	}, nil
}

// ─── Coercion ────────────────────────────────────────────────────────────────

// coerce validates raw JSON against the attribute's declared type and returns
// the typed union. Enum values resolve against the attribute's option set.
func (s *attributeValueService) coerce(ctx context.Context, attr *model.Attribute, raw json.RawMessage) (domain.TypedValue, error) {
	var zero domain.TypedValue

	switch attr.DataType {
	case domain.TypeText:
		str, err := decodeString(raw)
		if err != nil {
			return zero, fmt.Errorf("%w: attribute %q expects text", domain.ErrTypeMismatch, attr.Code)
		}
		return domain.NewTextValue(str), nil

	case domain.TypeInt:
		num, err := decodeNumber(raw)
		if err != nil {
			return zero, fmt.Errorf("%w: attribute %q expects an integer", domain.ErrTypeMismatch, attr.Code)
		}
		i, err := strconv.ParseInt(num, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("%w: attribute %q expects an integer, got %q", domain.ErrTypeMismatch, attr.Code, num)
		}
		return domain.NewIntValue(i), nil

	case domain.TypeDecimal:
		num, err := decodeNumber(raw)
		if err != nil {
			return zero, fmt.Errorf("%w: attribute %q expects a decimal", domain.ErrTypeMismatch, attr.Code)
		}
		d, err := decimal.NewFromString(num)
		if err != nil {
			return zero, fmt.Errorf("%w: attribute %q expects a decimal, got %q", domain.ErrTypeMismatch, attr.Code, num)
		}
		return domain.NewDecimalValue(d), nil

	case domain.TypeBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return domain.NewBoolValue(b), nil
		}
		if str, err := decodeString(raw); err == nil {
			switch str {
			case "true", "1":
				return domain.NewBoolValue(true), nil
			case "false", "0":
				return domain.NewBoolValue(false), nil
			}
		}
		return zero, fmt.Errorf("%w: attribute %q expects a boolean", domain.ErrTypeMismatch, attr.Code)

	case domain.TypeDate:
		str, err := decodeString(raw)
		if err != nil {
			return zero, fmt.Errorf("%w: attribute %q expects a date string", domain.ErrTypeMismatch, attr.Code)
		}
		t, err := time.Parse(dateLayout, str)
		if err != nil {
			if t, err = time.Parse(time.RFC3339, str); err != nil {
				return zero, fmt.Errorf("%w: attribute %q expects a YYYY-MM-DD date, got %q", domain.ErrTypeMismatch, attr.Code, str)
			}
		}
		return domain.NewDateValue(t), nil

	case domain.TypeJSON:
		if !json.Valid(raw) {
			return zero, fmt.Errorf("%w: attribute %q expects valid JSON", domain.ErrTypeMismatch, attr.Code)
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, raw); err != nil {
			return zero, fmt.Errorf("%w: attribute %q expects valid JSON", domain.ErrTypeMismatch, attr.Code)
		}
		return domain.NewJSONValue(buf.String()), nil

	case domain.TypeEnum:
		str, err := decodeString(raw)
		if err != nil {
			return zero, fmt.Errorf("%w: attribute %q expects an option value", domain.ErrTypeMismatch, attr.Code)
		}
		opt, err := s.attrs.FindOption(ctx, attr.ID, str)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return zero, fmt.Errorf("%w: %q is not an option of attribute %q", domain.ErrInvalidOption, str, attr.Code)
			}
			return zero, err
		}
		return domain.NewOptionValue(opt.ID, opt.Value), nil
	}

	return zero, fmt.Errorf("%w: attribute %q has unsupported type %s", domain.ErrTypeMismatch, attr.Code, attr.DataType)
}

// decodeString accepts only a JSON string.
func decodeString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

// decodeNumber accepts a JSON number or a numeric string and returns its
// literal form, preserving precision for decimal parsing.
func decodeNumber(raw json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", err
	}
	switch n := v.(type) {
	case json.Number:
		return n.String(), nil
	case string:
		if n == "" {
			return "", errors.New("empty numeric string")
		}
		return n, nil
	}
	return "", errors.New("not a number")
}

// applySlot writes the typed value into its single slot and nils the rest —
// the exactly-one invariant is re-established on every write, updates included.
func applySlot(row *model.ProductAttributeValue, tv domain.TypedValue) {
	row.ValueText = nil
	row.ValueInt = nil
	row.ValueDecimal = nil
	row.ValueBool = nil
	row.ValueDate = nil
	row.ValueJSON = nil
	row.OptionID = nil
	row.Option = nil

	switch tv.Kind {
	case domain.TypeText:
		row.ValueText = &tv.Text
	case domain.TypeInt:
		row.ValueInt = &tv.Int
	case domain.TypeDecimal:
		d := tv.Decimal
		row.ValueDecimal = &d
	case domain.TypeBool:
		row.ValueBool = &tv.Bool
	case domain.TypeDate:
		t := tv.Date
		row.ValueDate = &t
	case domain.TypeJSON:
		row.ValueJSON = &tv.JSON
	case domain.TypeEnum:
		id := tv.OptionID
		row.OptionID = &id
	}
}

// readSlot reinterprets the populated slot as the attribute's semantic type.
func readSlot(row *model.ProductAttributeValue, dataType domain.DataType) (domain.TypedValue, error) {
	var zero domain.TypedValue
	switch dataType {
	case domain.TypeText:
		if row.ValueText != nil {
			return domain.NewTextValue(*row.ValueText), nil
		}
	case domain.TypeInt:
		if row.ValueInt != nil {
			return domain.NewIntValue(*row.ValueInt), nil
		}
	case domain.TypeDecimal:
		if row.ValueDecimal != nil {
			return domain.NewDecimalValue(*row.ValueDecimal), nil
		}
	case domain.TypeBool:
		if row.ValueBool != nil {
			return domain.NewBoolValue(*row.ValueBool), nil
		}
	case domain.TypeDate:
		if row.ValueDate != nil {
			return domain.NewDateValue(*row.ValueDate), nil
		}
	case domain.TypeJSON:
		if row.ValueJSON != nil {
			return domain.NewJSONValue(*row.ValueJSON), nil
		}
	case domain.TypeEnum:
		if row.OptionID != nil {
			value := ""
			if row.Option != nil {
				value = row.Option.Value
			}
			return domain.NewOptionValue(*row.OptionID, value), nil
		}
	}
	return zero, fmt.Errorf("%w: stored slot does not match declared type %s", domain.ErrTypeMismatch, dataType)
}

// presentValue converts the union into the JSON-facing representation.
func presentValue(tv domain.TypedValue) interface{} {
	switch tv.Kind {
	case domain.TypeText:
		return tv.Text
	case domain.TypeInt:
		return tv.Int
	case domain.TypeDecimal:
		return tv.Decimal
	case domain.TypeBool:
		return tv.Bool
	case domain.TypeDate:
		return tv.Date.Format(dateLayout)
	case domain.TypeJSON:
		return json.RawMessage(tv.JSON)
	case domain.TypeEnum:
		return tv.OptionValue
	}
	return nil
}
