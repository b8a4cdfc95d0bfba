package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/domain"
	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
	"github.com/damian-dev1/Ecommerce-Manager/internal/repository"
)

// SchemaService is the attribute schema registry: it owns the lifecycle of
// attributes, their enum options, and per-category assignments. It is the
// single source of truth AttributeValueService consults before accepting a
// value.
type SchemaService interface {
	DefineAttribute(ctx context.Context, req dto.DefineAttributeRequest) (*dto.AttributeResponse, error)
	DefineGroup(ctx context.Context, req dto.DefineGroupRequest) (*dto.GroupResponse, error)
	DefineOption(ctx context.Context, attributeCode string, req dto.DefineOptionRequest) (*dto.OptionResponse, error)
	AssignToCategory(ctx context.Context, categoryID uuid.UUID, req dto.AssignAttributeRequest) (*dto.CategoryAttributeResponse, error)
	ListAttributes(ctx context.Context) ([]dto.AttributeResponse, error)
	ListOptions(ctx context.Context, attributeCode string) ([]dto.OptionResponse, error)
	CategoryAttributes(ctx context.Context, categoryID uuid.UUID) ([]dto.CategoryAttributeResponse, error)
	DeleteAttribute(ctx context.Context, attributeCode string) error
}

type schemaService struct {
	attrs      repository.AttributeRepository
	categories repository.CategoryRepository
	values     repository.ValueRepository
}

func NewSchemaService(
	attrs repository.AttributeRepository,
	categories repository.CategoryRepository,
	values repository.ValueRepository,
) SchemaService {
	return &schemaService{attrs: attrs, categories: categories, values: values}
}

func mapAttribute(a model.Attribute) dto.AttributeResponse {
	resp := dto.AttributeResponse{
		ID:         a.ID.String(),
		Code:       a.Code,
		Label:      a.Label,
		DataType:   string(a.DataType),
		IsVariant:  a.IsVariant,
		IsRequired: a.IsRequired,
		IsFacet:    a.IsFacet,
		UnitCode:   a.UnitCode,
	}
	if a.Group != nil {
		resp.GroupCode = &a.Group.Code
	}
	return resp
}

func (s *schemaService) DefineAttribute(ctx context.Context, req dto.DefineAttributeRequest) (*dto.AttributeResponse, error) {
	dataType := domain.DataType(req.DataType)
	if !dataType.Valid() {
		return nil, fmt.Errorf("%w: unsupported data type %q", domain.ErrTypeMismatch, req.DataType)
	}

	if _, err := s.attrs.FindByCode(ctx, req.Code); err == nil {
		return nil, fmt.Errorf("%w: attribute code %q already exists", domain.ErrConflict, req.Code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a := &model.Attribute{
		Code:       req.Code,
		Label:      req.Label,
		DataType:   dataType,
		IsVariant:  req.IsVariant,
		IsRequired: req.IsRequired,
		IsFacet:    req.IsFacet,
		UnitCode:   req.UnitCode,
	}

	if req.GroupCode != nil {
		group, err := s.attrs.FindGroupByCode(ctx, *req.GroupCode)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: attribute group %q", domain.ErrNotFound, *req.GroupCode)
			}
			return nil, err
		}
		a.GroupID = &group.ID
		a.Group = group
	}

	if err := s.attrs.Create(ctx, a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: attribute code %q already exists", domain.ErrConflict, req.Code)
		}
		return nil, err
	}
	resp := mapAttribute(*a)
	return &resp, nil
}

func (s *schemaService) DefineGroup(ctx context.Context, req dto.DefineGroupRequest) (*dto.GroupResponse, error) {
	g := &model.AttributeGroup{Code: req.Code, Label: req.Label, SortOrder: req.SortOrder}
	if err := s.attrs.CreateGroup(ctx, g); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: group code %q already exists", domain.ErrConflict, req.Code)
		}
		return nil, err
	}
	return &dto.GroupResponse{ID: g.ID.String(), Code: g.Code, Label: g.Label, SortOrder: g.SortOrder}, nil
}

// DefineOption registers one enumerated value. Options are only meaningful on
// enum attributes — defining one anywhere else is a type mismatch.
func (s *schemaService) DefineOption(ctx context.Context, attributeCode string, req dto.DefineOptionRequest) (*dto.OptionResponse, error) {
	attr, err := s.attrs.FindByCode(ctx, attributeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAttribute, attributeCode)
		}
		return nil, err
	}
	if attr.DataType != domain.TypeEnum {
		return nil, fmt.Errorf("%w: attribute %q has type %s, options require enum",
			domain.ErrTypeMismatch, attributeCode, attr.DataType)
	}

	if _, err := s.attrs.FindOption(ctx, attr.ID, req.Value); err == nil {
		return nil, fmt.Errorf("%w: option %q already defined for attribute %q",
			domain.ErrConflict, req.Value, attributeCode)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	o := &model.AttributeOption{AttributeID: attr.ID, Value: req.Value, Label: req.Label}
	if err := s.attrs.CreateOption(ctx, o); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: option %q already defined for attribute %q",
				domain.ErrConflict, req.Value, attributeCode)
		}
		return nil, err
	}
	return &dto.OptionResponse{ID: o.ID.String(), Value: o.Value, Label: o.Label}, nil
}

// AssignToCategory is an idempotent upsert keyed by (category, attribute):
// repeating the call with the same pair only refreshes required/sort_order.
func (s *schemaService) AssignToCategory(ctx context.Context, categoryID uuid.UUID, req dto.AssignAttributeRequest) (*dto.CategoryAttributeResponse, error) {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %s", domain.ErrNotFound, categoryID)
		}
		return nil, err
	}
	attr, err := s.attrs.FindByCode(ctx, req.AttributeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAttribute, req.AttributeCode)
		}
		return nil, err
	}

	ca := &model.CategoryAttribute{
		CategoryID:  categoryID,
		AttributeID: attr.ID,
		Required:    req.Required,
		SortOrder:   req.SortOrder,
	}
	if err := s.attrs.UpsertCategoryAttribute(ctx, ca); err != nil {
		return nil, err
	}
	return &dto.CategoryAttributeResponse{
		AttributeID:   attr.ID.String(),
		AttributeCode: attr.Code,
		Required:      ca.Required,
		SortOrder:     ca.SortOrder,
	}, nil
}

func (s *schemaService) ListAttributes(ctx context.Context) ([]dto.AttributeResponse, error) {
	attrs, err := s.attrs.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.AttributeResponse, 0, len(attrs))
	for _, a := range attrs {
		result = append(result, mapAttribute(a))
	}
	return result, nil
}

func (s *schemaService) ListOptions(ctx context.Context, attributeCode string) ([]dto.OptionResponse, error) {
	attr, err := s.attrs.FindByCode(ctx, attributeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAttribute, attributeCode)
		}
		return nil, err
	}
	opts, err := s.attrs.ListOptions(ctx, attr.ID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.OptionResponse, 0, len(opts))
	for _, o := range opts {
		result = append(result, dto.OptionResponse{ID: o.ID.String(), Value: o.Value, Label: o.Label})
	}
	return result, nil
}

func (s *schemaService) CategoryAttributes(ctx context.Context, categoryID uuid.UUID) ([]dto.CategoryAttributeResponse, error) {
	cas, err := s.attrs.ListCategoryAttributes(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryAttributeResponse, 0, len(cas))
	for _, ca := range cas {
		resp := dto.CategoryAttributeResponse{
			AttributeID: ca.AttributeID.String(),
			Required:    ca.Required,
			SortOrder:   ca.SortOrder,
		}
		if ca.Attribute != nil {
			resp.AttributeCode = ca.Attribute.Code
		}
		result = append(result, resp)
	}
	return result, nil
}

// DeleteAttribute removes the attribute and everything hanging off it —
// options, category assignments, stored values — in one transaction. This is
// the explicit cascade the schema does not declare.
func (s *schemaService) DeleteAttribute(ctx context.Context, attributeCode string) error {
	attr, err := s.attrs.FindByCode(ctx, attributeCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %q", domain.ErrUnknownAttribute, attributeCode)
		}
		return err
	}
	return runTx(ctx, s.attrs.DB(), func(tx *gorm.DB) error {
		if err := s.values.DeleteByAttributeTx(tx, attr.ID); err != nil {
			return err
		}
		if err := s.attrs.DeleteOptionsTx(tx, attr.ID); err != nil {
			return err
		}
		if err := s.attrs.DeleteAssignmentsTx(tx, attr.ID); err != nil {
			return err
		}
		return s.attrs.DeleteTx(tx, attr.ID)
	})
}
