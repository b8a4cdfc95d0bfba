package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/domain"
	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
	"github.com/damian-dev1/Ecommerce-Manager/internal/repository"
)

// VariantService maintains the single-level variant hierarchy: each variant
// has at most one parent, and a parent is never itself someone's variant.
type VariantService interface {
	Link(ctx context.Context, variantPartNumber, parentPartNumber string) (*dto.VariantResponse, error)
	Unlink(ctx context.Context, variantPartNumber string) error
	ChildrenOf(ctx context.Context, parentPartNumber string) ([]dto.VariantResponse, error)
	ParentOf(ctx context.Context, variantPartNumber string) (*dto.VariantResponse, error)
}

type variantService struct {
	variants repository.VariantRepository
	products repository.ProductRepository
}

func NewVariantService(variants repository.VariantRepository, products repository.ProductRepository) VariantService {
	return &variantService{variants: variants, products: products}
}

// Link records variant → parent. Re-linking to the same parent is a no-op;
// re-linking to a different parent is a conflict and leaves the original edge
// untouched.
func (s *variantService) Link(ctx context.Context, variantPartNumber, parentPartNumber string) (*dto.VariantResponse, error) {
	if variantPartNumber == parentPartNumber {
		return nil, fmt.Errorf("%w: %q cannot be its own parent", domain.ErrSelfReference, variantPartNumber)
	}

	for _, part := range []string{variantPartNumber, parentPartNumber} {
		exists, err := s.products.Exists(ctx, part)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProduct, part)
		}
	}

	// The hierarchy is single-level: the proposed parent must not be a
	// variant itself, and the proposed variant must not already have children.
	if existing, err := s.variants.FindByVariant(ctx, parentPartNumber); err == nil {
		return nil, fmt.Errorf("%w: %q is already a variant of %q and cannot be a parent",
			domain.ErrConflict, parentPartNumber, existing.ParentPartNumber)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	hasChildren, err := s.variants.HasChildren(ctx, variantPartNumber)
	if err != nil {
		return nil, err
	}
	if hasChildren {
		return nil, fmt.Errorf("%w: %q already has variants and cannot become one",
			domain.ErrConflict, variantPartNumber)
	}

	if existing, err := s.variants.FindByVariant(ctx, variantPartNumber); err == nil {
		if existing.ParentPartNumber == parentPartNumber {
			return &dto.VariantResponse{
				VariantPartNumber: existing.VariantPartNumber,
				ParentPartNumber:  existing.ParentPartNumber,
			}, nil
		}
		return nil, fmt.Errorf("%w: %q is already linked to parent %q",
			domain.ErrConflict, variantPartNumber, existing.ParentPartNumber)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	edge := &model.ProductVariant{
		VariantPartNumber: variantPartNumber,
		ParentPartNumber:  parentPartNumber,
	}
	if err := s.variants.Create(ctx, edge); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %q is already linked", domain.ErrConflict, variantPartNumber)
		}
		return nil, err
	}
	return &dto.VariantResponse{
		VariantPartNumber: edge.VariantPartNumber,
		ParentPartNumber:  edge.ParentPartNumber,
	}, nil
}

func (s *variantService) Unlink(ctx context.Context, variantPartNumber string) error {
	if _, err := s.variants.FindByVariant(ctx, variantPartNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %q has no parent link", domain.ErrNotFound, variantPartNumber)
		}
		return err
	}
	return s.variants.Delete(ctx, variantPartNumber)
}

func (s *variantService) ChildrenOf(ctx context.Context, parentPartNumber string) ([]dto.VariantResponse, error) {
	edges, err := s.variants.ListByParent(ctx, parentPartNumber)
	if err != nil {
		return nil, err
	}
	result := make([]dto.VariantResponse, 0, len(edges))
	for _, e := range edges {
		result = append(result, dto.VariantResponse{
			VariantPartNumber: e.VariantPartNumber,
			ParentPartNumber:  e.ParentPartNumber,
		})
	}
	return result, nil
}

func (s *variantService) ParentOf(ctx context.Context, variantPartNumber string) (*dto.VariantResponse, error) {
	edge, err := s.variants.FindByVariant(ctx, variantPartNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q has no parent link", domain.ErrNotFound, variantPartNumber)
		}
		return nil, err
	}
	return &dto.VariantResponse{
		VariantPartNumber: edge.VariantPartNumber,
		ParentPartNumber:  edge.ParentPartNumber,
	}, nil
}
