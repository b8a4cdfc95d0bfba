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

// maxCategoryDepth bounds the ancestor walk so a corrupted parent chain can
// never loop forever.
const maxCategoryDepth = 64

// CategoryService owns the category tree and keeps the parent graph acyclic —
// storage does not enforce that, so every parent change walks the chain.
type CategoryService interface {
	Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	// GetAncestors returns the chain from the category's parent up to the root.
	GetAncestors(ctx context.Context, id uuid.UUID) ([]dto.CategoryResponse, error)
}

type categoryService struct {
	repo repository.CategoryRepository
}

func NewCategoryService(repo repository.CategoryRepository) CategoryService {
	return &categoryService{repo: repo}
}

func mapCategory(c model.Category) dto.CategoryResponse {
	resp := dto.CategoryResponse{
		ID:      c.ID.String(),
		Code:    c.Code,
		Name:    c.Name,
		GccCode: c.GccCode,
	}
	if c.ParentID != nil {
		s := c.ParentID.String()
		resp.ParentID = &s
	}
	return resp
}

func (s *categoryService) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if _, err := s.repo.FindByCode(ctx, req.Code); err == nil {
		return nil, fmt.Errorf("%w: category code %q already exists", domain.ErrConflict, req.Code)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.Category{Code: req.Code, Name: req.Name, GccCode: req.GccCode}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("%w: parent_id", domain.ErrTypeMismatch)
		}
		if _, err := s.repo.FindByID(ctx, parentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: parent category %s", domain.ErrNotFound, parentID)
			}
			return nil, err
		}
		c.ParentID = &parentID
	}

	if err := s.repo.Create(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: category code %q already exists", domain.ErrConflict, req.Code)
		}
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

func (s *categoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
		}
		return nil, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.GccCode != nil {
		c.GccCode = req.GccCode
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("%w: parent_id", domain.ErrTypeMismatch)
		}
		if err := s.checkAcyclic(ctx, id, parentID); err != nil {
			return nil, err
		}
		c.ParentID = &parentID
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	resp := mapCategory(*c)
	return &resp, nil
}

// checkAcyclic walks up from the proposed parent; hitting the category itself
// anywhere on the chain would close a cycle.
func (s *categoryService) checkAcyclic(ctx context.Context, id, parentID uuid.UUID) error {
	if parentID == id {
		return fmt.Errorf("%w: category %s cannot be its own parent", domain.ErrSelfReference, id)
	}
	current := parentID
	for depth := 0; depth < maxCategoryDepth; depth++ {
		node, err := s.repo.FindByID(ctx, current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: parent category %s", domain.ErrNotFound, current)
			}
			return err
		}
		if node.ParentID == nil {
			return nil
		}
		if *node.ParentID == id {
			return fmt.Errorf("%w: linking to %s would close a category cycle", domain.ErrSelfReference, parentID)
		}
		current = *node.ParentID
	}
	return fmt.Errorf("%w: category chain exceeds depth %d", domain.ErrSelfReference, maxCategoryDepth)
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		result = append(result, mapCategory(c))
	}
	return result, nil
}

func (s *categoryService) GetAncestors(ctx context.Context, id uuid.UUID) ([]dto.CategoryResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: category %s", domain.ErrNotFound, id)
		}
		return nil, err
	}
	ancestors := make([]dto.CategoryResponse, 0)
	current := c.ParentID
	for depth := 0; current != nil && depth < maxCategoryDepth; depth++ {
		node, err := s.repo.FindByID(ctx, *current)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				break
			}
			return nil, err
		}
		ancestors = append(ancestors, mapCategory(*node))
		current = node.ParentID
	}
	return ancestors, nil
}
