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

// ProductService owns product records and their media gallery, including the
// explicit delete cascade over values, media, prices, and variant links.
type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByPartNumber(ctx context.Context, partNumber string) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, partNumber string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, partNumber string) error

	AddMedia(ctx context.Context, partNumber string, req dto.AddMediaRequest) (*dto.MediaResponse, error)
	ListMedia(ctx context.Context, partNumber string) ([]dto.MediaResponse, error)
	DeleteMedia(ctx context.Context, partNumber string, mediaID uuid.UUID) error
}

type productService struct {
	products repository.ProductRepository
	values   repository.ValueRepository
	media    repository.MediaRepository
	prices   repository.PriceRepository
	variants repository.VariantRepository
	refs     repository.ReferenceRepository
}

func NewProductService(
	products repository.ProductRepository,
	values repository.ValueRepository,
	media repository.MediaRepository,
	prices repository.PriceRepository,
	variants repository.VariantRepository,
	refs repository.ReferenceRepository,
) ProductService {
	return &productService{
		products: products,
		values:   values,
		media:    media,
		prices:   prices,
		variants: variants,
		refs:     refs,
	}
}

func mapProduct(p model.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		PartNumber:           p.PartNumber,
		ModelCode:            p.ModelCode,
		Barcode:              p.Barcode,
		SapArticleID:         p.SapArticleID,
		DescriptionShort:     p.DescriptionShort,
		DescriptionLong:      p.DescriptionLong,
		DescriptionTechnical: p.DescriptionTechnical,
		CountryOfOriginCode:  p.CountryOfOriginCode,
		BrandID:              p.BrandID.String(),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
	if p.CategoryID != nil {
		s := p.CategoryID.String()
		resp.CategoryID = &s
	}
	if p.VendorID != nil {
		s := p.VendorID.String()
		resp.VendorID = &s
	}
	if p.WarrantyID != nil {
		s := p.WarrantyID.String()
		resp.WarrantyID = &s
	}
	if p.DimensionsID != nil {
		s := p.DimensionsID.String()
		resp.DimensionsID = &s
	}
	return resp
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if exists, err := s.products.Exists(ctx, req.PartNumber); err != nil {
		return nil, err
	} else if exists {
		return nil, fmt.Errorf("%w: part number %q already exists", domain.ErrConflict, req.PartNumber)
	}

	brandID, err := uuid.Parse(req.BrandID)
	if err != nil {
		return nil, fmt.Errorf("%w: brand_id", domain.ErrTypeMismatch)
	}
	if _, err := s.refs.GetBrand(ctx, brandID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: brand %s", domain.ErrNotFound, brandID)
		}
		return nil, err
	}

	categoryID, err := parseOptionalUUID(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: category_id", domain.ErrTypeMismatch)
	}
	vendorID, err := parseOptionalUUID(req.VendorID)
	if err != nil {
		return nil, fmt.Errorf("%w: vendor_id", domain.ErrTypeMismatch)
	}
	warrantyID, err := parseOptionalUUID(req.WarrantyID)
	if err != nil {
		return nil, fmt.Errorf("%w: warranty_id", domain.ErrTypeMismatch)
	}
	dimensionsID, err := parseOptionalUUID(req.DimensionsID)
	if err != nil {
		return nil, fmt.Errorf("%w: dimensions_id", domain.ErrTypeMismatch)
	}

	p := &model.Product{
		PartNumber:           req.PartNumber,
		ModelCode:            req.ModelCode,
		Barcode:              req.Barcode,
		SapArticleID:         req.SapArticleID,
		DescriptionShort:     req.DescriptionShort,
		DescriptionLong:      req.DescriptionLong,
		DescriptionTechnical: req.DescriptionTechnical,
		CountryOfOriginCode:  req.CountryOfOriginCode,
		BrandID:              brandID,
		CategoryID:           categoryID,
		VendorID:             vendorID,
		WarrantyID:           warrantyID,
		DimensionsID:         dimensionsID,
	}
	if err := s.products.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: part number %q already exists", domain.ErrConflict, req.PartNumber)
		}
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) GetByPartNumber(ctx context.Context, partNumber string) (*dto.ProductResponse, error) {
	p, err := s.products.FindByPartNumber(ctx, partNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %q", domain.ErrNotFound, partNumber)
		}
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}
	products, total, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Data:  make([]dto.ProductResponse, 0, len(products)),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}
	for _, p := range products {
		resp.Data = append(resp.Data, mapProduct(p))
	}
	resp.TotalPages = int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return resp, nil
}

func (s *productService) Update(ctx context.Context, partNumber string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.products.FindByPartNumber(ctx, partNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %q", domain.ErrNotFound, partNumber)
		}
		return nil, err
	}

	if req.BrandID != nil {
		brandID, err := uuid.Parse(*req.BrandID)
		if err != nil {
			return nil, fmt.Errorf("%w: brand_id", domain.ErrTypeMismatch)
		}
		if _, err := s.refs.GetBrand(ctx, brandID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: brand %s", domain.ErrNotFound, brandID)
			}
			return nil, err
		}
		p.BrandID = brandID
	}
	if req.CategoryID != nil {
		id, err := parseOptionalUUID(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("%w: category_id", domain.ErrTypeMismatch)
		}
		p.CategoryID = id
	}
	if req.VendorID != nil {
		id, err := parseOptionalUUID(req.VendorID)
		if err != nil {
			return nil, fmt.Errorf("%w: vendor_id", domain.ErrTypeMismatch)
		}
		p.VendorID = id
	}
	if req.WarrantyID != nil {
		id, err := parseOptionalUUID(req.WarrantyID)
		if err != nil {
			return nil, fmt.Errorf("%w: warranty_id", domain.ErrTypeMismatch)
		}
		p.WarrantyID = id
	}
	if req.DimensionsID != nil {
		id, err := parseOptionalUUID(req.DimensionsID)
		if err != nil {
			return nil, fmt.Errorf("%w: dimensions_id", domain.ErrTypeMismatch)
		}
		p.DimensionsID = id
	}

	if req.ModelCode != nil {
		p.ModelCode = req.ModelCode
	}
	if req.Barcode != nil {
		p.Barcode = req.Barcode
	}
	if req.SapArticleID != nil {
		p.SapArticleID = req.SapArticleID
	}
	if req.DescriptionShort != nil {
		p.DescriptionShort = req.DescriptionShort
	}
	if req.DescriptionLong != nil {
		p.DescriptionLong = req.DescriptionLong
	}
	if req.DescriptionTechnical != nil {
		p.DescriptionTechnical = req.DescriptionTechnical
	}
	if req.CountryOfOriginCode != nil {
		p.CountryOfOriginCode = req.CountryOfOriginCode
	}

	if err := s.products.Update(ctx, p); err != nil {
		return nil, err
	}
	resp := mapProduct(*p)
	return &resp, nil
}

// Delete removes the product and, in the same transaction, every dependent
// row: attribute values, media, prices, and variant edges in either role.
// This is the explicit cascade the schema does not declare.
func (s *productService) Delete(ctx context.Context, partNumber string) error {
	if exists, err := s.products.Exists(ctx, partNumber); err != nil {
		return err
	} else if !exists {
		return fmt.Errorf("%w: product %q", domain.ErrNotFound, partNumber)
	}
	return runTx(ctx, s.products.DB(), func(tx *gorm.DB) error {
		if err := s.values.DeleteByPartTx(tx, partNumber); err != nil {
			return err
		}
		if err := s.media.DeleteByPartTx(tx, partNumber); err != nil {
			return err
		}
		if err := s.prices.DeleteByPartTx(tx, partNumber); err != nil {
			return err
		}
		if err := s.variants.DeleteByPartTx(tx, partNumber); err != nil {
			return err
		}
		return s.products.DeleteTx(tx, partNumber)
	})
}

func (s *productService) AddMedia(ctx context.Context, partNumber string, req dto.AddMediaRequest) (*dto.MediaResponse, error) {
	if exists, err := s.products.Exists(ctx, partNumber); err != nil {
		return nil, err
	} else if !exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProduct, partNumber)
	}
	mediaType := model.MediaType(req.MediaType)
	if !model.ValidMediaType(mediaType) {
		return nil, fmt.Errorf("%w: media type %q", domain.ErrTypeMismatch, req.MediaType)
	}
	m := &model.ProductMedia{
		PartNumber: partNumber,
		MediaType:  mediaType,
		URL:        req.URL,
		Position:   req.Position,
	}
	if err := s.media.Create(ctx, m); err != nil {
		return nil, err
	}
	return &dto.MediaResponse{
		ID:        m.ID.String(),
		MediaType: string(m.MediaType),
		URL:       m.URL,
		Position:  m.Position,
	}, nil
}

func (s *productService) ListMedia(ctx context.Context, partNumber string) ([]dto.MediaResponse, error) {
	media, err := s.media.ListByPart(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	result := make([]dto.MediaResponse, 0, len(media))
	for _, m := range media {
		result = append(result, dto.MediaResponse{
			ID:        m.ID.String(),
			MediaType: string(m.MediaType),
			URL:       m.URL,
			Position:  m.Position,
		})
	}
	return result, nil
}

func (s *productService) DeleteMedia(ctx context.Context, partNumber string, mediaID uuid.UUID) error {
	if err := s.media.Delete(ctx, partNumber, mediaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: media %s on product %q", domain.ErrNotFound, mediaID, partNumber)
		}
		return err
	}
	return nil
}
