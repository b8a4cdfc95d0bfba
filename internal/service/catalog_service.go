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

// CatalogService assembles the denormalized catalog record for one product.
// The projection is a pure read over current source state — recomputable at
// any time, never cached, never invalidated.
type CatalogService interface {
	Project(ctx context.Context, partNumber string) (*dto.CatalogRecord, error)
}

type catalogService struct {
	products repository.ProductRepository
	media    repository.MediaRepository
	prices   PriceService
}

func NewCatalogService(
	products repository.ProductRepository,
	media repository.MediaRepository,
	prices PriceService,
) CatalogService {
	return &catalogService{products: products, media: media, prices: prices}
}

// Project composes brand, category, vendor, warranty, dimensions, the first
// image and youtube entry by position, and the resolved current price into
// one flat record. Absent references yield null fields (outer-join
// semantics); a missing product is the only error case.
func (s *catalogService) Project(ctx context.Context, partNumber string) (*dto.CatalogRecord, error) {
	p, err := s.products.FindFull(ctx, partNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product %q", domain.ErrNotFound, partNumber)
		}
		return nil, err
	}

	rec := &dto.CatalogRecord{
		PartNumber:           p.PartNumber,
		ModelCode:            p.ModelCode,
		Barcode:              p.Barcode,
		SapArticleID:         p.SapArticleID,
		DescriptionShort:     p.DescriptionShort,
		DescriptionLong:      p.DescriptionLong,
		DescriptionTechnical: p.DescriptionTechnical,
		CountryOfOriginCode:  p.CountryOfOriginCode,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}

	if p.Brand != nil {
		rec.BrandName = &p.Brand.Name
	}
	if p.Category != nil {
		rec.CategoryCode = &p.Category.Code
		rec.CategoryName = &p.Category.Name
		rec.CategoryGccCode = p.Category.GccCode
	}
	if p.Vendor != nil {
		rec.VendorName = &p.Vendor.Name
		rec.VendorCountry = p.Vendor.Country
	}
	if p.Warranty != nil {
		rec.WarrantyTypeCode = &p.Warranty.TypeCode
		rec.WarrantyDurationMonths = &p.Warranty.DurationMonths
	}
	if p.Dimensions != nil {
		rec.LengthMm = p.Dimensions.LengthMm
		rec.WidthMm = p.Dimensions.WidthMm
		rec.HeightMm = p.Dimensions.HeightMm
		rec.WeightKg = p.Dimensions.WeightKg
		rec.GrossWeightKg = p.Dimensions.GrossWeightKg
		rec.VolumeM3 = p.Dimensions.VolumeM3
		rec.PackQty = p.Dimensions.PackQty
	}

	// First-by-position pick, independently per media type.
	if img, err := s.media.FirstByType(ctx, partNumber, model.MediaImage); err == nil {
		rec.ImageMainURL = &img.URL
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if yt, err := s.media.FirstByType(ctx, partNumber, model.MediaYoutube); err == nil {
		rec.YoutubeURL = &yt.URL
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	price, err := s.prices.ResolveCurrent(ctx, partNumber, nil)
	if err != nil {
		return nil, err
	}
	if price != nil {
		rec.CurrencyCode = &price.CurrencyCode
		rec.Msrp = price.Msrp
		rec.Rrp = price.Rrp
		retail := price.RetailPrice
		rec.RetailPrice = &retail
		rec.DiscountPrice = price.DiscountPrice
		rec.CostPriceExTax = price.CostPriceExTax
		effective := price.EffectiveDate
		rec.EffectiveDate = &effective
	}

	return rec, nil
}
