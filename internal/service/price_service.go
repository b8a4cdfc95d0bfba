package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/domain"
	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
	"github.com/damian-dev1/Ecommerce-Manager/internal/repository"
)

// PriceService resolves the single effective price among a product's dated
// price rows. Resolution is derived on every call — nothing is stored.
//
// ResolveCurrent with a nil asOf preserves the unbounded MAX(effective_date)
// behavior: a future-dated row is treated as current as soon as it is
// inserted. Passing asOf bounds the search to rows effective on or before it.
type PriceService interface {
	AddPrice(ctx context.Context, partNumber string, req dto.AddPriceRequest) (*dto.PriceResponse, error)
	ResolveCurrent(ctx context.Context, partNumber string, asOf *time.Time) (*model.Price, error)
	ResolveSeries(ctx context.Context, partNumber string) (*dto.PriceSeriesResponse, error)
}

type priceService struct {
	prices   repository.PriceRepository
	products repository.ProductRepository
}

func NewPriceService(prices repository.PriceRepository, products repository.ProductRepository) PriceService {
	return &priceService{prices: prices, products: products}
}

func mapPrice(p model.Price) dto.PriceResponse {
	return dto.PriceResponse{
		ID:             p.ID,
		PartNumber:     p.PartNumber,
		EffectiveDate:  p.EffectiveDate,
		CurrencyCode:   p.CurrencyCode,
		Msrp:           p.Msrp,
		Rrp:            p.Rrp,
		RetailPrice:    p.RetailPrice,
		DiscountPrice:  p.DiscountPrice,
		CostPriceExTax: p.CostPriceExTax,
	}
}

func (s *priceService) AddPrice(ctx context.Context, partNumber string, req dto.AddPriceRequest) (*dto.PriceResponse, error) {
	exists, err := s.products.Exists(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProduct, partNumber)
	}

	effectiveDate, err := time.Parse(dateLayout, req.EffectiveDate)
	if err != nil {
		return nil, fmt.Errorf("%w: effective_date %q is not YYYY-MM-DD", domain.ErrTypeMismatch, req.EffectiveDate)
	}
	if req.RetailPrice == nil {
		return nil, fmt.Errorf("%w: retail_price is required", domain.ErrTypeMismatch)
	}
	// Zero is a legitimate price; only negatives are rejected.
	if req.RetailPrice.IsNegative() {
		return nil, fmt.Errorf("%w: retail_price must be >= 0", domain.ErrTypeMismatch)
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = "AUD"
	}

	p := &model.Price{
		PartNumber:     partNumber,
		EffectiveDate:  effectiveDate,
		CurrencyCode:   currency,
		Msrp:           req.Msrp,
		Rrp:            req.Rrp,
		RetailPrice:    *req.RetailPrice,
		DiscountPrice:  req.DiscountPrice,
		CostPriceExTax: req.CostPriceExTax,
	}
	if err := s.prices.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: price for %q on %s already exists",
				domain.ErrConflict, partNumber, req.EffectiveDate)
		}
		return nil, err
	}
	resp := mapPrice(*p)
	return &resp, nil
}

// ResolveCurrent returns the row with the greatest effective date (bounded by
// asOf when given), nil when the product has no matching rows. Duplicate
// effective dates cannot exist under the unique index, but if one slips in the
// highest row ID wins — the pick stays deterministic.
func (s *priceService) ResolveCurrent(ctx context.Context, partNumber string, asOf *time.Time) (*model.Price, error) {
	p, err := s.prices.FindCurrent(ctx, partNumber, asOf)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// ResolveSeries returns the full history ordered by effective_date ascending.
func (s *priceService) ResolveSeries(ctx context.Context, partNumber string) (*dto.PriceSeriesResponse, error) {
	exists, err := s.products.Exists(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownProduct, partNumber)
	}
	rows, err := s.prices.ListByPart(ctx, partNumber)
	if err != nil {
		return nil, err
	}
	resp := &dto.PriceSeriesResponse{PartNumber: partNumber, Prices: make([]dto.PriceResponse, 0, len(rows))}
	for _, p := range rows {
		resp.Prices = append(resp.Prices, mapPrice(p))
	}
	return resp, nil
}
