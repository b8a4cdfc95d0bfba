package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/damian-dev1/Ecommerce-Manager/internal/domain"
	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

type catalogFixture struct {
	svc      CatalogService
	products *stubProductRepo
	media    *stubMediaRepo
	priceSvc PriceService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	t.Helper()
	products := newStubProductRepo()
	media := newStubMediaRepo()
	prices := NewPriceService(newStubPriceRepo(), products)
	return &catalogFixture{
		svc:      NewCatalogService(products, media, prices),
		products: products,
		media:    media,
		priceSvc: prices,
	}
}

func strp(s string) *string { return &s }

func TestProject_FullRecord(t *testing.T) {
	f := newCatalogFixture(t)
	packQty := 4
	p := &model.Product{
		PartNumber:       "SKU-1",
		ModelCode:        strp("MX-100"),
		DescriptionShort: strp("Compact blender"),
		Brand:            &model.Brand{Name: "Breville"},
		Category:         &model.Category{Code: "kitchen", Name: "Kitchen", GccCode: strp("GCC-7")},
		Vendor:           &model.Vendor{Name: "Acme Imports", Country: strp("AU")},
		Warranty:         &model.Warranty{TypeCode: "MFR", DurationMonths: 24},
		Dimensions: &model.Dimensions{
			LengthMm: decimalPtr("300"),
			WeightKg: decimalPtr("2.150"),
			PackQty:  &packQty,
		},
	}
	require.NoError(t, f.products.Create(context.Background(), p))

	require.NoError(t, f.media.Create(context.Background(), &model.ProductMedia{
		PartNumber: "SKU-1", MediaType: model.MediaImage, URL: "https://cdn/x-alt.jpg", Position: 2,
	}))
	require.NoError(t, f.media.Create(context.Background(), &model.ProductMedia{
		PartNumber: "SKU-1", MediaType: model.MediaImage, URL: "https://cdn/x-main.jpg", Position: 0,
	}))
	require.NoError(t, f.media.Create(context.Background(), &model.ProductMedia{
		PartNumber: "SKU-1", MediaType: model.MediaYoutube, URL: "https://youtu.be/demo", Position: 0,
	}))

	_, err := f.priceSvc.AddPrice(context.Background(), "SKU-1", dto.AddPriceRequest{
		EffectiveDate: "2026-01-01", RetailPrice: decimalPtr("149.95"), CurrencyCode: "AUD",
	})
	require.NoError(t, err)
	_, err = f.priceSvc.AddPrice(context.Background(), "SKU-1", dto.AddPriceRequest{
		EffectiveDate: "2026-06-01", RetailPrice: decimalPtr("129.95"), CurrencyCode: "AUD",
	})
	require.NoError(t, err)

	rec, err := f.svc.Project(context.Background(), "SKU-1")
	require.NoError(t, err)

	assert.Equal(t, "SKU-1", rec.PartNumber)
	require.NotNil(t, rec.BrandName)
	assert.Equal(t, "Breville", *rec.BrandName)
	require.NotNil(t, rec.CategoryCode)
	assert.Equal(t, "kitchen", *rec.CategoryCode)
	require.NotNil(t, rec.CategoryGccCode)
	assert.Equal(t, "GCC-7", *rec.CategoryGccCode)
	require.NotNil(t, rec.VendorName)
	assert.Equal(t, "Acme Imports", *rec.VendorName)
	require.NotNil(t, rec.WarrantyDurationMonths)
	assert.Equal(t, 24, *rec.WarrantyDurationMonths)
	require.NotNil(t, rec.PackQty)
	assert.Equal(t, 4, *rec.PackQty)

	// Lowest position wins, per media type.
	require.NotNil(t, rec.ImageMainURL)
	assert.Equal(t, "https://cdn/x-main.jpg", *rec.ImageMainURL)
	require.NotNil(t, rec.YoutubeURL)
	assert.Equal(t, "https://youtu.be/demo", *rec.YoutubeURL)

	// The later effective date is the current price.
	require.NotNil(t, rec.RetailPrice)
	assert.True(t, rec.RetailPrice.Equal(decimal.RequireFromString("129.95")))
	require.NotNil(t, rec.CurrencyCode)
	assert.Equal(t, "AUD", *rec.CurrencyCode)
	require.NotNil(t, rec.EffectiveDate)
}

// A product carrying nothing but its brand projects with null reference,
// media, and price fields — absence is data, not an error.
func TestProject_SparseRecordYieldsNulls(t *testing.T) {
	f := newCatalogFixture(t)
	require.NoError(t, f.products.Create(context.Background(), &model.Product{
		PartNumber: "SKU-BARE",
		Brand:      &model.Brand{Name: "NoFrills"},
	}))

	rec, err := f.svc.Project(context.Background(), "SKU-BARE")
	require.NoError(t, err)

	require.NotNil(t, rec.BrandName)
	assert.Equal(t, "NoFrills", *rec.BrandName)
	assert.Nil(t, rec.CategoryCode)
	assert.Nil(t, rec.VendorName)
	assert.Nil(t, rec.WarrantyTypeCode)
	assert.Nil(t, rec.LengthMm)
	assert.Nil(t, rec.ImageMainURL)
	assert.Nil(t, rec.YoutubeURL)
	assert.Nil(t, rec.RetailPrice)
	assert.Nil(t, rec.CurrencyCode)
	assert.Nil(t, rec.EffectiveDate)
}

func TestProject_UnknownProduct(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.svc.Project(context.Background(), "SKU-404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Re-projecting after a price change reflects the new state — the record is
// derived, never cached.
func TestProject_RecomputesOnEveryCall(t *testing.T) {
	f := newCatalogFixture(t)
	require.NoError(t, f.products.Create(context.Background(), &model.Product{
		PartNumber: "SKU-1", Brand: &model.Brand{Name: "Breville"},
	}))

	first, err := f.svc.Project(context.Background(), "SKU-1")
	require.NoError(t, err)
	assert.Nil(t, first.RetailPrice)

	_, err = f.priceSvc.AddPrice(context.Background(), "SKU-1", dto.AddPriceRequest{
		EffectiveDate: "2026-01-01", RetailPrice: decimalPtr("99"),
	})
	require.NoError(t, err)

	second, err := f.svc.Project(context.Background(), "SKU-1")
	require.NoError(t, err)
	require.NotNil(t, second.RetailPrice)
	assert.True(t, second.RetailPrice.Equal(decimal.NewFromInt(99)))
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
