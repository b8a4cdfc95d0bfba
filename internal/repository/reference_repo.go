package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

// ReferenceRepository bundles the read-mostly registries the projection
// consumes by ID: brands, vendors, warranties, dimension sets.
type ReferenceRepository interface {
	CreateBrand(ctx context.Context, b *model.Brand) error
	GetBrand(ctx context.Context, id uuid.UUID) (*model.Brand, error)
	ListBrands(ctx context.Context) ([]model.Brand, error)

	CreateVendor(ctx context.Context, v *model.Vendor) error
	GetVendor(ctx context.Context, id uuid.UUID) (*model.Vendor, error)

	CreateWarranty(ctx context.Context, w *model.Warranty) error
	GetWarranty(ctx context.Context, id uuid.UUID) (*model.Warranty, error)

	CreateDimensions(ctx context.Context, d *model.Dimensions) error
	GetDimensions(ctx context.Context, id uuid.UUID) (*model.Dimensions, error)

	DB() *gorm.DB
}

type referenceRepo struct{ db *gorm.DB }

func NewReferenceRepository(db *gorm.DB) ReferenceRepository { return &referenceRepo{db: db} }

func (r *referenceRepo) CreateBrand(ctx context.Context, b *model.Brand) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *referenceRepo) GetBrand(ctx context.Context, id uuid.UUID) (*model.Brand, error) {
	var b model.Brand
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *referenceRepo) ListBrands(ctx context.Context) ([]model.Brand, error) {
	var brands []model.Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	return brands, err
}

func (r *referenceRepo) CreateVendor(ctx context.Context, v *model.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *referenceRepo) GetVendor(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	var v model.Vendor
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	return &v, err
}

func (r *referenceRepo) CreateWarranty(ctx context.Context, w *model.Warranty) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *referenceRepo) GetWarranty(ctx context.Context, id uuid.UUID) (*model.Warranty, error) {
	var w model.Warranty
	err := r.db.WithContext(ctx).First(&w, "id = ?", id).Error
	return &w, err
}

func (r *referenceRepo) CreateDimensions(ctx context.Context, d *model.Dimensions) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *referenceRepo) GetDimensions(ctx context.Context, id uuid.UUID) (*model.Dimensions, error) {
	var d model.Dimensions
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	return &d, err
}

func (r *referenceRepo) DB() *gorm.DB { return r.db }
