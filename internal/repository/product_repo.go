package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/dto"
	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

// ProductRepository is the data access contract for product records.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByPartNumber(ctx context.Context, partNumber string) (*model.Product, error)
	// FindFull loads the product with all reference associations for projection.
	FindFull(ctx context.Context, partNumber string) (*model.Product, error)
	Exists(ctx context.Context, partNumber string) (bool, error)
	List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, p *model.Product) error
	DeleteTx(tx *gorm.DB, partNumber string) error
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByPartNumber(ctx context.Context, partNumber string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("part_number = ?", partNumber).First(&p).Error
	return &p, err
}

func (r *productRepo) FindFull(ctx context.Context, partNumber string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).
		Where("part_number = ?", partNumber).
		Preload("Brand").
		Preload("Category").
		Preload("Vendor").
		Preload("Warranty").
		Preload("Dimensions").
		First(&p).Error
	return &p, err
}

func (r *productRepo) Exists(ctx context.Context, partNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("part_number = ?", partNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *productRepo) List(ctx context.Context, filter dto.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Product{})

	if filter.PartNumber != "" {
		q = q.Where("part_number = ?", filter.PartNumber)
	}
	if filter.Barcode != "" {
		q = q.Where("barcode = ?", filter.Barcode)
	}
	if filter.BrandID != "" {
		q = q.Where("brand_id = ?", filter.BrandID)
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Order("part_number ASC").Limit(filter.Limit).Offset(offset).Find(&products).Error
	return products, total, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) DeleteTx(tx *gorm.DB, partNumber string) error {
	return tx.Where("part_number = ?", partNumber).Delete(&model.Product{}).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
