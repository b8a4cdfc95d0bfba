package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

// VariantRepository stores variant→parent edges.
type VariantRepository interface {
	Create(ctx context.Context, v *model.ProductVariant) error
	FindByVariant(ctx context.Context, variantPartNumber string) (*model.ProductVariant, error)
	ListByParent(ctx context.Context, parentPartNumber string) ([]model.ProductVariant, error)
	// HasChildren reports whether the part number appears as someone's parent.
	HasChildren(ctx context.Context, partNumber string) (bool, error)
	Delete(ctx context.Context, variantPartNumber string) error
	// DeleteByPartTx removes every edge touching the part number, as variant
	// or as parent — used by the product-delete cascade.
	DeleteByPartTx(tx *gorm.DB, partNumber string) error
	DB() *gorm.DB
}

type variantRepo struct{ db *gorm.DB }

func NewVariantRepository(db *gorm.DB) VariantRepository { return &variantRepo{db: db} }

func (r *variantRepo) Create(ctx context.Context, v *model.ProductVariant) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *variantRepo) FindByVariant(ctx context.Context, variantPartNumber string) (*model.ProductVariant, error) {
	var v model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("variant_part_number = ?", variantPartNumber).
		First(&v).Error
	return &v, err
}

func (r *variantRepo) ListByParent(ctx context.Context, parentPartNumber string) ([]model.ProductVariant, error) {
	var edges []model.ProductVariant
	err := r.db.WithContext(ctx).
		Where("parent_part_number = ?", parentPartNumber).
		Order("variant_part_number ASC").
		Find(&edges).Error
	return edges, err
}

func (r *variantRepo) HasChildren(ctx context.Context, partNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.ProductVariant{}).
		Where("parent_part_number = ?", partNumber).
		Count(&count).Error
	return count > 0, err
}

func (r *variantRepo) Delete(ctx context.Context, variantPartNumber string) error {
	return r.db.WithContext(ctx).
		Where("variant_part_number = ?", variantPartNumber).
		Delete(&model.ProductVariant{}).Error
}

func (r *variantRepo) DeleteByPartTx(tx *gorm.DB, partNumber string) error {
	return tx.Where("variant_part_number = ? OR parent_part_number = ?", partNumber, partNumber).
		Delete(&model.ProductVariant{}).Error
}

func (r *variantRepo) DB() *gorm.DB { return r.db }
