package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

// MediaRepository stores a product's ordered media gallery.
type MediaRepository interface {
	Create(ctx context.Context, m *model.ProductMedia) error
	ListByPart(ctx context.Context, partNumber string) ([]model.ProductMedia, error)
	// FirstByType returns the entry of the given type with the lowest
	// position, or gorm.ErrRecordNotFound. Ties on position break on id so the
	// pick stays deterministic.
	FirstByType(ctx context.Context, partNumber string, mediaType model.MediaType) (*model.ProductMedia, error)
	// Delete removes the entry only when it belongs to the given product;
	// gorm.ErrRecordNotFound when no row matched.
	Delete(ctx context.Context, partNumber string, id uuid.UUID) error
	DeleteByPartTx(tx *gorm.DB, partNumber string) error
	DB() *gorm.DB
}

type mediaRepo struct{ db *gorm.DB }

func NewMediaRepository(db *gorm.DB) MediaRepository { return &mediaRepo{db: db} }

func (r *mediaRepo) Create(ctx context.Context, m *model.ProductMedia) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mediaRepo) ListByPart(ctx context.Context, partNumber string) ([]model.ProductMedia, error) {
	var media []model.ProductMedia
	err := r.db.WithContext(ctx).
		Where("part_number = ?", partNumber).
		Order("media_type ASC").
		Order("position ASC").
		Find(&media).Error
	return media, err
}

func (r *mediaRepo) FirstByType(ctx context.Context, partNumber string, mediaType model.MediaType) (*model.ProductMedia, error) {
	var m model.ProductMedia
	err := r.db.WithContext(ctx).
		Where("part_number = ? AND media_type = ?", partNumber, mediaType).
		Order("position ASC").
		Order("id ASC").
		First(&m).Error
	return &m, err
}

func (r *mediaRepo) Delete(ctx context.Context, partNumber string, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("part_number = ? AND id = ?", partNumber, id).
		Delete(&model.ProductMedia{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mediaRepo) DeleteByPartTx(tx *gorm.DB, partNumber string) error {
	return tx.Where("part_number = ?", partNumber).Delete(&model.ProductMedia{}).Error
}

func (r *mediaRepo) DB() *gorm.DB { return r.db }
