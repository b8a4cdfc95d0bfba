package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

// PriceRepository reads and appends dated price rows. Resolution logic lives
// in PriceService; this layer only orders and filters.
type PriceRepository interface {
	Create(ctx context.Context, p *model.Price) error
	// FindCurrent returns the row with the greatest effective_date, bounded by
	// asOf when non-nil. Ties on effective_date break on highest id.
	FindCurrent(ctx context.Context, partNumber string, asOf *time.Time) (*model.Price, error)
	// ListByPart returns the full history ordered by effective_date ascending.
	ListByPart(ctx context.Context, partNumber string) ([]model.Price, error)
	DeleteByPartTx(tx *gorm.DB, partNumber string) error
	DB() *gorm.DB
}

type priceRepo struct{ db *gorm.DB }

func NewPriceRepository(db *gorm.DB) PriceRepository { return &priceRepo{db: db} }

func (r *priceRepo) Create(ctx context.Context, p *model.Price) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *priceRepo) FindCurrent(ctx context.Context, partNumber string, asOf *time.Time) (*model.Price, error) {
	q := r.db.WithContext(ctx).Where("part_number = ?", partNumber)
	if asOf != nil {
		q = q.Where("effective_date <= ?", *asOf)
	}
	var p model.Price
	err := q.Order("effective_date DESC").Order("id DESC").First(&p).Error
	return &p, err
}

func (r *priceRepo) ListByPart(ctx context.Context, partNumber string) ([]model.Price, error) {
	var prices []model.Price
	err := r.db.WithContext(ctx).
		Where("part_number = ?", partNumber).
		Order("effective_date ASC").
		Order("id ASC").
		Find(&prices).Error
	return prices, err
}

func (r *priceRepo) DeleteByPartTx(tx *gorm.DB, partNumber string) error {
	return tx.Where("part_number = ?", partNumber).Delete(&model.Price{}).Error
}

func (r *priceRepo) DB() *gorm.DB { return r.db }
