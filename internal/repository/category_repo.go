package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

// CategoryRepository is the data access contract for the category tree.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	FindByCode(ctx context.Context, code string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	DB() *gorm.DB
}

type categoryRepo struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepo{db: db} }

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *categoryRepo) FindByCode(ctx context.Context, code string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&c).Error
	return &c, err
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	err := r.db.WithContext(ctx).Order("code ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *categoryRepo) DB() *gorm.DB { return r.db }
