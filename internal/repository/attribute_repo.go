package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

// AttributeRepository is the data access contract for the attribute schema:
// attributes, their groups, enum options, and per-category assignments.
// Services depend on this interface, not on the concrete GORM implementation.
type AttributeRepository interface {
	Create(ctx context.Context, a *model.Attribute) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Attribute, error)
	FindByCode(ctx context.Context, code string) (*model.Attribute, error)
	List(ctx context.Context) ([]model.Attribute, error)

	CreateGroup(ctx context.Context, g *model.AttributeGroup) error
	FindGroupByCode(ctx context.Context, code string) (*model.AttributeGroup, error)

	CreateOption(ctx context.Context, o *model.AttributeOption) error
	FindOption(ctx context.Context, attributeID uuid.UUID, value string) (*model.AttributeOption, error)
	ListOptions(ctx context.Context, attributeID uuid.UUID) ([]model.AttributeOption, error)

	UpsertCategoryAttribute(ctx context.Context, ca *model.CategoryAttribute) error
	ListCategoryAttributes(ctx context.Context, categoryID uuid.UUID) ([]model.CategoryAttribute, error)

	// Used inside the attribute-delete transaction — callers pass the tx.
	DeleteOptionsTx(tx *gorm.DB, attributeID uuid.UUID) error
	DeleteAssignmentsTx(tx *gorm.DB, attributeID uuid.UUID) error
	DeleteTx(tx *gorm.DB, attributeID uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type attributeRepo struct{ db *gorm.DB }

func NewAttributeRepository(db *gorm.DB) AttributeRepository { return &attributeRepo{db: db} }

func (r *attributeRepo) Create(ctx context.Context, a *model.Attribute) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *attributeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Attribute, error) {
	var a model.Attribute
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *attributeRepo) FindByCode(ctx context.Context, code string) (*model.Attribute, error) {
	var a model.Attribute
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&a).Error
	return &a, err
}

func (r *attributeRepo) List(ctx context.Context) ([]model.Attribute, error) {
	var attrs []model.Attribute
	err := r.db.WithContext(ctx).Preload("Group").Order("code ASC").Find(&attrs).Error
	return attrs, err
}

func (r *attributeRepo) CreateGroup(ctx context.Context, g *model.AttributeGroup) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *attributeRepo) FindGroupByCode(ctx context.Context, code string) (*model.AttributeGroup, error) {
	var g model.AttributeGroup
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&g).Error
	return &g, err
}

func (r *attributeRepo) CreateOption(ctx context.Context, o *model.AttributeOption) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *attributeRepo) FindOption(ctx context.Context, attributeID uuid.UUID, value string) (*model.AttributeOption, error) {
	var o model.AttributeOption
	err := r.db.WithContext(ctx).
		Where("attribute_id = ? AND value = ?", attributeID, value).
		First(&o).Error
	return &o, err
}

func (r *attributeRepo) ListOptions(ctx context.Context, attributeID uuid.UUID) ([]model.AttributeOption, error) {
	var opts []model.AttributeOption
	err := r.db.WithContext(ctx).
		Where("attribute_id = ?", attributeID).
		Order("value ASC").
		Find(&opts).Error
	return opts, err
}

// UpsertCategoryAttribute inserts or updates the assignment keyed by
// (category_id, attribute_id) — the operation is idempotent.
func (r *attributeRepo) UpsertCategoryAttribute(ctx context.Context, ca *model.CategoryAttribute) error {
	var existing model.CategoryAttribute
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND attribute_id = ?", ca.CategoryID, ca.AttributeID).
		First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(ca).Error
	}
	if err != nil {
		return err
	}
	existing.Required = ca.Required
	existing.SortOrder = ca.SortOrder
	*ca = existing
	return r.db.WithContext(ctx).Save(&existing).Error
}

func (r *attributeRepo) ListCategoryAttributes(ctx context.Context, categoryID uuid.UUID) ([]model.CategoryAttribute, error) {
	var cas []model.CategoryAttribute
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("sort_order ASC").
		Preload("Attribute").
		Find(&cas).Error
	return cas, err
}

func (r *attributeRepo) DeleteOptionsTx(tx *gorm.DB, attributeID uuid.UUID) error {
	return tx.Where("attribute_id = ?", attributeID).Delete(&model.AttributeOption{}).Error
}

func (r *attributeRepo) DeleteAssignmentsTx(tx *gorm.DB, attributeID uuid.UUID) error {
	return tx.Where("attribute_id = ?", attributeID).Delete(&model.CategoryAttribute{}).Error
}

func (r *attributeRepo) DeleteTx(tx *gorm.DB, attributeID uuid.UUID) error {
	return tx.Where("id = ?", attributeID).Delete(&model.Attribute{}).Error
}

func (r *attributeRepo) DB() *gorm.DB { return r.db }
