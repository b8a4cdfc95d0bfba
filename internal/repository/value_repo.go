package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

// ValueRepository is the data access contract for typed attribute values.
// Mutations run inside caller-owned transactions so AttributeValueService can
// lock the row and rewrite all slots atomically.
type ValueRepository interface {
	// FindForUpdateTx locks the (part_number, attribute_id) row with
	// SELECT … FOR UPDATE. Returns gorm.ErrRecordNotFound when no row exists.
	FindForUpdateTx(tx *gorm.DB, partNumber string, attributeID uuid.UUID) (*model.ProductAttributeValue, error)
	CreateTx(tx *gorm.DB, v *model.ProductAttributeValue) error
	SaveTx(tx *gorm.DB, v *model.ProductAttributeValue) error

	FindByKey(ctx context.Context, partNumber string, attributeID uuid.UUID) (*model.ProductAttributeValue, error)
	ListByPart(ctx context.Context, partNumber string) ([]model.ProductAttributeValue, error)
	// AttributeIDsWithValue returns the attribute IDs that have a stored value
	// for the product — the "present" half of the requiredMissing set difference.
	AttributeIDsWithValue(ctx context.Context, partNumber string) ([]uuid.UUID, error)

	DeleteByPartTx(tx *gorm.DB, partNumber string) error
	DeleteByAttributeTx(tx *gorm.DB, attributeID uuid.UUID) error

	DB() *gorm.DB
}

type valueRepo struct{ db *gorm.DB }

func NewValueRepository(db *gorm.DB) ValueRepository { return &valueRepo{db: db} }

func (r *valueRepo) FindForUpdateTx(tx *gorm.DB, partNumber string, attributeID uuid.UUID) (*model.ProductAttributeValue, error) {
	var v model.ProductAttributeValue
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("part_number = ? AND attribute_id = ?", partNumber, attributeID).
		First(&v).Error
	return &v, err
}

func (r *valueRepo) CreateTx(tx *gorm.DB, v *model.ProductAttributeValue) error {
	return tx.Create(v).Error
}

func (r *valueRepo) SaveTx(tx *gorm.DB, v *model.ProductAttributeValue) error {
	return tx.Save(v).Error
}

func (r *valueRepo) FindByKey(ctx context.Context, partNumber string, attributeID uuid.UUID) (*model.ProductAttributeValue, error) {
	var v model.ProductAttributeValue
	err := r.db.WithContext(ctx).
		Where("part_number = ? AND attribute_id = ?", partNumber, attributeID).
		Preload("Option").
		First(&v).Error
	return &v, err
}

func (r *valueRepo) ListByPart(ctx context.Context, partNumber string) ([]model.ProductAttributeValue, error) {
	var values []model.ProductAttributeValue
	err := r.db.WithContext(ctx).
		Where("part_number = ?", partNumber).
		Preload("Attribute").
		Preload("Option").
		Find(&values).Error
	return values, err
}

func (r *valueRepo) AttributeIDsWithValue(ctx context.Context, partNumber string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&model.ProductAttributeValue{}).
		Where("part_number = ?", partNumber).
		Pluck("attribute_id", &ids).Error
	return ids, err
}

func (r *valueRepo) DeleteByPartTx(tx *gorm.DB, partNumber string) error {
	return tx.Where("part_number = ?", partNumber).Delete(&model.ProductAttributeValue{}).Error
}

func (r *valueRepo) DeleteByAttributeTx(tx *gorm.DB, attributeID uuid.UUID) error {
	return tx.Where("attribute_id = ?", attributeID).Delete(&model.ProductAttributeValue{}).Error
}

func (r *valueRepo) DB() *gorm.DB { return r.db }
