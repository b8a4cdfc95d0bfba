package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/damian-dev1/Ecommerce-Manager/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// over the catalog schema. TranslateError is on so unique-index violations
// surface as gorm.ErrDuplicatedKey and services can map them to conflicts.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// RunMigrations creates / updates all catalog tables. Reference tables come
// first so FK targets exist before the tables pointing at them.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Brand{},
		&model.Vendor{},
		&model.Warranty{},
		&model.Dimensions{},
		&model.AttributeGroup{},
		&model.Attribute{},
		&model.AttributeOption{},
		&model.Category{},
		&model.CategoryAttribute{},
		&model.Product{},
		&model.ProductAttributeValue{},
		&model.Price{},
		&model.ProductVariant{},
		&model.ProductMedia{},
	)
}
