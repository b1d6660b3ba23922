package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/beingsaumyadeep/py-commerce/internal/models"
	"github.com/beingsaumyadeep/py-commerce/internal/util"
)

type CatalogService struct {
	DB *gorm.DB
}

// CreateProduct persists the product together with its metadata and initial
// stock row. All three rows exist after the call, or none.
func (s *CatalogService) CreateProduct(ctx context.Context, product *models.Product, metadata *models.ProductMetadata, initialStock int) (*models.Product, error) {
	if product.Name == "" {
		return nil, fmt.Errorf("%w: name required", ErrValidation)
	}
	if product.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if initialStock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", ErrValidation)
	}

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return err
		}

		metadata.ProductID = product.ID
		if err := tx.Create(metadata).Error; err != nil {
			return err
		}

		stock := models.ProductStock{
			ProductID:   product.ID,
			Quantity:    initialStock,
			LastUpdated: time.Now().UTC(),
		}
		if err := tx.Create(&stock).Error; err != nil {
			return err
		}

		product.Metadata = metadata
		product.Stock = &stock
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return product, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := s.DB.WithContext(ctx).
		Preload("Metadata").
		Preload("Stock").
		First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("product", id)
		}
		return nil, err
	}
	return &product, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, skip, limit int) ([]models.Product, error) {
	skip, limit = util.Clamp(skip, limit)

	var products []models.Product
	err := s.DB.WithContext(ctx).
		Preload("Metadata").
		Preload("Stock").
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}
