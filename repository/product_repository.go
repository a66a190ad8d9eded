// repository/product_repository.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	"github.com/andreyques41/lyfter-store/model"
)

type ProductRepository interface {
	Repository[model.Product]
	Search(ctx context.Context, criteria model.ProductSearchCriteria) ([]model.Product, error)
}

type productRepository struct {
	gormRepository[model.Product]
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{gormRepository[model.Product]{
		db:       db,
		notFound: lyfter_errors.ErrProductNotFound,
	}}
}

func (r *productRepository) Search(ctx context.Context, criteria model.ProductSearchCriteria) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{})

	if criteria.Name != "" {
		tx = tx.Where("name ILIKE ?", "%"+criteria.Name+"%")
	}
	if criteria.Category != "" {
		tx = tx.Where("category = ?", criteria.Category)
	}
	if criteria.MinPrice != nil {
		tx = tx.Where("price >= ?", *criteria.MinPrice)
	}
	if criteria.MaxPrice != nil {
		tx = tx.Where("price <= ?", *criteria.MaxPrice)
	}
	if criteria.InStock {
		tx = tx.Where("stock > 0")
	}
	if criteria.Limit > 0 {
		tx = tx.Limit(criteria.Limit)
	}
	if criteria.Offset > 0 {
		tx = tx.Offset(criteria.Offset)
	}

	var products []model.Product
	if err := tx.Order("name").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, err)
	}
	return products, nil
}
