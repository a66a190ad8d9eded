// service/product_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andreyques41/lyfter-store/cache"
	logger "github.com/andreyques41/lyfter-store/logging"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/repository"
	"github.com/andreyques41/lyfter-store/util"
)

// IProductService defines the interface for product operations
type IProductService interface {
	CreateProduct(ctx context.Context, product model.Product, actorID string) (*model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product, actorID string) (*model.Product, error)
	DeleteProduct(ctx context.Context, productID string, actorID string) error
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	GetAllProducts(ctx context.Context) ([]model.Product, error)
	ListProducts(ctx context.Context, limit, offset int) ([]model.Product, error)
	SearchProducts(ctx context.Context, criteria model.ProductSearchCriteria) ([]model.Product, error)
}

// ProductService handles business logic for product operations. All reads
// and writes that touch single products or product collections go through
// the cache-aside store; searches hit the repository directly since their
// criteria space is unbounded.
type ProductService struct {
	store          *CachedStore[model.Product]
	productRepo    repository.ProductRepository
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IProductService = &ProductService{}

func NewProductService(productRepo repository.ProductRepository, kv cache.KeyValueCache, ttls CacheTTLs, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *ProductService {
	return &ProductService{
		store:          NewCachedStore[model.Product](model.KindProduct, productRepo, kv, ttls.Entry, ttls.List),
		productRepo:    productRepo,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// CreateProduct handles the creation of a new product
func (s *ProductService) CreateProduct(ctx context.Context, product model.Product, actorID string) (*model.Product, error) {
	if err := s.validationUtil.ValidateProduct(product); err != nil {
		return nil, err
	}

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	created, err := s.store.Create(ctx, product)
	if err != nil {
		logger.Error("Error creating product", zap.Error(err), zap.String("actorID", actorID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindProduct, util.ActionCreated), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionCreated,
		Kind:     model.KindProduct,
		EntityID: created.ID,
	})

	logger.Info("Product created successfully", zap.String("productID", created.ID), zap.String("actorID", actorID))
	return created, nil
}

// UpdateProduct handles updates to an existing product
func (s *ProductService) UpdateProduct(ctx context.Context, product model.Product, actorID string) (*model.Product, error) {
	if err := s.validationUtil.ValidateProduct(product); err != nil {
		return nil, err
	}

	product.UpdatedAt = time.Now()

	updated, err := s.store.Update(ctx, product.ID, product)
	if err != nil {
		logger.Error("Error updating product", zap.Error(err), zap.String("productID", product.ID), zap.String("actorID", actorID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindProduct, util.ActionUpdated), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionUpdated,
		Kind:     model.KindProduct,
		EntityID: updated.ID,
	})

	logger.Info("Product updated successfully", zap.String("productID", updated.ID), zap.String("actorID", actorID))
	return updated, nil
}

// DeleteProduct handles the deletion of a product
func (s *ProductService) DeleteProduct(ctx context.Context, productID string, actorID string) error {
	if err := s.store.Delete(ctx, productID); err != nil {
		logger.Error("Error deleting product", zap.Error(err), zap.String("productID", productID), zap.String("actorID", actorID))
		return err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindProduct, util.ActionDeleted), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionDeleted,
		Kind:     model.KindProduct,
		EntityID: productID,
	})

	logger.Info("Product deleted successfully", zap.String("productID", productID), zap.String("actorID", actorID))
	return nil
}

// GetProduct retrieves a product by its ID
func (s *ProductService) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	return s.store.GetByID(ctx, productID)
}

// GetAllProducts retrieves the full catalog
func (s *ProductService) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return s.store.GetAll(ctx)
}

// ListProducts retrieves one page of the catalog
func (s *ProductService) ListProducts(ctx context.Context, limit, offset int) ([]model.Product, error) {
	return s.store.List(ctx, limit, offset)
}

// SearchProducts searches for products based on the given criteria
func (s *ProductService) SearchProducts(ctx context.Context, criteria model.ProductSearchCriteria) ([]model.Product, error) {
	products, err := s.productRepo.Search(ctx, criteria)
	if err != nil {
		logger.Error("Error searching products", zap.Error(err), zap.Any("criteria", criteria))
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}
