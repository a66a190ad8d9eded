// service/cart_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andreyques41/lyfter-store/cache"
	logger "github.com/andreyques41/lyfter-store/logging"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/repository"
	"github.com/andreyques41/lyfter-store/util"
)

// ICartService defines the interface for cart operations
type ICartService interface {
	CreateCart(ctx context.Context, cart model.Cart, actorID string) (*model.Cart, error)
	UpdateCart(ctx context.Context, cart model.Cart, actorID string) (*model.Cart, error)
	DeleteCart(ctx context.Context, cartID string, actorID string) error
	GetCart(ctx context.Context, cartID string) (*model.Cart, error)
	GetCartByUser(ctx context.Context, userID string) (*model.Cart, error)
	GetAllCarts(ctx context.Context) ([]model.Cart, error)
}

// CartService handles business logic for cart operations
type CartService struct {
	store          *CachedStore[model.Cart]
	cartRepo       repository.CartRepository
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ ICartService = &CartService{}

func NewCartService(cartRepo repository.CartRepository, kv cache.KeyValueCache, ttls CacheTTLs, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *CartService {
	return &CartService{
		store:          NewCachedStore[model.Cart](model.KindCart, cartRepo, kv, ttls.Entry, ttls.List),
		cartRepo:       cartRepo,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// CreateCart creates a cart for a user
func (s *CartService) CreateCart(ctx context.Context, cart model.Cart, actorID string) (*model.Cart, error) {
	if err := s.validationUtil.ValidateCart(cart); err != nil {
		return nil, err
	}

	if cart.ID == "" {
		cart.ID = uuid.New().String()
	}
	for i := range cart.Items {
		if cart.Items[i].ID == "" {
			cart.Items[i].ID = uuid.New().String()
		}
		cart.Items[i].CartID = cart.ID
	}
	cart.CreatedAt = time.Now()
	cart.UpdatedAt = time.Now()

	created, err := s.store.Create(ctx, cart)
	if err != nil {
		logger.Error("Error creating cart", zap.Error(err), zap.String("actorID", actorID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindCart, util.ActionCreated), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionCreated,
		Kind:     model.KindCart,
		EntityID: created.ID,
	})

	logger.Info("Cart created successfully", zap.String("cartID", created.ID), zap.String("actorID", actorID))
	return created, nil
}

// UpdateCart replaces the cart's items
func (s *CartService) UpdateCart(ctx context.Context, cart model.Cart, actorID string) (*model.Cart, error) {
	if err := s.validationUtil.ValidateCart(cart); err != nil {
		return nil, err
	}

	for i := range cart.Items {
		if cart.Items[i].ID == "" {
			cart.Items[i].ID = uuid.New().String()
		}
		cart.Items[i].CartID = cart.ID
	}
	cart.UpdatedAt = time.Now()

	updated, err := s.store.Update(ctx, cart.ID, cart)
	if err != nil {
		logger.Error("Error updating cart", zap.Error(err), zap.String("cartID", cart.ID), zap.String("actorID", actorID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindCart, util.ActionUpdated), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionUpdated,
		Kind:     model.KindCart,
		EntityID: updated.ID,
	})

	logger.Info("Cart updated successfully", zap.String("cartID", updated.ID), zap.String("actorID", actorID))
	return updated, nil
}

// DeleteCart removes a cart and its items
func (s *CartService) DeleteCart(ctx context.Context, cartID string, actorID string) error {
	if err := s.store.Delete(ctx, cartID); err != nil {
		logger.Error("Error deleting cart", zap.Error(err), zap.String("cartID", cartID), zap.String("actorID", actorID))
		return err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindCart, util.ActionDeleted), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionDeleted,
		Kind:     model.KindCart,
		EntityID: cartID,
	})

	logger.Info("Cart deleted successfully", zap.String("cartID", cartID), zap.String("actorID", actorID))
	return nil
}

// GetCart retrieves a cart by ID
func (s *CartService) GetCart(ctx context.Context, cartID string) (*model.Cart, error) {
	return s.store.GetByID(ctx, cartID)
}

// GetCartByUser retrieves a user's cart straight from the repository. The
// by-user lookup is not cached: keeping it coherent would widen every
// invalidation set for a query the store answers cheaply.
func (s *CartService) GetCartByUser(ctx context.Context, userID string) (*model.Cart, error) {
	return s.cartRepo.GetByUserID(ctx, userID)
}

// GetAllCarts retrieves all carts
func (s *CartService) GetAllCarts(ctx context.Context) ([]model.Cart, error) {
	return s.store.GetAll(ctx)
}
