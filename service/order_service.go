// service/order_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/andreyques41/lyfter-store/cache"
	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	logger "github.com/andreyques41/lyfter-store/logging"
	"github.com/andreyques41/lyfter-store/model"
	"github.com/andreyques41/lyfter-store/repository"
	"github.com/andreyques41/lyfter-store/util"
)

// IOrderService defines the interface for order operations
type IOrderService interface {
	CreateOrder(ctx context.Context, order model.Order, actorID string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID, status, actorID string) (*model.Order, error)
	DeleteOrder(ctx context.Context, orderID string, actorID string) error
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	GetAllOrders(ctx context.Context) ([]model.Order, error)
	ListOrders(ctx context.Context, limit, offset int) ([]model.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error)
}

// OrderService handles business logic for order operations
type OrderService struct {
	store          *CachedStore[model.Order]
	orderRepo      repository.OrderRepository
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IOrderService = &OrderService{}

func NewOrderService(orderRepo repository.OrderRepository, kv cache.KeyValueCache, ttls CacheTTLs, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *OrderService {
	return &OrderService{
		store:          NewCachedStore[model.Order](model.KindOrder, orderRepo, kv, ttls.Entry, ttls.List),
		orderRepo:      orderRepo,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// CreateOrder places a new order. The total is always recomputed from the
// line items, never trusted from the request.
func (s *OrderService) CreateOrder(ctx context.Context, order model.Order, actorID string) (*model.Order, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.Status = model.OrderStatusPending

	var total float64
	for i := range order.Items {
		if order.Items[i].ID == "" {
			order.Items[i].ID = uuid.New().String()
		}
		order.Items[i].OrderID = order.ID
		total += order.Items[i].UnitPrice * float64(order.Items[i].Quantity)
	}
	order.Total = total
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()

	if err := s.validationUtil.ValidateOrder(order); err != nil {
		return nil, err
	}

	created, err := s.store.Create(ctx, order)
	if err != nil {
		logger.Error("Error creating order", zap.Error(err), zap.String("actorID", actorID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindOrder, util.ActionCreated), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionCreated,
		Kind:     model.KindOrder,
		EntityID: created.ID,
	})

	logger.Info("Order created successfully", zap.String("orderID", created.ID), zap.String("actorID", actorID))
	return created, nil
}

// UpdateOrderStatus advances an order through its lifecycle
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID, status, actorID string) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(order.Status, status) {
		logger.Warn("Rejected order status transition",
			zap.String("orderID", orderID),
			zap.String("from", order.Status),
			zap.String("to", status))
		return nil, lyfter_errors.ErrInvalidOrderTransition
	}

	order.Status = status
	order.UpdatedAt = time.Now()

	updated, err := s.store.Update(ctx, orderID, *order)
	if err != nil {
		logger.Error("Error updating order", zap.Error(err), zap.String("orderID", orderID), zap.String("actorID", actorID))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindOrder, util.ActionUpdated), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionUpdated,
		Kind:     model.KindOrder,
		EntityID: orderID,
	})

	logger.Info("Order status updated", zap.String("orderID", orderID), zap.String("status", status), zap.String("actorID", actorID))
	return updated, nil
}

// DeleteOrder removes an order
func (s *OrderService) DeleteOrder(ctx context.Context, orderID string, actorID string) error {
	if err := s.store.Delete(ctx, orderID); err != nil {
		logger.Error("Error deleting order", zap.Error(err), zap.String("orderID", orderID), zap.String("actorID", actorID))
		return err
	}

	s.eventBus.Publish(ctx, util.Topic(model.KindOrder, util.ActionDeleted), EntityChange{
		ActorID:  actorID,
		Action:   util.ActionDeleted,
		Kind:     model.KindOrder,
		EntityID: orderID,
	})

	logger.Info("Order deleted successfully", zap.String("orderID", orderID), zap.String("actorID", actorID))
	return nil
}

// GetOrder retrieves an order by ID
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return s.store.GetByID(ctx, orderID)
}

// GetAllOrders retrieves all orders
func (s *OrderService) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	return s.store.GetAll(ctx)
}

// ListOrders retrieves one page of orders
func (s *OrderService) ListOrders(ctx context.Context, limit, offset int) ([]model.Order, error) {
	return s.store.List(ctx, limit, offset)
}

// ListOrdersByUser retrieves a user's orders straight from the repository
func (s *OrderService) ListOrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orderRepo.ListByUserID(ctx, userID)
}
