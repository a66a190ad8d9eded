// repository/order_repository.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	"github.com/andreyques41/lyfter-store/model"
)

type OrderRepository interface {
	Repository[model.Order]
	ListByUserID(ctx context.Context, userID string) ([]model.Order, error)
}

type orderRepository struct {
	gormRepository[model.Order]
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{gormRepository[model.Order]{
		db:       db,
		notFound: lyfter_errors.ErrOrderNotFound,
		preloads: []string{"Items"},
	}}
}

func (r *orderRepository) ListByUserID(ctx context.Context, userID string) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, err)
	}
	return orders, nil
}
