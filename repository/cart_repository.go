// repository/cart_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	"github.com/andreyques41/lyfter-store/model"
)

type CartRepository interface {
	Repository[model.Cart]
	GetByUserID(ctx context.Context, userID string) (*model.Cart, error)
}

type cartRepository struct {
	gormRepository[model.Cart]
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{gormRepository[model.Cart]{
		db:       db,
		notFound: lyfter_errors.ErrCartNotFound,
		preloads: []string{"Items"},
	}}
}

func (r *cartRepository) GetByUserID(ctx context.Context, userID string) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).Preload("Items").First(&cart, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lyfter_errors.ErrCartNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, err)
	}
	return &cart, nil
}
