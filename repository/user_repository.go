// repository/user_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
	"github.com/andreyques41/lyfter-store/model"
)

type UserRepository interface {
	Repository[model.User]
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

type userRepository struct {
	gormRepository[model.User]
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{gormRepository[model.User]{
		db:       db,
		notFound: lyfter_errors.ErrUserNotFound,
	}}
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, lyfter_errors.ErrUserNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, err)
	}
	return &user, nil
}
