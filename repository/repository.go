// repository/repository.go

// Package repository is the data-access layer over the persistent store.
// Repositories own durability; they know nothing about caching.
package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	lyfter_errors "github.com/andreyques41/lyfter-store/errors"
)

// Repository is the CRUD contract one entity kind exposes to the service
// layer. Not-found conditions surface as the entity's own sentinel error.
type Repository[T any] interface {
	Create(ctx context.Context, record T) (*T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	List(ctx context.Context, limit, offset int) ([]T, error)
	Update(ctx context.Context, id string, record T) (*T, error)
	Delete(ctx context.Context, id string) error
}

// gormRepository implements Repository[T] for any gorm model with a string
// primary key named id. Per-entity repositories embed it and add their own
// queries.
type gormRepository[T any] struct {
	db       *gorm.DB
	notFound error
	preloads []string
}

func (r *gormRepository[T]) query(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(new(T))
	for _, preload := range r.preloads {
		tx = tx.Preload(preload)
	}
	return tx
}

func (r *gormRepository[T]) Create(ctx context.Context, record T) (*T, error) {
	if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, err)
	}
	return &record, nil
}

func (r *gormRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var record T
	err := r.query(ctx).First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, r.notFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, err)
	}
	return &record, nil
}

func (r *gormRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	var records []T
	if err := r.query(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, err)
	}
	return records, nil
}

func (r *gormRepository[T]) List(ctx context.Context, limit, offset int) ([]T, error) {
	var records []T
	err := r.query(ctx).Order("id").Limit(limit).Offset(offset).Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, err)
	}
	return records, nil
}

// Update replaces the stored record. The caller must have set the record's
// primary key to id before the call.
func (r *gormRepository[T]) Update(ctx context.Context, id string, record T) (*T, error) {
	var existing T
	err := r.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, r.notFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, err)
	}

	err = r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(&record).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, err)
	}
	return &record, nil
}

func (r *gormRepository[T]) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", lyfter_errors.ErrDatabaseOperation, result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound
	}
	return nil
}
