package model

import "time"

// Kind identifies an entity family; it is the namespace prefix of every
// cache key the entity produces.
const (
	KindProduct = "product"
	KindUser    = "user"
	KindCart    = "cart"
	KindOrder   = "order"
)

type Product struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category" validate:"required"`
	Price       float64   `json:"price" validate:"gte=0"`
	Stock       int       `json:"stock" validate:"gte=0"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProductSearchCriteria struct {
	Name     string   `json:"name,omitempty"`
	Category string   `json:"category,omitempty"`
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	InStock  bool     `json:"in_stock,omitempty"`
	Limit    int      `json:"limit,omitempty"`
	Offset   int      `json:"offset,omitempty"`
}
