package model

import "time"

type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	UserID    string     `json:"user_id" validate:"required" gorm:"index"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID        string  `json:"id" gorm:"primaryKey"`
	CartID    string  `json:"cart_id" gorm:"index"`
	ProductID string  `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
}

// Total returns the cart value at the prices captured when items were added.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}
