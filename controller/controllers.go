// controller/controllers.go
package controller

import "github.com/andreyques41/lyfter-store/service"

type Controllers struct {
	Product *ProductController
	User    *UserController
	Cart    *CartController
	Order   *OrderController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Product: NewProductController(services.Product),
		User:    NewUserController(services.User),
		Cart:    NewCartController(services.Cart),
		Order:   NewOrderController(services.Order),
	}
}
