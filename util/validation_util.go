// util/validation_util.go

package util

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/andreyques41/lyfter-store/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

func (v *ValidationUtil) ValidateProduct(product model.Product) error {
	if err := v.validate.Struct(product); err != nil {
		return fmt.Errorf("invalid product: %w", err)
	}
	return nil
}

func (v *ValidationUtil) ValidateUser(user model.User) error {
	if err := v.validate.Struct(user); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}
	return nil
}

func (v *ValidationUtil) ValidateRegistration(registration model.UserRegistration) error {
	if err := v.validate.Struct(registration); err != nil {
		return fmt.Errorf("invalid registration: %w", err)
	}
	return nil
}

func (v *ValidationUtil) ValidateCart(cart model.Cart) error {
	if err := v.validate.Struct(cart); err != nil {
		return fmt.Errorf("invalid cart: %w", err)
	}
	for _, item := range cart.Items {
		if err := v.validate.Struct(item); err != nil {
			return fmt.Errorf("invalid cart item: %w", err)
		}
	}
	return nil
}

func (v *ValidationUtil) ValidateOrder(order model.Order) error {
	if err := v.validate.Struct(order); err != nil {
		return fmt.Errorf("invalid order: %w", err)
	}
	return nil
}
