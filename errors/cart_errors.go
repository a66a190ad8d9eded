// errors/cart_errors.go
package errors

import "errors"

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrCartConflict    = errors.New("cart conflict")
	ErrInvalidCartData = errors.New("invalid cart data")
)
