// errors/order_errors.go
package errors

import "errors"

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderConflict          = errors.New("order conflict")
	ErrInvalidOrderData       = errors.New("invalid order data")
	ErrInvalidOrderTransition = errors.New("invalid order status transition")
)
