// errors/product_errors.go
package errors

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductConflict    = errors.New("product conflict")
	ErrInvalidProductData = errors.New("invalid product data")
)
