package services

import (
	"errors"
	"fmt"
)

var (
	ErrCartNotFound    = errors.New("cart not found")
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("cart item not found")

	// ErrQuantityTooLow rejects requests for zero or negative quantities
	// before any stock comparison happens.
	ErrQuantityTooLow = errors.New("quantity must be >= 1")
)

// StockError reports an admission rejection together with the offending
// quantities.
type StockError struct {
	Requested int
	Available int
}

func (e *StockError) Error() string {
	return fmt.Sprintf("requested quantity %d exceeds stock %d", e.Requested, e.Available)
}

// IsStockError reports whether err is a stock admission rejection.
func IsStockError(err error) bool {
	var se *StockError
	return errors.As(err, &se)
}
