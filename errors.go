package stockbook

import (
	"errors"
	"fmt"
)

// Error kinds reported by the inventory. Match them with errors.Is.
var (
	ErrProductNotFound   = errors.New("unavailable product")
	ErrInvalidName       = errors.New("invalid product name")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrCorruptedState is returned when a product no longer satisfies its
	// stock invariant. No operation touches such a product.
	ErrCorruptedState = errors.New("corrupted inventory state")
)

// FieldError reports the offending field and value of a rejected request.
type FieldError struct {
	Field string // Field is the request field name (name, quantity, sale_price...).
	Value any    // Value is the rejected value, as received.
	Err   error  // Err is the error kind.
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %v", e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// StockError reports a sale that exceeds the stock on hand.
type StockError struct {
	Product   string
	Requested Quantity
	Available Quantity
}

func (e *StockError) Error() string {
	return fmt.Sprintf("%v: cannot sell %v of %s, only %v in stock", ErrInsufficientStock, e.Requested, e.Product, e.Available)
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

func notFound(name string) error {
	return &FieldError{Field: "name", Value: name, Err: ErrProductNotFound}
}
