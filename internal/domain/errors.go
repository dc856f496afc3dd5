package domain

import (
	"errors"
	"fmt"
)

// ErrOrderClosed is returned by any mutation attempted on an order that is no longer open.
var ErrOrderClosed = errors.New("order is closed")

// ValidationError represents an input that violates a field constraint.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// InsufficientStockError represents a request for more units than a product has in stock.
type InsufficientStockError struct {
	Product   string
	Requested int
	Available int
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf(
		"insufficient stock for %s: requested %d, available %d",
		e.Product,
		e.Requested,
		e.Available,
	)
}
