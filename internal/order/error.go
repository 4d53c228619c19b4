package order

import "errors"

var (
	ErrNotFound = errors.New("order not found")

	// ErrStatusConflict is returned when a conditional status update loses:
	// the order exists but its current status is not the expected one.
	ErrStatusConflict = errors.New("order status conflict")
)
