package errs

import "errors"

// Domain-specific sentinel errors shared across the usecase layers
var (
	// Inventory errors
	ErrProductNotFound    = errors.New("product not found")
	ErrCapacityExhausted  = errors.New("capacity exhausted")
	ErrInvalidInventory   = errors.New("invalid inventory item")

	// Package catalog errors
	ErrPackageNotFound  = errors.New("package not found")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidDiscount  = errors.New("invalid discount percentage")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAlreadyCancelled    = errors.New("reservation already cancelled")

	// Customer directory errors
	ErrCustomerNotFound = errors.New("customer not found")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrDuplicateRequest       = errors.New("duplicate request with different parameters")

	// Persistence errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)
