package payout

import "errors"

// Service errors
var (
	ErrInvalidAmount     = errors.New("order amount must be zero or positive")
	ErrInvalidRate       = errors.New("commission rate must be between 0 and 1")
	ErrInvalidStatus     = errors.New("invalid payout status")
	ErrPayoutNotFound    = errors.New("payout not found")
	ErrNotCompleted      = errors.New("payout is not completed")
	ErrPaymentMissing    = errors.New("seller order has no payment record")
	ErrPersistenceFailed = errors.New("payout persistence failed")
)
