package ledger

import "errors"

// Service errors
var (
	ErrAlreadyCredited = errors.New("payout already credited")
	ErrNotCompleted    = errors.New("payout is not completed")
	ErrCreditFailed    = errors.New("balance credit failed")
)
