package repositories

import (
	"context"
	"errors"

	"sportwearxpress/internal/models"
)

var (
	ErrSellerNotFound  = errors.New("seller not found")
	ErrAdminNotFound   = errors.New("admin not found")
	ErrCreditDuplicate = errors.New("payout already credited to account")
)

// LedgerRepository defines the database operations for the seller and
// admin running-balance ledgers. Credits are recorded through a
// BalanceCredit row first; its unique (payout_id, account_type) index is
// the idempotency guard for the balance increments.
type LedgerRepository interface {
	GetSeller(ctx context.Context, id uint) (*models.Seller, error)
	GetAdmin(ctx context.Context, id uint) (*models.Admin, error)

	// CreditSeller atomically records the credit row, increments the
	// seller's balance and total earnings, and appends a payout-history
	// entry. Returns ErrCreditDuplicate when this payout was already
	// applied to the seller's ledger.
	CreditSeller(ctx context.Context, credit *models.BalanceCredit, history *models.SellerPayoutHistory) error

	// CreditAdmin is the admin-side counterpart of CreditSeller.
	CreditAdmin(ctx context.Context, credit *models.BalanceCredit, history *models.AdminCommissionHistory) error

	// History reads
	GetSellerPayoutHistory(ctx context.Context, sellerID uint, limit, offset int) ([]models.SellerPayoutHistory, int64, error)
	GetAdminCommissionHistory(ctx context.Context, adminID uint, limit, offset int) ([]models.AdminCommissionHistory, int64, error)

	// HasCredit reports whether a credit row exists for the payout/account pair.
	HasCredit(ctx context.Context, payoutID, accountType string) (bool, error)

	// Transactional execution
	ExecuteInTransaction(fn func(LedgerRepository) error) error
}
