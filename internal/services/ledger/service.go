// Package ledger applies completed payouts to the seller and admin
// running balances. Crediting is an explicit command keyed by payout ID;
// the balance_credits unique index makes repeated invocations no-ops, so
// re-saving an already-completed payout can never credit twice.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"

	"github.com/google/uuid"
)

// Service defines the ledger service interface
type Service interface {
	// CreditCompleted credits the seller's and admin's balances for a
	// completed payout, exactly once per payout.
	CreditCompleted(ctx context.Context, payout *models.Payout) error

	// Balance reads
	GetSellerBalance(ctx context.Context, sellerID uint) (*models.Seller, error)
	GetAdminBalance(ctx context.Context, adminID uint) (*models.Admin, error)

	// History reads
	GetSellerHistory(ctx context.Context, sellerID uint, limit, offset int) ([]models.SellerPayoutHistory, int64, error)
	GetAdminHistory(ctx context.Context, adminID uint, limit, offset int) ([]models.AdminCommissionHistory, int64, error)
}

type service struct {
	repo repositories.LedgerRepository
}

// NewService creates a new ledger service
func NewService(repo repositories.LedgerRepository) Service {
	if repo == nil {
		panic("ledger repo is required")
	}
	return &service{repo: repo}
}

func (s *service) CreditCompleted(ctx context.Context, payout *models.Payout) error {
	if payout.Status != models.PayoutStatusCompleted {
		return ErrNotCompleted
	}

	// Fast path for repeat invocations. The unique index on the credit
	// row remains the real guard; this only avoids a doomed transaction.
	if credited, err := s.repo.HasCredit(ctx, payout.PayoutID, models.CreditAccountSeller); err == nil && credited {
		return ErrAlreadyCredited
	}

	// Both credits commit or neither does. A duplicate on the seller side
	// means the whole payout was applied before, since the pair always
	// lands in one transaction.
	err := s.repo.ExecuteInTransaction(func(tx repositories.LedgerRepository) error {
		sellerCredit := &models.BalanceCredit{
			PayoutID:    payout.PayoutID,
			AccountType: models.CreditAccountSeller,
			AccountID:   payout.SellerID,
			Amount:      payout.SellerPayoutAmount,
			Reference:   uuid.NewString(),
		}
		sellerHistory := &models.SellerPayoutHistory{
			SellerID: payout.SellerID,
			PayoutID: payout.PayoutID,
			OrderID:  payout.OrderID,
			Amount:   payout.SellerPayoutAmount,
			Note:     fmt.Sprintf("Payout for order %d", payout.OrderID),
		}
		if err := tx.CreditSeller(ctx, sellerCredit, sellerHistory); err != nil {
			return err
		}

		adminCredit := &models.BalanceCredit{
			PayoutID:    payout.PayoutID,
			AccountType: models.CreditAccountAdmin,
			AccountID:   payout.AdminID,
			Amount:      payout.AdminEarnings,
			Reference:   uuid.NewString(),
		}
		adminHistory := &models.AdminCommissionHistory{
			AdminID:  payout.AdminID,
			PayoutID: payout.PayoutID,
			OrderID:  payout.OrderID,
			SellerID: payout.SellerID,
			Amount:   payout.AdminEarnings,
			Note:     fmt.Sprintf("Commission for order %d", payout.OrderID),
		}
		return tx.CreditAdmin(ctx, adminCredit, adminHistory)
	})
	if err != nil {
		if errors.Is(err, repositories.ErrCreditDuplicate) {
			return ErrAlreadyCredited
		}
		return fmt.Errorf("%w: %v", ErrCreditFailed, err)
	}
	return nil
}

func (s *service) GetSellerBalance(ctx context.Context, sellerID uint) (*models.Seller, error) {
	return s.repo.GetSeller(ctx, sellerID)
}

func (s *service) GetAdminBalance(ctx context.Context, adminID uint) (*models.Admin, error) {
	return s.repo.GetAdmin(ctx, adminID)
}

func (s *service) GetSellerHistory(ctx context.Context, sellerID uint, limit, offset int) ([]models.SellerPayoutHistory, int64, error) {
	return s.repo.GetSellerPayoutHistory(ctx, sellerID, limit, offset)
}

func (s *service) GetAdminHistory(ctx context.Context, adminID uint, limit, offset int) ([]models.AdminCommissionHistory, int64, error) {
	return s.repo.GetAdminCommissionHistory(ctx, adminID, limit, offset)
}
