package ledger

import (
	"context"
	"errors"
	"testing"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) GetSeller(ctx context.Context, id uint) (*models.Seller, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*models.Seller), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepo) GetAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	args := m.Called(ctx, id)
	if a := args.Get(0); a != nil {
		return a.(*models.Admin), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLedgerRepo) CreditSeller(ctx context.Context, credit *models.BalanceCredit, history *models.SellerPayoutHistory) error {
	args := m.Called(ctx, credit, history)
	return args.Error(0)
}

func (m *MockLedgerRepo) CreditAdmin(ctx context.Context, credit *models.BalanceCredit, history *models.AdminCommissionHistory) error {
	args := m.Called(ctx, credit, history)
	return args.Error(0)
}

func (m *MockLedgerRepo) GetSellerPayoutHistory(ctx context.Context, sellerID uint, limit, offset int) ([]models.SellerPayoutHistory, int64, error) {
	args := m.Called(ctx, sellerID, limit, offset)
	if h := args.Get(0); h != nil {
		return h.([]models.SellerPayoutHistory), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockLedgerRepo) GetAdminCommissionHistory(ctx context.Context, adminID uint, limit, offset int) ([]models.AdminCommissionHistory, int64, error) {
	args := m.Called(ctx, adminID, limit, offset)
	if h := args.Get(0); h != nil {
		return h.([]models.AdminCommissionHistory), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *MockLedgerRepo) HasCredit(ctx context.Context, payoutID, accountType string) (bool, error) {
	args := m.Called(ctx, payoutID, accountType)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerRepo) ExecuteInTransaction(fn func(repositories.LedgerRepository) error) error {
	args := m.Called(fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

func completedPayout() *models.Payout {
	p := &models.Payout{
		PayoutID:       "PAY-240315-0042",
		OrderID:        7,
		SellerID:       3,
		AdminID:        1,
		OrderAmount:    100,
		CommissionRate: 0.02,
		Status:         models.PayoutStatusCompleted,
	}
	p.Recompute()
	return p
}

func TestLedgerService_CreditCompleted(t *testing.T) {
	t.Run("credits seller and admin with the derived amounts", func(t *testing.T) {
		repo := new(MockLedgerRepo)
		var sellerCredit, adminCredit *models.BalanceCredit
		repo.On("HasCredit", mock.Anything, "PAY-240315-0042", models.CreditAccountSeller).Return(false, nil)
		repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
		repo.On("CreditSeller", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			sellerCredit = args.Get(1).(*models.BalanceCredit)
		}).Return(nil)
		repo.On("CreditAdmin", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			adminCredit = args.Get(1).(*models.BalanceCredit)
		}).Return(nil)

		s := NewService(repo)
		err := s.CreditCompleted(context.Background(), completedPayout())
		assert.NoError(t, err)

		assert.Equal(t, models.CreditAccountSeller, sellerCredit.AccountType)
		assert.Equal(t, uint(3), sellerCredit.AccountID)
		assert.InDelta(t, 98.0, sellerCredit.Amount, 1e-9)
		assert.NotEmpty(t, sellerCredit.Reference)

		assert.Equal(t, models.CreditAccountAdmin, adminCredit.AccountType)
		assert.Equal(t, uint(1), adminCredit.AccountID)
		assert.InDelta(t, 2.0, adminCredit.Amount, 1e-9)

		repo.AssertNumberOfCalls(t, "CreditSeller", 1)
		repo.AssertNumberOfCalls(t, "CreditAdmin", 1)
	})

	t.Run("known credit short-circuits before the transaction", func(t *testing.T) {
		repo := new(MockLedgerRepo)
		repo.On("HasCredit", mock.Anything, "PAY-240315-0042", models.CreditAccountSeller).Return(true, nil)

		s := NewService(repo)
		err := s.CreditCompleted(context.Background(), completedPayout())
		assert.ErrorIs(t, err, ErrAlreadyCredited)
		repo.AssertNotCalled(t, "ExecuteInTransaction")
	})

	t.Run("concurrent duplicate is reported as already credited", func(t *testing.T) {
		// The pre-check missed; the unique index still catches the race.
		repo := new(MockLedgerRepo)
		repo.On("HasCredit", mock.Anything, "PAY-240315-0042", models.CreditAccountSeller).Return(false, nil)
		repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
		repo.On("CreditSeller", mock.Anything, mock.Anything, mock.Anything).Return(repositories.ErrCreditDuplicate)

		s := NewService(repo)
		err := s.CreditCompleted(context.Background(), completedPayout())
		assert.ErrorIs(t, err, ErrAlreadyCredited)
		repo.AssertNotCalled(t, "CreditAdmin")
	})

	t.Run("rejects a payout that is not completed", func(t *testing.T) {
		repo := new(MockLedgerRepo)
		p := completedPayout()
		p.Status = models.PayoutStatusProcessing

		s := NewService(repo)
		err := s.CreditCompleted(context.Background(), p)
		assert.ErrorIs(t, err, ErrNotCompleted)
		repo.AssertNotCalled(t, "ExecuteInTransaction")
	})

	t.Run("storage failure is wrapped", func(t *testing.T) {
		repo := new(MockLedgerRepo)
		repo.On("HasCredit", mock.Anything, "PAY-240315-0042", models.CreditAccountSeller).Return(false, nil)
		repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
		repo.On("CreditSeller", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		repo.On("CreditAdmin", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("connection reset"))

		s := NewService(repo)
		err := s.CreditCompleted(context.Background(), completedPayout())
		assert.ErrorIs(t, err, ErrCreditFailed)
	})

	t.Run("seller payout history records the order", func(t *testing.T) {
		repo := new(MockLedgerRepo)
		var history *models.SellerPayoutHistory
		repo.On("HasCredit", mock.Anything, "PAY-240315-0042", models.CreditAccountSeller).Return(false, nil)
		repo.On("ExecuteInTransaction", mock.Anything).Return(nil)
		repo.On("CreditSeller", mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			history = args.Get(2).(*models.SellerPayoutHistory)
		}).Return(nil)
		repo.On("CreditAdmin", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		s := NewService(repo)
		err := s.CreditCompleted(context.Background(), completedPayout())
		assert.NoError(t, err)
		assert.Equal(t, "PAY-240315-0042", history.PayoutID)
		assert.Equal(t, uint(7), history.OrderID)
		assert.Equal(t, "Payout for order 7", history.Note)
	})
}

func TestLedgerService_Balances(t *testing.T) {
	repo := new(MockLedgerRepo)
	repo.On("GetSeller", mock.Anything, uint(3)).Return(&models.Seller{Balance: 98, TotalEarnings: 98}, nil)
	repo.On("GetAdmin", mock.Anything, uint(1)).Return(&models.Admin{CommissionBalance: 2, TotalCommissions: 2}, nil)

	s := NewService(repo)

	seller, err := s.GetSellerBalance(context.Background(), 3)
	assert.NoError(t, err)
	assert.InDelta(t, 98.0, seller.Balance, 1e-9)

	admin, err := s.GetAdminBalance(context.Background(), 1)
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, admin.CommissionBalance, 1e-9)
}
