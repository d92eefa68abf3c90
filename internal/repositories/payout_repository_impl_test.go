package repositories

import (
	"context"
	"os"
	"testing"

	"sportwearxpress/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB connects to the database named by TEST_DATABASE_DSN and
// migrates a clean schema. Tests that need real SQL are skipped when the
// variable is unset.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Seller{},
		&models.Admin{},
		&models.Payout{},
		&models.TimelineEntry{},
		&models.BalanceCredit{},
		&models.SellerPayoutHistory{},
		&models.AdminCommissionHistory{},
	))

	t.Cleanup(func() {
		for _, table := range []string{
			"timeline_entries", "balance_credits", "seller_payout_histories",
			"admin_commission_histories", "payouts", "sellers", "admins",
		} {
			db.Exec("DELETE FROM " + table)
		}
	})

	return db
}

func seedPayout(t *testing.T, repo PayoutRepository, payoutID string, sellerID uint, amount float64, status string) {
	t.Helper()
	err := repo.Create(context.Background(), &models.Payout{
		PayoutID:       payoutID,
		OrderID:        1,
		BuyerID:        1,
		SellerID:       sellerID,
		AdminID:        1,
		OrderAmount:    amount,
		CommissionRate: 0,
		Status:         status,
	})
	require.NoError(t, err)
}

func TestPayoutRepository_GetStats_GroupsByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPayoutRepository(db)
	ctx := context.Background()

	// Zero commission rate keeps seller_payout_amount equal to the order
	// amount, so the grouped sums are easy to read.
	seedPayout(t, repo, "PAY-240315-6001", 3, 10, models.PayoutStatusCompleted)
	seedPayout(t, repo, "PAY-240315-6002", 3, 20, models.PayoutStatusCompleted)
	seedPayout(t, repo, "PAY-240315-6003", 3, 5, models.PayoutStatusPending)
	seedPayout(t, repo, "PAY-240315-6004", 4, 100, models.PayoutStatusCompleted)

	t.Run("filtered to one seller", func(t *testing.T) {
		stats, err := repo.GetStats(ctx, 3)
		assert.NoError(t, err)

		byStatus := make(map[string]PayoutStatusStat, len(stats))
		for _, s := range stats {
			byStatus[s.Status] = s
		}
		assert.Len(t, byStatus, 2)
		assert.Equal(t, int64(2), byStatus[models.PayoutStatusCompleted].Count)
		assert.InDelta(t, 30.0, byStatus[models.PayoutStatusCompleted].TotalAmount, 1e-9)
		assert.Equal(t, int64(1), byStatus[models.PayoutStatusPending].Count)
		assert.InDelta(t, 5.0, byStatus[models.PayoutStatusPending].TotalAmount, 1e-9)
	})

	t.Run("platform-wide with seller zero", func(t *testing.T) {
		stats, err := repo.GetStats(ctx, 0)
		assert.NoError(t, err)

		byStatus := make(map[string]PayoutStatusStat, len(stats))
		for _, s := range stats {
			byStatus[s.Status] = s
		}
		assert.Equal(t, int64(3), byStatus[models.PayoutStatusCompleted].Count)
		assert.InDelta(t, 130.0, byStatus[models.PayoutStatusCompleted].TotalAmount, 1e-9)
	})
}

func TestPayoutRepository_GetStats_SumsCommission(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPayoutRepository(db)
	ctx := context.Background()

	err := repo.Create(ctx, &models.Payout{
		PayoutID:       "PAY-240315-6101",
		OrderID:        1,
		BuyerID:        1,
		SellerID:       5,
		AdminID:        1,
		OrderAmount:    100,
		CommissionRate: 0.02,
		Status:         models.PayoutStatusCompleted,
	})
	require.NoError(t, err)

	stats, err := repo.GetStats(ctx, 5)
	assert.NoError(t, err)
	require.Len(t, stats, 1)
	// BeforeSave derived the split before the row landed.
	assert.InDelta(t, 98.0, stats[0].TotalAmount, 1e-9)
	assert.InDelta(t, 2.0, stats[0].TotalCommission, 1e-9)
}

func TestPayoutRepository_Create_Guards(t *testing.T) {
	// The data guards run before any SQL is issued.
	repo := &payoutRepository{}
	ctx := context.Background()

	err := repo.Create(ctx, &models.Payout{PayoutID: "", OrderAmount: 10})
	assert.ErrorIs(t, err, ErrInvalidPayoutData)

	err = repo.Create(ctx, &models.Payout{PayoutID: "PAY-240315-6201", OrderAmount: -1})
	assert.ErrorIs(t, err, ErrInvalidPayoutData)
}

func TestPayoutRepository_Create_DuplicatePayoutID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPayoutRepository(db)

	seedPayout(t, repo, "PAY-240315-6301", 3, 10, models.PayoutStatusPending)

	err := repo.Create(context.Background(), &models.Payout{
		PayoutID:       "PAY-240315-6301",
		OrderID:        2,
		BuyerID:        2,
		SellerID:       3,
		AdminID:        1,
		OrderAmount:    15,
		CommissionRate: 0.02,
		Status:         models.PayoutStatusPending,
	})
	assert.ErrorIs(t, err, ErrDuplicatePayoutID)
}
