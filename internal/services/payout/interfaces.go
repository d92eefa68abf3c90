package payout

import (
	"context"
	"time"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"
)

// Service defines the main payout service interface
type Service interface {
	// Lifecycle operations
	Create(ctx context.Context, req CreateRequest) (*models.Payout, error)
	UpdateStatus(ctx context.Context, payoutID string, req StatusUpdateRequest) (*models.Payout, error)
	RefreshPaymentInfo(ctx context.Context, payoutID string) (*models.Payout, error)
	RetryCredit(ctx context.Context, payoutID string) (*models.Payout, error)

	// Reads
	Get(ctx context.Context, payoutID string) (*models.Payout, error)
	GetTimeline(ctx context.Context, payoutID string) ([]models.TimelineEntry, error)
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.Payout, int64, error)
	ListBySeller(ctx context.Context, sellerID uint, limit, offset int) ([]models.Payout, int64, error)
	ListByBuyer(ctx context.Context, buyerID uint, limit, offset int) ([]models.Payout, int64, error)
	ListByDateRange(ctx context.Context, start, end time.Time, limit, offset int) ([]models.Payout, int64, error)
	Stats(ctx context.Context, sellerID uint) ([]repositories.PayoutStatusStat, error)
}

// Crediter applies a completed payout to the seller and admin ledgers.
// The command is keyed by payout ID; repeated invocation must be a no-op.
type Crediter interface {
	CreditCompleted(ctx context.Context, payout *models.Payout) error
}

// CacheOperator defines the caching operations the payout service needs.
type CacheOperator interface {
	CachePayout(ctx context.Context, payout *models.Payout) error
	GetPayout(ctx context.Context, payoutID string) (*models.Payout, error)
	InvalidatePayout(ctx context.Context, payoutID string) error
	CacheStats(ctx context.Context, sellerID uint, stats interface{}, ttl time.Duration) error
	GetStats(ctx context.Context, sellerID uint, dest interface{}) (bool, error)
	InvalidateStats(ctx context.Context, sellerID uint) error
}
