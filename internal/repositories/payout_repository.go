package repositories

import (
	"context"
	"errors"
	"time"

	"sportwearxpress/internal/models"
)

var (
	ErrPayoutNotFound      = errors.New("payout not found")
	ErrDuplicatePayoutID   = errors.New("payout id already exists")
	ErrInvalidPayoutData   = errors.New("invalid payout data")
	ErrOrderNotFound       = errors.New("order not found")
	ErrSellerOrderNotFound = errors.New("seller order not found")
)

// PayoutStatusStat is one row of the grouped payout statistics.
type PayoutStatusStat struct {
	Status          string  `json:"status"`
	Count           int64   `json:"count"`
	TotalAmount     float64 `json:"total_amount"`
	TotalCommission float64 `json:"total_commission"`
}

// PayoutRepository defines the interface for payout-related database operations
type PayoutRepository interface {
	// Core payout operations
	Create(ctx context.Context, payout *models.Payout) error
	GetByID(ctx context.Context, id uint) (*models.Payout, error)
	GetByPayoutID(ctx context.Context, payoutID string) (*models.Payout, error)
	Update(ctx context.Context, payout *models.Payout) error

	// Timeline operations (append-only; there is no delete)
	AppendTimelineEntry(ctx context.Context, entry *models.TimelineEntry) error
	GetTimeline(ctx context.Context, payoutRef uint) ([]models.TimelineEntry, error)

	// Queries
	FindByStatus(ctx context.Context, status string, limit, offset int) ([]models.Payout, int64, error)
	FindBySeller(ctx context.Context, sellerID uint, limit, offset int) ([]models.Payout, int64, error)
	FindByBuyer(ctx context.Context, buyerID uint, limit, offset int) ([]models.Payout, int64, error)
	FindByDateRange(ctx context.Context, start, end time.Time, limit, offset int) ([]models.Payout, int64, error)

	// Aggregation
	GetStats(ctx context.Context, sellerID uint) ([]PayoutStatusStat, error)

	// Transactional execution
	ExecuteInTransaction(fn func(PayoutRepository) error) error
}
