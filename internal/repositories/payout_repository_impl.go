package repositories

import (
	"context"
	"fmt"
	"time"

	"sportwearxpress/internal/models"

	"gorm.io/gorm"
)

type payoutRepository struct {
	db *gorm.DB
}

func NewPayoutRepository(db *gorm.DB) PayoutRepository {
	return &payoutRepository{db: db}
}

func (r *payoutRepository) Create(ctx context.Context, payout *models.Payout) error {
	if payout.PayoutID == "" || payout.OrderAmount < 0 {
		return ErrInvalidPayoutData
	}
	result := r.db.WithContext(ctx).Create(payout)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrDuplicatePayoutID
		}
		return fmt.Errorf("failed to create payout: %w", result.Error)
	}
	return nil
}

func (r *payoutRepository) GetByID(ctx context.Context, id uint) (*models.Payout, error) {
	var payout models.Payout
	if err := r.db.WithContext(ctx).First(&payout, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPayoutNotFound
		}
		return nil, fmt.Errorf("failed to get payout: %w", err)
	}
	return &payout, nil
}

func (r *payoutRepository) GetByPayoutID(ctx context.Context, payoutID string) (*models.Payout, error) {
	var payout models.Payout
	if err := r.db.WithContext(ctx).Where("payout_id = ?", payoutID).First(&payout).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrPayoutNotFound
		}
		return nil, fmt.Errorf("failed to get payout: %w", err)
	}
	return &payout, nil
}

func (r *payoutRepository) Update(ctx context.Context, payout *models.Payout) error {
	result := r.db.WithContext(ctx).Save(payout)
	if result.Error != nil {
		return fmt.Errorf("failed to update payout: %w", result.Error)
	}
	return nil
}

func (r *payoutRepository) AppendTimelineEntry(ctx context.Context, entry *models.TimelineEntry) error {
	result := r.db.WithContext(ctx).Create(entry)
	if result.Error != nil {
		return fmt.Errorf("failed to append timeline entry: %w", result.Error)
	}
	return nil
}

func (r *payoutRepository) GetTimeline(ctx context.Context, payoutRef uint) ([]models.TimelineEntry, error) {
	var entries []models.TimelineEntry
	err := r.db.WithContext(ctx).
		Where("payout_ref = ?", payoutRef).
		Order("date ASC, id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get timeline: %w", err)
	}
	return entries, nil
}

func (r *payoutRepository) FindByStatus(ctx context.Context, status string, limit, offset int) ([]models.Payout, int64, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("status = ?", status), limit, offset)
}

func (r *payoutRepository) FindBySeller(ctx context.Context, sellerID uint, limit, offset int) ([]models.Payout, int64, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("seller_id = ?", sellerID), limit, offset)
}

func (r *payoutRepository) FindByBuyer(ctx context.Context, buyerID uint, limit, offset int) ([]models.Payout, int64, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("buyer_id = ?", buyerID), limit, offset)
}

func (r *payoutRepository) FindByDateRange(ctx context.Context, start, end time.Time, limit, offset int) ([]models.Payout, int64, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("created_at BETWEEN ? AND ?", start, end), limit, offset)
}

func (r *payoutRepository) find(_ context.Context, query *gorm.DB, limit, offset int) ([]models.Payout, int64, error) {
	var payouts []models.Payout
	var total int64

	if err := query.Model(&models.Payout{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&payouts).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find payouts: %w", err)
	}
	return payouts, total, nil
}

func (r *payoutRepository) GetStats(ctx context.Context, sellerID uint) ([]PayoutStatusStat, error) {
	var stats []PayoutStatusStat
	query := r.db.WithContext(ctx).Model(&models.Payout{})
	if sellerID != 0 {
		query = query.Where("seller_id = ?", sellerID)
	}
	err := query.
		Select(`
			status,
			COUNT(*) as count,
			COALESCE(SUM(seller_payout_amount), 0) as total_amount,
			COALESCE(SUM(commission_amount), 0) as total_commission
		`).
		Group("status").
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get payout stats: %w", err)
	}
	return stats, nil
}

func (r *payoutRepository) ExecuteInTransaction(fn func(PayoutRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &payoutRepository{db: tx}
		return fn(txRepo)
	})
}
