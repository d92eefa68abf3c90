package payout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"
	"sportwearxpress/internal/services/ledger"
	"sportwearxpress/internal/validation"
)

type service struct {
	repo     repositories.PayoutRepository
	orders   repositories.OrderRepository
	crediter Crediter
	cache    CacheOperator
	config   Config
	metrics  MetricsCollector
}

// NewService creates a new payout service
func NewService(
	repo repositories.PayoutRepository,
	orders repositories.OrderRepository,
	crediter Crediter,
	cache CacheOperator,
	config Config,
	metrics MetricsCollector,
) Service {
	if repo == nil {
		panic("payout repo is required")
	}
	if orders == nil {
		panic("order repo is required")
	}
	if crediter == nil {
		panic("crediter is required")
	}
	if cache == nil {
		panic("cache is required")
	}

	if config.CommissionRate == 0 {
		config.CommissionRate = DefaultCommissionRate
	}
	if config.Clock == nil {
		config.Clock = SystemClock()
	}
	if config.IDGenerator == nil {
		config.IDGenerator = NewRandomIDGenerator()
	}

	// Metrics is optional, create no-op collector if nil
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}

	return &service{
		repo:     repo,
		orders:   orders,
		crediter: crediter,
		cache:    cache,
		config:   config,
		metrics:  metrics,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*models.Payout, error) {
	rate := s.config.CommissionRate
	if req.CommissionRate != nil {
		rate = *req.CommissionRate
	}
	if err := validation.ValidatePayoutAmount(req.OrderAmount, rate); err != nil {
		var verr validation.ValidationError
		if errors.As(err, &verr) && verr.Field == "commission_rate" {
			s.metrics.RecordError("create", "invalid_rate")
			return nil, ErrInvalidRate
		}
		s.metrics.RecordError("create", "invalid_amount")
		return nil, ErrInvalidAmount
	}

	now := s.config.Clock.Now()
	payout := &models.Payout{
		PayoutID:         s.config.IDGenerator.NewPayoutID(now),
		OrderID:          req.OrderID,
		BuyerID:          req.BuyerID,
		SellerID:         req.SellerID,
		AdminID:          req.AdminID,
		SellerOrderIndex: req.SellerOrderIndex,
		OrderAmount:      req.OrderAmount,
		CommissionRate:   rate,
		Status:           StatusPending,
		Metadata:         models.NewJSON(req.Metadata),
	}
	payout.Recompute()

	err := s.repo.ExecuteInTransaction(func(tx repositories.PayoutRepository) error {
		if err := tx.Create(ctx, payout); err != nil {
			return err
		}
		return tx.AppendTimelineEntry(ctx, &models.TimelineEntry{
			PayoutRef:      payout.ID,
			Status:         payout.Status,
			Date:           now,
			Note:           "Payout created",
			UpdatedByModel: ActorSystem,
		})
	})
	if err != nil {
		s.metrics.RecordError("create", err.Error())
		return nil, fmt.Errorf("failed to create payout: %w", err)
	}

	s.cache.CachePayout(ctx, payout)
	s.cache.InvalidateStats(ctx, payout.SellerID)
	return payout, nil
}

func (s *service) UpdateStatus(ctx context.Context, payoutID string, req StatusUpdateRequest) (*models.Payout, error) {
	if err := validation.ValidatePayoutStatus(req.Status); err != nil {
		s.metrics.RecordError("update_status", "invalid_status")
		return nil, ErrInvalidStatus
	}
	actor := req.UpdatedByModel
	if actor == "" {
		actor = ActorSystem
	}

	payout, err := s.repo.GetByPayoutID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, repositories.ErrPayoutNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, err
	}

	oldStatus := payout.Status
	now := s.config.Clock.Now()
	payout.Status = req.Status
	switch req.Status {
	case StatusProcessing:
		payout.ProcessingDate = &now
	case StatusCompleted:
		payout.CompletedDate = &now
	}

	// One timeline entry per logical transition; the persist and the
	// append commit together.
	err = s.repo.ExecuteInTransaction(func(tx repositories.PayoutRepository) error {
		if err := tx.Update(ctx, payout); err != nil {
			return err
		}
		return tx.AppendTimelineEntry(ctx, &models.TimelineEntry{
			PayoutRef:      payout.ID,
			Status:         req.Status,
			Date:           now,
			Note:           req.Note,
			UpdatedBy:      req.UpdatedBy,
			UpdatedByModel: actor,
		})
	})
	if err != nil {
		s.metrics.RecordError("update_status", err.Error())
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	s.metrics.RecordStatusChange(oldStatus, req.Status)
	s.cache.InvalidatePayout(ctx, payout.PayoutID)
	s.cache.InvalidateStats(ctx, payout.SellerID)

	if req.Status == StatusCompleted {
		// The payout is already persisted as completed; a failed credit is
		// logged and left for the retry endpoint rather than rolling the
		// status back.
		if err := s.crediter.CreditCompleted(ctx, payout); err != nil {
			if !errors.Is(err, ledger.ErrAlreadyCredited) {
				log.Printf("payout %s: balance credit failed: %v", payout.PayoutID, err)
				s.metrics.RecordError("credit", err.Error())
			}
		} else {
			s.metrics.RecordCredit(models.CreditAccountSeller, payout.SellerPayoutAmount)
			s.metrics.RecordCredit(models.CreditAccountAdmin, payout.AdminEarnings)
		}
	}

	return payout, nil
}

func (s *service) RetryCredit(ctx context.Context, payoutID string) (*models.Payout, error) {
	payout, err := s.repo.GetByPayoutID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, repositories.ErrPayoutNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, err
	}

	if payout.Status != StatusCompleted {
		return nil, ErrNotCompleted
	}

	err = s.crediter.CreditCompleted(ctx, payout)
	if err != nil && !errors.Is(err, ledger.ErrAlreadyCredited) {
		payout.RetryCount++
		payout.FailureReason = err.Error()
		if uerr := s.repo.Update(ctx, payout); uerr != nil {
			log.Printf("payout %s: failed to record credit failure: %v", payout.PayoutID, uerr)
		}
		s.cache.InvalidatePayout(ctx, payout.PayoutID)
		return nil, fmt.Errorf("credit retry failed: %w", err)
	}

	if payout.FailureReason != "" {
		payout.FailureReason = ""
		if uerr := s.repo.Update(ctx, payout); uerr != nil {
			log.Printf("payout %s: failed to clear failure reason: %v", payout.PayoutID, uerr)
		}
	}
	s.cache.InvalidatePayout(ctx, payout.PayoutID)
	return payout, nil
}

func (s *service) RefreshPaymentInfo(ctx context.Context, payoutID string) (*models.Payout, error) {
	payout, err := s.repo.GetByPayoutID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, repositories.ErrPayoutNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, err
	}

	order, err := s.orders.GetByID(ctx, payout.OrderID)
	if err != nil {
		return nil, err
	}

	var sellerOrder *models.SellerOrder
	for i := range order.SellerOrders {
		if order.SellerOrders[i].Position == payout.SellerOrderIndex {
			sellerOrder = &order.SellerOrders[i]
			break
		}
	}
	if sellerOrder == nil {
		return nil, repositories.ErrSellerOrderNotFound
	}
	if sellerOrder.Payment == nil {
		return nil, ErrPaymentMissing
	}

	payout.PaymentInfo = paymentSnapshot(sellerOrder.Payment)
	if err := s.repo.Update(ctx, payout); err != nil {
		s.metrics.RecordError("refresh_payment_info", err.Error())
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
	}

	s.cache.InvalidatePayout(ctx, payout.PayoutID)
	return payout, nil
}

func (s *service) Get(ctx context.Context, payoutID string) (*models.Payout, error) {
	// Try cache first
	if payout, err := s.cache.GetPayout(ctx, payoutID); err == nil && payout != nil {
		s.metrics.RecordCacheHit(payoutID)
		return payout, nil
	}
	s.metrics.RecordCacheMiss(payoutID)

	payout, err := s.repo.GetByPayoutID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, repositories.ErrPayoutNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, err
	}

	s.cache.CachePayout(ctx, payout)
	return payout, nil
}

func (s *service) GetTimeline(ctx context.Context, payoutID string) ([]models.TimelineEntry, error) {
	payout, err := s.repo.GetByPayoutID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, repositories.ErrPayoutNotFound) {
			return nil, ErrPayoutNotFound
		}
		return nil, err
	}
	return s.repo.GetTimeline(ctx, payout.ID)
}

func (s *service) ListByStatus(ctx context.Context, status string, limit, offset int) ([]models.Payout, int64, error) {
	if err := validation.ValidatePayoutStatus(status); err != nil {
		return nil, 0, ErrInvalidStatus
	}
	return s.repo.FindByStatus(ctx, status, limit, offset)
}

func (s *service) ListBySeller(ctx context.Context, sellerID uint, limit, offset int) ([]models.Payout, int64, error) {
	return s.repo.FindBySeller(ctx, sellerID, limit, offset)
}

func (s *service) ListByBuyer(ctx context.Context, buyerID uint, limit, offset int) ([]models.Payout, int64, error) {
	return s.repo.FindByBuyer(ctx, buyerID, limit, offset)
}

func (s *service) ListByDateRange(ctx context.Context, start, end time.Time, limit, offset int) ([]models.Payout, int64, error) {
	return s.repo.FindByDateRange(ctx, start, end, limit, offset)
}

func (s *service) Stats(ctx context.Context, sellerID uint) ([]repositories.PayoutStatusStat, error) {
	var cached []repositories.PayoutStatusStat
	if found, err := s.cache.GetStats(ctx, sellerID, &cached); err == nil && found {
		s.metrics.RecordCacheHit("stats")
		return cached, nil
	}
	s.metrics.RecordCacheMiss("stats")

	stats, err := s.repo.GetStats(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.CacheStats(ctx, sellerID, stats, StatsCacheDuration); err != nil {
		log.Printf("failed to cache payout stats: %v", err)
	}
	return stats, nil
}

func paymentSnapshot(p *models.PaymentRecord) models.JSON {
	snapshot := models.JSON{
		models.PaymentInfoMethod:      p.PaymentMethod,
		models.PaymentInfoBankAccount: p.PaidToBankAccount,
		models.PaymentInfoWallet:      p.PaidToWallet,
		models.PaymentInfoScreenshot:  p.PaymentScreenshot,
		models.PaymentInfoConfirmed:   p.Confirmed,
	}
	if p.ConfirmedAt != nil {
		snapshot[models.PaymentInfoConfirmedAt] = p.ConfirmedAt.Format(time.RFC3339)
	}
	return snapshot
}
