package repositories

import (
	"context"
	"errors"
	"fmt"

	"sportwearxpress/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const pqUniqueViolation = "23505"

type ledgerRepository struct {
	db *gorm.DB
}

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) GetSeller(ctx context.Context, id uint) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.WithContext(ctx).First(&seller, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrSellerNotFound
		}
		return nil, fmt.Errorf("failed to get seller: %w", err)
	}
	return &seller, nil
}

func (r *ledgerRepository) GetAdmin(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

func (r *ledgerRepository) CreditSeller(ctx context.Context, credit *models.BalanceCredit, history *models.SellerPayoutHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(credit).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrCreditDuplicate
			}
			return fmt.Errorf("failed to record seller credit: %w", err)
		}

		result := tx.Model(&models.Seller{}).
			Where("id = ?", credit.AccountID).
			Updates(map[string]interface{}{
				"balance":        gorm.Expr("balance + ?", credit.Amount),
				"total_earnings": gorm.Expr("total_earnings + ?", credit.Amount),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to credit seller balance: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrSellerNotFound
		}

		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("failed to append seller payout history: %w", err)
		}
		return nil
	})
}

func (r *ledgerRepository) CreditAdmin(ctx context.Context, credit *models.BalanceCredit, history *models.AdminCommissionHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(credit).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrCreditDuplicate
			}
			return fmt.Errorf("failed to record admin credit: %w", err)
		}

		result := tx.Model(&models.Admin{}).
			Where("id = ?", credit.AccountID).
			Updates(map[string]interface{}{
				"commission_balance": gorm.Expr("commission_balance + ?", credit.Amount),
				"total_commissions":  gorm.Expr("total_commissions + ?", credit.Amount),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to credit admin balance: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAdminNotFound
		}

		if err := tx.Create(history).Error; err != nil {
			return fmt.Errorf("failed to append admin commission history: %w", err)
		}
		return nil
	})
}

func (r *ledgerRepository) GetSellerPayoutHistory(ctx context.Context, sellerID uint, limit, offset int) ([]models.SellerPayoutHistory, int64, error) {
	var entries []models.SellerPayoutHistory
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SellerPayoutHistory{}).Where("seller_id = ?", sellerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payout history: %w", err)
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get payout history: %w", err)
	}
	return entries, total, nil
}

func (r *ledgerRepository) GetAdminCommissionHistory(ctx context.Context, adminID uint, limit, offset int) ([]models.AdminCommissionHistory, int64, error) {
	var entries []models.AdminCommissionHistory
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AdminCommissionHistory{}).Where("admin_id = ?", adminID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count commission history: %w", err)
	}
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get commission history: %w", err)
	}
	return entries, total, nil
}

func (r *ledgerRepository) HasCredit(ctx context.Context, payoutID, accountType string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.BalanceCredit{}).
		Where("payout_id = ? AND account_type = ?", payoutID, accountType).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check credit record: %w", err)
	}
	return count > 0, nil
}

func (r *ledgerRepository) ExecuteInTransaction(fn func(LedgerRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &ledgerRepository{db: tx}
		return fn(txRepo)
	})
}

// isUniqueViolation recognizes a unique-constraint violation from any of
// the drivers this codebase can run against. gorm.io/driver/postgres
// speaks pgx, so *pgconn.PgError is the case production actually hits.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pqUniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
