package repositories

import (
	"context"
	"fmt"

	"sportwearxpress/internal/models"

	"gorm.io/gorm"
)

// OrderRepository is the read-side contract with the order store. The
// payout service only resolves orders and their per-seller sub-orders; it
// never writes them.
type OrderRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("SellerOrders", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("SellerOrders.Payment").
		First(&order, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return &order, nil
}
