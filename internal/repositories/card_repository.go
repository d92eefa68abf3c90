package repositories

import (
	"context"
	"errors"
	"fmt"

	"sportwearxpress/internal/models"

	"gorm.io/gorm"
)

var ErrCardNotFound = errors.New("withdrawal card not found")

// CardRepository stores sellers' tokenized withdrawal cards.
type CardRepository interface {
	Create(ctx context.Context, card *models.WithdrawalCard) error
	GetByID(ctx context.Context, id uint) (*models.WithdrawalCard, error)
	GetBySeller(ctx context.Context, sellerID uint) ([]models.WithdrawalCard, error)
	Delete(ctx context.Context, sellerID, cardID uint) error
}

type cardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

func (r *cardRepository) Create(ctx context.Context, card *models.WithdrawalCard) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		return fmt.Errorf("failed to create withdrawal card: %w", err)
	}
	return nil
}

func (r *cardRepository) GetByID(ctx context.Context, id uint) (*models.WithdrawalCard, error) {
	var card models.WithdrawalCard
	if err := r.db.WithContext(ctx).First(&card, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get withdrawal card: %w", err)
	}
	return &card, nil
}

func (r *cardRepository) GetBySeller(ctx context.Context, sellerID uint) ([]models.WithdrawalCard, error) {
	var cards []models.WithdrawalCard
	err := r.db.WithContext(ctx).
		Where("seller_id = ? AND status = ?", sellerID, "active").
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list withdrawal cards: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) Delete(ctx context.Context, sellerID, cardID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND seller_id = ?", cardID, sellerID).
		Delete(&models.WithdrawalCard{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete withdrawal card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}
