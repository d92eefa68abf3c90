// Package account handles seller and admin account registration.
package account

import (
	"context"
	"errors"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"
	"sportwearxpress/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// RegisterSellerInput is the input for seller registration.
type RegisterSellerInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	ShopName string `json:"shop_name" validate:"required"`
	Phone    string `json:"phone"`
}

type Service interface {
	RegisterSeller(ctx context.Context, input RegisterSellerInput) (*models.Seller, error)
	GetSeller(ctx context.Context, id uint) (*models.Seller, error)
}

type service struct {
	accounts repositories.AccountRepository
	ledger   repositories.LedgerRepository
}

func NewService(accounts repositories.AccountRepository, ledger repositories.LedgerRepository) Service {
	return &service{accounts: accounts, ledger: ledger}
}

func (s *service) RegisterSeller(ctx context.Context, input RegisterSellerInput) (*models.Seller, error) {
	if input.Email == "" || !validation.IsValidEmail(input.Email) {
		return nil, errors.New("a valid email is required")
	}
	if input.ShopName == "" {
		return nil, errors.New("shop name is required")
	}
	if len(input.Password) < 8 || !validation.HasSpecialChar(input.Password) {
		return nil, errors.New("password must be at least 8 characters and contain special characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	seller := &models.Seller{
		Email:    input.Email,
		Password: string(hashedPassword),
		ShopName: input.ShopName,
		Phone:    input.Phone,
		Status:   "active",
	}
	if err := s.accounts.CreateSeller(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (s *service) GetSeller(ctx context.Context, id uint) (*models.Seller, error) {
	return s.ledger.GetSeller(ctx, id)
}
