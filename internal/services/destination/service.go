// Package destination manages sellers' withdrawal destinations. Cards are
// tokenized through Stripe; only the token and display fields are stored.
package destination

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"

	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/token"
)

var (
	ErrInvalidCard  = errors.New("invalid card details")
	ErrNotCardOwner = errors.New("card does not belong to seller")
)

type Service interface {
	LinkCard(ctx context.Context, sellerID uint, input models.LinkCardInput) (*models.WithdrawalCard, error)
	GetSellerCards(ctx context.Context, sellerID uint) ([]models.WithdrawalCard, error)
	DeleteCard(ctx context.Context, sellerID, cardID uint) error
}

// Tokenizer turns raw card details into an opaque token.
type Tokenizer interface {
	TokenizeCard(input models.LinkCardInput) (token, cardType, lastFour string, err error)
}

type service struct {
	repo      repositories.CardRepository
	tokenizer Tokenizer
}

func NewService(repo repositories.CardRepository, tokenizer Tokenizer) Service {
	if repo == nil {
		panic("card repo is required")
	}
	if tokenizer == nil {
		tokenizer = NewStripeTokenizer()
	}
	return &service{repo: repo, tokenizer: tokenizer}
}

func (s *service) LinkCard(ctx context.Context, sellerID uint, input models.LinkCardInput) (*models.WithdrawalCard, error) {
	if err := validateCardInput(input); err != nil {
		return nil, err
	}

	tok, cardType, lastFour, err := s.tokenizer.TokenizeCard(input)
	if err != nil {
		log.Println("Card tokenization failed:", err)
		return nil, fmt.Errorf("card tokenization failed: %w", err)
	}

	card := &models.WithdrawalCard{
		SellerID:    sellerID,
		Token:       tok,
		CardType:    cardType,
		LastFour:    lastFour,
		ExpiryMonth: input.ExpiryMonth,
		ExpiryYear:  input.ExpiryYear,
		Status:      "active",
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to save card: %w", err)
	}
	return card, nil
}

func (s *service) GetSellerCards(ctx context.Context, sellerID uint) ([]models.WithdrawalCard, error) {
	return s.repo.GetBySeller(ctx, sellerID)
}

func (s *service) DeleteCard(ctx context.Context, sellerID, cardID uint) error {
	card, err := s.repo.GetByID(ctx, cardID)
	if err != nil {
		return err
	}
	if card.SellerID != sellerID {
		return ErrNotCardOwner
	}
	return s.repo.Delete(ctx, sellerID, cardID)
}

// StripeTokenizer tokenizes cards through the Stripe API.
type StripeTokenizer struct{}

func NewStripeTokenizer() *StripeTokenizer {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")
	return &StripeTokenizer{}
}

func (t *StripeTokenizer) TokenizeCard(input models.LinkCardInput) (string, string, string, error) {
	params := &stripe.TokenParams{
		Card: &stripe.CardParams{
			Number:   stripe.String(input.CardNumber),
			ExpMonth: stripe.String(input.ExpiryMonth),
			ExpYear:  stripe.String(input.ExpiryYear),
			CVC:      stripe.String(input.CVC),
		},
	}

	stripeToken, err := token.New(params)
	if err != nil {
		return "", "", "", fmt.Errorf("stripe tokenization failed: %v", err)
	}

	return stripeToken.ID, string(stripeToken.Card.Brand), stripeToken.Card.Last4, nil
}

func validateCardInput(input models.LinkCardInput) error {
	if len(input.CardNumber) < 13 || len(input.CardNumber) > 19 {
		return ErrInvalidCard
	}
	if !isValidCardNumber(input.CardNumber) {
		return ErrInvalidCard
	}
	if input.ExpiryMonth == "" || input.ExpiryYear == "" {
		return ErrInvalidCard
	}
	return nil
}

// Luhn check on the card number
func isValidCardNumber(cardNumber string) bool {
	var sum int
	shouldDouble := false

	for i := len(cardNumber) - 1; i >= 0; i-- {
		if cardNumber[i] < '0' || cardNumber[i] > '9' {
			return false
		}
		digit := int(cardNumber[i] - '0')

		if shouldDouble {
			digit = digit * 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		shouldDouble = !shouldDouble
	}

	return sum%10 == 0
}
