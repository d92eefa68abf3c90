package destination

import (
	"context"
	"testing"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCardRepo struct {
	mock.Mock
}

func (m *MockCardRepo) Create(ctx context.Context, card *models.WithdrawalCard) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *MockCardRepo) GetByID(ctx context.Context, id uint) (*models.WithdrawalCard, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*models.WithdrawalCard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCardRepo) GetBySeller(ctx context.Context, sellerID uint) ([]models.WithdrawalCard, error) {
	args := m.Called(ctx, sellerID)
	if c := args.Get(0); c != nil {
		return c.([]models.WithdrawalCard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCardRepo) Delete(ctx context.Context, sellerID, cardID uint) error {
	args := m.Called(ctx, sellerID, cardID)
	return args.Error(0)
}

type stubTokenizer struct{}

func (stubTokenizer) TokenizeCard(input models.LinkCardInput) (string, string, string, error) {
	return "tok_test", "Visa", input.CardNumber[len(input.CardNumber)-4:], nil
}

func validInput() models.LinkCardInput {
	return models.LinkCardInput{
		CardNumber:  "4111111111111111",
		ExpiryMonth: "12",
		ExpiryYear:  "2030",
		CVC:         "123",
	}
}

func TestDestinationService_LinkCard(t *testing.T) {
	t.Run("stores the tokenized card", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		s := NewService(repo, stubTokenizer{})
		card, err := s.LinkCard(context.Background(), 3, validInput())
		assert.NoError(t, err)
		assert.Equal(t, "tok_test", card.Token)
		assert.Equal(t, "1111", card.LastFour)
		assert.Equal(t, uint(3), card.SellerID)
	})

	t.Run("rejects a number that fails the Luhn check", func(t *testing.T) {
		s := NewService(new(MockCardRepo), stubTokenizer{})
		input := validInput()
		input.CardNumber = "4111111111111112"

		_, err := s.LinkCard(context.Background(), 3, input)
		assert.ErrorIs(t, err, ErrInvalidCard)
	})

	t.Run("rejects a short number", func(t *testing.T) {
		s := NewService(new(MockCardRepo), stubTokenizer{})
		input := validInput()
		input.CardNumber = "4111"

		_, err := s.LinkCard(context.Background(), 3, input)
		assert.ErrorIs(t, err, ErrInvalidCard)
	})

	t.Run("rejects missing expiry", func(t *testing.T) {
		s := NewService(new(MockCardRepo), stubTokenizer{})
		input := validInput()
		input.ExpiryYear = ""

		_, err := s.LinkCard(context.Background(), 3, input)
		assert.ErrorIs(t, err, ErrInvalidCard)
	})
}

func TestDestinationService_DeleteCard(t *testing.T) {
	t.Run("refuses another seller's card", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(&models.WithdrawalCard{SellerID: 99}, nil)

		s := NewService(repo, stubTokenizer{})
		err := s.DeleteCard(context.Background(), 3, 5)
		assert.ErrorIs(t, err, ErrNotCardOwner)
		repo.AssertNotCalled(t, "Delete")
	})

	t.Run("missing card", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(nil, repositories.ErrCardNotFound)

		s := NewService(repo, stubTokenizer{})
		err := s.DeleteCard(context.Background(), 3, 5)
		assert.ErrorIs(t, err, repositories.ErrCardNotFound)
	})

	t.Run("owner can delete", func(t *testing.T) {
		repo := new(MockCardRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(&models.WithdrawalCard{SellerID: 3}, nil)
		repo.On("Delete", mock.Anything, uint(3), uint(5)).Return(nil)

		s := NewService(repo, stubTokenizer{})
		err := s.DeleteCard(context.Background(), 3, 5)
		assert.NoError(t, err)
	})
}
