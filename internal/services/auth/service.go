package auth

import (
	"context"
	"errors"
	"log"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"
	"sportwearxpress/internal/utils"
	"sportwearxpress/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Login(ctx context.Context, email, password string) (*repositories.Account, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, role string, accountID uint) error
	ChangePassword(ctx context.Context, role string, accountID uint, oldPassword, newPassword string) error
	GetTokenVersion(ctx context.Context, role string, accountID uint) (int, error)
}

type service struct {
	accounts repositories.AccountRepository
}

func NewService(accounts repositories.AccountRepository) Service {
	return &service{accounts: accounts}
}

func (s *service) Login(ctx context.Context, email, password string) (*repositories.Account, string, string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		log.Printf("Login failed: account not found for %s", email)
		return nil, "", "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		log.Printf("Login failed: incorrect password for account %d", account.ID)
		return nil, "", "", errors.New("invalid credentials")
	}

	accessToken, refreshToken, err := utils.GenerateTokens(&models.UserClaims{
		UserID:       account.ID,
		Email:        account.Email,
		Role:         account.Role,
		TokenVersion: account.TokenVersion,
		Permissions:  models.GetDefaultPermissions(account.Role),
	})
	if err != nil {
		log.Println("Error generating tokens:", err)
		return nil, "", "", errors.New("error generating tokens")
	}

	return account, accessToken, refreshToken, nil
}

func (s *service) RefreshTokens(ctx context.Context, refreshToken string) (string, string, error) {
	_, claims, err := utils.ParseToken(refreshToken)
	if err != nil {
		return "", "", errors.New("invalid refresh token")
	}

	account, err := s.accounts.GetByID(ctx, claims.Role, claims.UserID)
	if err != nil {
		return "", "", errors.New("account not found")
	}

	if account.TokenVersion != claims.TokenVersion {
		return "", "", errors.New("token version mismatch")
	}

	return utils.GenerateTokens(&models.UserClaims{
		UserID:       account.ID,
		Email:        account.Email,
		Role:         account.Role,
		TokenVersion: account.TokenVersion,
		Permissions:  models.GetDefaultPermissions(account.Role),
	})
}

func (s *service) Logout(ctx context.Context, role string, accountID uint) error {
	return s.accounts.IncrementTokenVersion(ctx, role, accountID)
}

func (s *service) ChangePassword(ctx context.Context, role string, accountID uint, oldPassword, newPassword string) error {
	account, err := s.accounts.GetByID(ctx, role, accountID)
	if err != nil {
		return errors.New("failed to get account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(oldPassword)); err != nil {
		return errors.New("invalid old password")
	}

	if len(newPassword) < 8 || !validation.HasSpecialChar(newPassword) {
		return errors.New("password must be at least 8 characters and contain special characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash password")
	}

	if err := s.accounts.UpdatePassword(ctx, role, accountID, string(hashedPassword)); err != nil {
		return errors.New("failed to update password")
	}

	// Invalidate existing tokens
	return s.accounts.IncrementTokenVersion(ctx, role, accountID)
}

func (s *service) GetTokenVersion(ctx context.Context, role string, accountID uint) (int, error) {
	account, err := s.accounts.GetByID(ctx, role, accountID)
	if err != nil {
		return 0, err
	}
	return account.TokenVersion, nil
}
