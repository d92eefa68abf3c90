package repositories

import (
	"context"
	"errors"
	"fmt"

	"sportwearxpress/internal/models"

	"gorm.io/gorm"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("email already taken")
)

// Account is the role-agnostic view of a seller or admin used by the auth
// service.
type Account struct {
	ID           uint
	Email        string
	Password     string
	Role         string
	TokenVersion int
	Status       string
}

// AccountRepository resolves seller and admin accounts for authentication.
type AccountRepository interface {
	CreateSeller(ctx context.Context, seller *models.Seller) error
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, role string, id uint) (*Account, error)
	IncrementTokenVersion(ctx context.Context, role string, id uint) error
	UpdatePassword(ctx context.Context, role string, id uint, hashedPassword string) error
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) CreateSeller(ctx context.Context, seller *models.Seller) error {
	var count int64
	r.db.WithContext(ctx).Model(&models.Seller{}).Where("email = ?", seller.Email).Count(&count)
	if count > 0 {
		return ErrEmailTaken
	}
	if err := r.db.WithContext(ctx).Create(seller).Error; err != nil {
		return fmt.Errorf("failed to create seller: %w", err)
	}
	return nil
}

func (r *accountRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	var count int64
	r.db.WithContext(ctx).Model(&models.Admin{}).Where("email = ?", admin.Email).Count(&count)
	if count > 0 {
		return ErrEmailTaken
	}
	if err := r.db.WithContext(ctx).Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	var seller models.Seller
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&seller).Error
	if err == nil {
		return sellerAccount(&seller), nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to look up seller: %w", err)
	}

	var admin models.Admin
	err = r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err == nil {
		return adminAccount(&admin), nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	return nil, ErrAccountNotFound
}

func (r *accountRepository) GetByID(ctx context.Context, role string, id uint) (*Account, error) {
	switch role {
	case models.RoleSeller:
		var seller models.Seller
		if err := r.db.WithContext(ctx).First(&seller, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrAccountNotFound
			}
			return nil, fmt.Errorf("failed to get seller: %w", err)
		}
		return sellerAccount(&seller), nil
	case models.RoleAdmin:
		var admin models.Admin
		if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, ErrAccountNotFound
			}
			return nil, fmt.Errorf("failed to get admin: %w", err)
		}
		return adminAccount(&admin), nil
	default:
		return nil, fmt.Errorf("unknown account role %q", role)
	}
}

func (r *accountRepository) IncrementTokenVersion(ctx context.Context, role string, id uint) error {
	return r.updateByRole(ctx, role, id, map[string]interface{}{
		"token_version": gorm.Expr("token_version + 1"),
	})
}

func (r *accountRepository) UpdatePassword(ctx context.Context, role string, id uint, hashedPassword string) error {
	return r.updateByRole(ctx, role, id, map[string]interface{}{
		"password": hashedPassword,
	})
}

func (r *accountRepository) updateByRole(ctx context.Context, role string, id uint, updates map[string]interface{}) error {
	var model interface{}
	switch role {
	case models.RoleSeller:
		model = &models.Seller{}
	case models.RoleAdmin:
		model = &models.Admin{}
	default:
		return fmt.Errorf("unknown account role %q", role)
	}

	result := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func sellerAccount(s *models.Seller) *Account {
	return &Account{
		ID:           s.ID,
		Email:        s.Email,
		Password:     s.Password,
		Role:         models.RoleSeller,
		TokenVersion: s.TokenVersion,
		Status:       s.Status,
	}
}

func adminAccount(a *models.Admin) *Account {
	return &Account{
		ID:           a.ID,
		Email:        a.Email,
		Password:     a.Password,
		Role:         models.RoleAdmin,
		TokenVersion: a.TokenVersion,
		Status:       a.Status,
	}
}
