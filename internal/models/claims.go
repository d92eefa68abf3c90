package models

import "github.com/golang-jwt/jwt/v5"

// Application permissions
const (
	// Admin permissions
	PermissionReadAdmin  = "admin:read"
	PermissionWriteAdmin = "admin:write"

	// Payout permissions
	PermissionPayoutRead  = "payout:read"
	PermissionPayoutWrite = "payout:write"

	// Ledger permissions
	PermissionLedgerRead   = "ledger:read"
	PermissionLedgerCredit = "ledger:credit"

	// Seller permissions
	PermissionSellerRead  = "seller:read"
	PermissionSellerWrite = "seller:write"

	// Withdrawal destination permissions
	PermissionCardWrite = "card:write"

	PermissionChangePassword = "account:change-password"
)

// Account roles
const (
	RoleSeller = "seller"
	RoleAdmin  = "admin"
)

type UserClaims struct {
	jwt.RegisteredClaims
	UserID       uint     `json:"user_id"`
	Email        string   `json:"email"`
	Role         string   `json:"role"`
	Permissions  []string `json:"permissions"`
	TokenVersion int      `json:"token_version"`
}

// HasPermission checks if the claims include a specific permission
func (c *UserClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// GetDefaultPermissions returns default permissions based on role
func GetDefaultPermissions(role string) []string {
	switch role {
	case RoleAdmin:
		return []string{
			PermissionReadAdmin,
			PermissionWriteAdmin,
			PermissionPayoutRead,
			PermissionPayoutWrite,
			PermissionLedgerRead,
			PermissionLedgerCredit,
			PermissionSellerRead,
			PermissionSellerWrite,
			PermissionChangePassword,
		}
	case RoleSeller:
		return []string{
			PermissionPayoutRead,
			PermissionSellerRead,
			PermissionCardWrite,
			PermissionChangePassword,
		}
	default:
		return []string{}
	}
}
