package models

import "time"

// Balance credit account types
const (
	CreditAccountSeller = "seller"
	CreditAccountAdmin  = "admin"
)

// BalanceCredit records that a payout's amount was applied to one ledger
// account. The unique (payout_id, account_type) pair is what makes the
// completion credit idempotent: a repeated credit attempt hits the unique
// index instead of re-crediting the balance.
type BalanceCredit struct {
	ID          uint    `gorm:"primarykey"`
	PayoutID    string  `gorm:"uniqueIndex:idx_credit_payout_account;not null"`
	AccountType string  `gorm:"uniqueIndex:idx_credit_payout_account;not null"`
	AccountID   uint    `gorm:"index;not null"`
	Amount      float64 `gorm:"not null"`
	Reference   string  `gorm:"not null"`
	CreatedAt   time.Time
}
