package models

import "time"

// Admin holds a platform admin account and its commission ledger balances.
type Admin struct {
	ID       uint   `gorm:"primarykey"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	Name     string `gorm:"not null"`

	CommissionBalance float64 `gorm:"default:0"`
	TotalCommissions  float64 `gorm:"default:0"`

	Status       string `gorm:"default:'active'"`
	TokenVersion int    `gorm:"default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AdminCommissionHistory is one append-only entry in an admin's commission history.
type AdminCommissionHistory struct {
	ID        uint    `gorm:"primarykey"`
	AdminID   uint    `gorm:"index;not null"`
	PayoutID  string  `gorm:"index;not null"`
	OrderID   uint    `gorm:"not null"`
	SellerID  uint    `gorm:"not null"`
	Amount    float64 `gorm:"not null"`
	Note      string
	CreatedAt time.Time
}
