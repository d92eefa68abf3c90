package models

import "time"

// Seller holds a seller account and its running payout ledger balances.
type Seller struct {
	ID       uint   `gorm:"primarykey"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	ShopName string `gorm:"not null"`
	Phone    string

	Balance       float64 `gorm:"default:0"`
	TotalEarnings float64 `gorm:"default:0"`

	Status       string `gorm:"default:'active'"`
	TokenVersion int    `gorm:"default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SellerPayoutHistory is one append-only entry in a seller's payout history.
type SellerPayoutHistory struct {
	ID        uint    `gorm:"primarykey"`
	SellerID  uint    `gorm:"index;not null"`
	PayoutID  string  `gorm:"index;not null"`
	OrderID   uint    `gorm:"not null"`
	Amount    float64 `gorm:"not null"`
	Note      string
	CreatedAt time.Time
}
