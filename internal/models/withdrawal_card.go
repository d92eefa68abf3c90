package models

import "time"

// WithdrawalCard is a tokenized card a seller registered as a withdrawal
// destination. Only the token and display fields are stored; the PAN never
// touches the database.
type WithdrawalCard struct {
	ID          uint   `gorm:"primarykey"`
	SellerID    uint   `gorm:"not null;index"`
	Token       string `gorm:"not null"`
	CardType    string `gorm:"not null"`
	LastFour    string `gorm:"not null"`
	ExpiryMonth string `gorm:"not null"`
	ExpiryYear  string `gorm:"not null"`
	IsDefault   bool   `gorm:"default:false"`
	Status      string `gorm:"default:'active'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LinkCardInput is the input for registering a withdrawal card.
type LinkCardInput struct {
	CardNumber  string `json:"card_number"`
	ExpiryMonth string `json:"expiry_month"`
	ExpiryYear  string `json:"expiry_year"`
	CVC         string `json:"cvc"`
}
