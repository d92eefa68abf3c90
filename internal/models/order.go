package models

import "time"

// Order is the read-side contract with the order store. The payout service
// never mutates orders; it only resolves seller sub-orders and their
// payment records when refreshing a payout's payment snapshot.
type Order struct {
	ID          uint   `gorm:"primarykey"`
	BuyerID     uint   `gorm:"index;not null"`
	TotalAmount float64
	Status      string `gorm:"default:'placed'"`

	SellerOrders []SellerOrder `gorm:"foreignKey:OrderID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SellerOrder is the portion of a multi-seller order attributable to one
// seller, addressed by its Position within the order's seller-order list.
type SellerOrder struct {
	ID       uint `gorm:"primarykey"`
	OrderID  uint `gorm:"index;not null"`
	SellerID uint `gorm:"index;not null"`
	Position int  `gorm:"not null"`
	Amount   float64

	PaymentID *uint
	Payment   *PaymentRecord `gorm:"foreignKey:PaymentID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PaymentRecord is the per-seller payment snapshot source.
type PaymentRecord struct {
	ID                uint   `gorm:"primarykey"`
	PaymentMethod     string `gorm:"not null"`
	PaidToBankAccount string
	PaidToWallet      string
	PaymentScreenshot string
	Confirmed         bool `gorm:"default:false"`
	ConfirmedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
