package models

import (
	"time"

	"gorm.io/gorm"
)

// Payout statuses
const (
	PayoutStatusPending    = "pending"
	PayoutStatusApproved   = "approved"
	PayoutStatusProcessing = "processing"
	PayoutStatusCompleted  = "completed"
	PayoutStatusFailed     = "failed"
	PayoutStatusCancelled  = "cancelled"
	PayoutStatusRefunded   = "refunded"
)

// PayoutStatuses lists every accepted payout status value.
var PayoutStatuses = []string{
	PayoutStatusPending,
	PayoutStatusApproved,
	PayoutStatusProcessing,
	PayoutStatusCompleted,
	PayoutStatusFailed,
	PayoutStatusCancelled,
	PayoutStatusRefunded,
}

// Payout represents one seller's payout for one order. It owns its
// timeline, payment snapshot, fees and notifications; order, buyer,
// seller and admin are references into their own stores.
type Payout struct {
	ID       uint   `gorm:"primarykey"`
	PayoutID string `gorm:"uniqueIndex;not null"` // PAY-YYMMDD-NNNN

	OrderID          uint `gorm:"index;not null"`
	BuyerID          uint `gorm:"index;not null"`
	SellerID         uint `gorm:"index;not null"`
	AdminID          uint `gorm:"not null"`
	SellerOrderIndex int  `gorm:"not null;default:0"`

	OrderAmount    float64 `gorm:"not null"`
	CommissionRate float64 `gorm:"not null;default:0.02"`

	// Derived on every save from OrderAmount and CommissionRate.
	CommissionAmount   float64
	SellerPayoutAmount float64
	AdminEarnings      float64

	Status         string `gorm:"not null;default:'pending';index"`
	ProcessingDate *time.Time
	CompletedDate  *time.Time

	RetryCount    int    `gorm:"default:0"`
	FailureReason string `gorm:"default:''"`

	PaymentInfo   JSON `gorm:"type:jsonb"`
	Fees          JSON `gorm:"type:jsonb"`
	Metadata      JSON `gorm:"type:jsonb"`
	Notifications JSON `gorm:"type:jsonb"`

	Timeline []TimelineEntry `gorm:"foreignKey:PayoutRef;references:ID"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

// BeforeSave recomputes the derived amounts whenever the gross amount and
// rate are present, so the split invariant holds after every persist.
func (p *Payout) BeforeSave(tx *gorm.DB) error {
	if p.OrderAmount >= 0 && p.CommissionRate >= 0 {
		p.Recompute()
	}
	return nil
}

// Recompute derives the commission split from OrderAmount and CommissionRate.
func (p *Payout) Recompute() {
	p.CommissionAmount = p.OrderAmount * p.CommissionRate
	p.SellerPayoutAmount = p.OrderAmount - p.CommissionAmount
	p.AdminEarnings = p.CommissionAmount
}

// IsValidPayoutStatus reports whether status is one of the accepted values.
func IsValidPayoutStatus(status string) bool {
	for _, s := range PayoutStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// TimelineEntry is one row of a payout's append-only status audit log.
type TimelineEntry struct {
	ID             uint      `gorm:"primarykey"`
	PayoutRef      uint      `gorm:"index;not null"`
	Status         string    `gorm:"not null"`
	Date           time.Time `gorm:"not null"`
	Note           string
	UpdatedBy      uint
	UpdatedByModel string // "Seller", "Admin" or "System"
	CreatedAt      time.Time
}

// PaymentInfo field keys for the per-seller payment snapshot copied from
// the originating order.
const (
	PaymentInfoMethod      = "payment_method"
	PaymentInfoBankAccount = "paid_to_bank_account"
	PaymentInfoWallet      = "paid_to_wallet"
	PaymentInfoScreenshot  = "payment_screenshot"
	PaymentInfoConfirmed   = "confirmed"
	PaymentInfoConfirmedAt = "confirmed_at"
)
