package validation

import (
	"sportwearxpress/internal/models"
)

// ValidatePayoutAmount checks the gross amount and commission rate bounds.
func ValidatePayoutAmount(orderAmount, commissionRate float64) error {
	if orderAmount < 0 {
		return ValidationError{Field: "order_amount", Message: "must be zero or positive"}
	}
	if commissionRate < 0 || commissionRate > 1 {
		return ValidationError{Field: "commission_rate", Message: "must be between 0 and 1"}
	}
	return nil
}

// ValidatePayoutStatus checks the status is one of the accepted values.
// Any accepted value may follow any other; there is no transition graph.
func ValidatePayoutStatus(status string) error {
	if !models.IsValidPayoutStatus(status) {
		return ValidationError{Field: "status", Message: "unknown payout status"}
	}
	return nil
}
