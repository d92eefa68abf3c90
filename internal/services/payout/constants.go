package payout

import (
	"time"

	"sportwearxpress/internal/models"
)

// Payout statuses, re-exported for callers of this package.
const (
	StatusPending    = models.PayoutStatusPending
	StatusApproved   = models.PayoutStatusApproved
	StatusProcessing = models.PayoutStatusProcessing
	StatusCompleted  = models.PayoutStatusCompleted
	StatusFailed     = models.PayoutStatusFailed
	StatusCancelled  = models.PayoutStatusCancelled
	StatusRefunded   = models.PayoutStatusRefunded
)

// Default configuration values
const (
	DefaultCommissionRate = 0.02
	PayoutIDPrefix        = "PAY"
)

// Actor models recorded in timeline entries.
const (
	ActorSeller = "Seller"
	ActorAdmin  = "Admin"
	ActorSystem = "System"
)

// Cache durations
const (
	PayoutCacheDuration = 24 * time.Hour
	StatsCacheDuration  = 5 * time.Minute
)
