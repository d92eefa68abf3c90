package payout

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// CreateRequest carries the inputs for a new payout ledger entry.
type CreateRequest struct {
	OrderID          uint                   `json:"order_id" validate:"required"`
	BuyerID          uint                   `json:"buyer_id" validate:"required"`
	SellerID         uint                   `json:"seller_id" validate:"required"`
	AdminID          uint                   `json:"admin_id" validate:"required"`
	SellerOrderIndex int                    `json:"seller_order_index"`
	OrderAmount      float64                `json:"order_amount" validate:"required,gte=0"`
	CommissionRate   *float64               `json:"commission_rate,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
}

// StatusUpdateRequest carries a status transition and its audit fields.
type StatusUpdateRequest struct {
	Status         string `json:"status" validate:"required"`
	Note           string `json:"note"`
	UpdatedBy      uint   `json:"updated_by"`
	UpdatedByModel string `json:"updated_by_model"`
}

// Config holds configuration for the payout service.
type Config struct {
	CommissionRate float64
	Clock          Clock
	IDGenerator    IDGenerator
}

// Clock abstracts wall-clock reads so tests can run deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// IDGenerator produces human-readable payout identifiers.
type IDGenerator interface {
	NewPayoutID(now time.Time) string
}

// randomIDGenerator builds PAY-YYMMDD-NNNN identifiers with a random
// 4-digit suffix. The suffix is not collision-checked; the unique index on
// payout_id turns a collision into a storage error rather than a silent
// overwrite.
type randomIDGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomIDGenerator returns the default payout-ID generator.
func NewRandomIDGenerator() IDGenerator {
	return &randomIDGenerator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *randomIDGenerator) NewPayoutID(now time.Time) string {
	g.mu.Lock()
	n := g.rng.Intn(10000)
	g.mu.Unlock()
	return fmt.Sprintf("%s-%s-%04d", PayoutIDPrefix, now.Format("060102"), n)
}

// MetricsCollector defines the interface for collecting payout metrics
type MetricsCollector interface {
	RecordOperationDuration(operation string, duration time.Duration)
	RecordStatusChange(from, to string)
	RecordCredit(accountType string, amount float64)
	RecordError(operation, errType string)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
}
