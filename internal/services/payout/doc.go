/*
Package payout manages the payout ledger entry lifecycle.

A payout represents one seller's share of one order, split into the
seller's net amount and the platform commission. The service handles:
- Creation with derived-amount computation and a seeded status timeline
- Status updates with an append-only audit timeline
- Completion credits into the seller and admin ledgers (idempotent)
- Payment-snapshot refresh from the originating order
- Status/seller/buyer/date queries and grouped statistics

Usage:

	svc := payout.NewService(payoutRepo, orderRepo, crediter, cache, payout.Config{}, nil)

	p, err := svc.Create(ctx, payout.CreateRequest{
	    OrderID:     42,
	    BuyerID:     7,
	    SellerID:    3,
	    AdminID:     1,
	    OrderAmount: 100,
	})

	p, err = svc.UpdateStatus(ctx, p.PayoutID, payout.StatusUpdateRequest{
	    Status:         payout.StatusCompleted,
	    Note:           "payout sent",
	    UpdatedBy:      adminID,
	    UpdatedByModel: "Admin",
	})

The clock and the payout-ID generator are injectable through Config so
tests can run deterministically; production wiring uses the defaults.

Completion crediting is an explicit command keyed by payout ID. Repeating
it (re-saving a completed payout, calling the retry endpoint twice) is a
no-op instead of a double credit.
*/
package payout
