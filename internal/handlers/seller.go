package handlers

import (
	"errors"

	"sportwearxpress/internal/repositories"
	"sportwearxpress/internal/services/ledger"
	"sportwearxpress/internal/utils"
	"sportwearxpress/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type SellerHandler struct {
	ledgerService ledger.Service
}

func NewSellerHandler(ledgerService ledger.Service) *SellerHandler {
	return &SellerHandler{
		ledgerService: ledgerService,
	}
}

// GetBalance returns the authenticated seller's running balance.
func (h *SellerHandler) GetBalance(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	seller, err := h.ledgerService.GetSellerBalance(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrSellerNotFound) {
			return utils.NotFound(c, "Seller not found")
		}
		return utils.InternalError(c, "Failed to get balance")
	}

	return utils.Success(c, fiber.Map{
		"balance":        seller.Balance,
		"total_earnings": seller.TotalEarnings,
	})
}

// GetPayoutHistory returns the authenticated seller's credited payouts.
func (h *SellerHandler) GetPayoutHistory(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	p := pagination.ParseFromRequest(c)
	history, total, err := h.ledgerService.GetSellerHistory(c.Context(), claims.UserID, p.Limit, p.Offset)
	if err != nil {
		return utils.InternalError(c, "Failed to get payout history")
	}

	p.Total = total
	return utils.Success(c, pagination.Response(p, history))
}
