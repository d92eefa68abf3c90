package handlers

import (
	"errors"

	"sportwearxpress/internal/repositories"
	"sportwearxpress/internal/services/ledger"
	"sportwearxpress/internal/utils"
	"sportwearxpress/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	ledgerService ledger.Service
}

func NewAdminHandler(ledgerService ledger.Service) *AdminHandler {
	return &AdminHandler{
		ledgerService: ledgerService,
	}
}

// GetCommissionBalance returns the platform admin's accumulated commissions.
func (h *AdminHandler) GetCommissionBalance(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	admin, err := h.ledgerService.GetAdminBalance(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return utils.NotFound(c, "Admin not found")
		}
		return utils.InternalError(c, "Failed to get commission balance")
	}

	return utils.Success(c, fiber.Map{
		"commission_balance": admin.CommissionBalance,
		"total_commissions":  admin.TotalCommissions,
	})
}

// GetCommissionHistory returns the admin's per-payout commission records.
func (h *AdminHandler) GetCommissionHistory(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	p := pagination.ParseFromRequest(c)
	history, total, err := h.ledgerService.GetAdminHistory(c.Context(), claims.UserID, p.Limit, p.Offset)
	if err != nil {
		return utils.InternalError(c, "Failed to get commission history")
	}

	p.Total = total
	return utils.Success(c, pagination.Response(p, history))
}
