package handlers

import (
	"errors"
	"time"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"
	"sportwearxpress/internal/services/payout"
	"sportwearxpress/internal/utils"
	"sportwearxpress/internal/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

type PayoutHandler struct {
	payoutService payout.Service
}

func NewPayoutHandler(payoutService payout.Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

// extractUserClaims is a helper function to reduce duplication
func extractUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, fiber.ErrUnauthorized
	}
	return claims, nil
}

func (h *PayoutHandler) CreatePayout(c *fiber.Ctx) error {
	var input payout.CreateRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	if input.OrderID == 0 || input.SellerID == 0 || input.AdminID == 0 {
		return utils.BadRequest(c, "order_id, seller_id and admin_id are required")
	}

	record, err := h.payoutService.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, payout.ErrInvalidAmount) || errors.Is(err, payout.ErrInvalidRate) {
			return utils.BadRequest(c, err.Error())
		}
		return utils.InternalError(c, "Failed to create payout")
	}

	return utils.Created(c, fiber.Map{"payout": record})
}

func (h *PayoutHandler) GetPayout(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	record, err := h.payoutService.Get(c.Context(), c.Params("payoutId"))
	if err != nil {
		if errors.Is(err, payout.ErrPayoutNotFound) {
			return utils.NotFound(c, "Payout not found")
		}
		return utils.InternalError(c, "Failed to get payout")
	}

	// Sellers may only read their own payouts
	if claims.Role == models.RoleSeller && record.SellerID != claims.UserID {
		return utils.Forbidden(c, "Not your payout")
	}

	return utils.Success(c, fiber.Map{"payout": record})
}

func (h *PayoutHandler) GetPayoutTimeline(c *fiber.Ctx) error {
	timeline, err := h.payoutService.GetTimeline(c.Context(), c.Params("payoutId"))
	if err != nil {
		if errors.Is(err, payout.ErrPayoutNotFound) {
			return utils.NotFound(c, "Payout not found")
		}
		return utils.InternalError(c, "Failed to get timeline")
	}

	return utils.Success(c, fiber.Map{"timeline": timeline})
}

func (h *PayoutHandler) UpdatePayoutStatus(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input struct {
		Status string `json:"status" validate:"required"`
		Note   string `json:"note"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	record, err := h.payoutService.UpdateStatus(c.Context(), c.Params("payoutId"), payout.StatusUpdateRequest{
		Status:         input.Status,
		Note:           input.Note,
		UpdatedBy:      claims.UserID,
		UpdatedByModel: payout.ActorAdmin,
	})
	if err != nil {
		if errors.Is(err, payout.ErrInvalidStatus) {
			return utils.BadRequest(c, "Unknown payout status")
		}
		if errors.Is(err, payout.ErrPayoutNotFound) {
			return utils.NotFound(c, "Payout not found")
		}
		return utils.InternalError(c, "Failed to update payout status")
	}

	return utils.Success(c, fiber.Map{
		"message": "Payout status updated",
		"payout":  record,
	})
}

func (h *PayoutHandler) RetryCredit(c *fiber.Ctx) error {
	record, err := h.payoutService.RetryCredit(c.Context(), c.Params("payoutId"))
	if err != nil {
		if errors.Is(err, payout.ErrPayoutNotFound) {
			return utils.NotFound(c, "Payout not found")
		}
		if errors.Is(err, payout.ErrNotCompleted) {
			return utils.BadRequest(c, "Payout is not completed")
		}
		return utils.InternalError(c, err.Error())
	}

	return utils.Success(c, fiber.Map{
		"message": "Payout credited",
		"payout":  record,
	})
}

func (h *PayoutHandler) RefreshPaymentInfo(c *fiber.Ctx) error {
	record, err := h.payoutService.RefreshPaymentInfo(c.Context(), c.Params("payoutId"))
	if err != nil {
		if errors.Is(err, payout.ErrPayoutNotFound) {
			return utils.NotFound(c, "Payout not found")
		}
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return utils.NotFound(c, "Order not found")
		}
		if errors.Is(err, repositories.ErrSellerOrderNotFound) {
			return utils.NotFound(c, "Seller order not found")
		}
		if errors.Is(err, payout.ErrPaymentMissing) {
			return utils.NotFound(c, "Seller order has no payment record")
		}
		return utils.InternalError(c, "Failed to refresh payment info")
	}

	return utils.Success(c, fiber.Map{
		"message": "Payment info refreshed",
		"payout":  record,
	})
}

// ListPayouts filters by status, seller, buyer or date range depending on
// the query parameters supplied.
func (h *PayoutHandler) ListPayouts(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	var (
		records []models.Payout
		total   int64
		err     error
	)

	switch {
	case c.Query("status") != "":
		records, total, err = h.payoutService.ListByStatus(c.Context(), c.Query("status"), p.Limit, p.Offset)
	case c.QueryInt("seller_id") > 0:
		records, total, err = h.payoutService.ListBySeller(c.Context(), uint(c.QueryInt("seller_id")), p.Limit, p.Offset)
	case c.QueryInt("buyer_id") > 0:
		records, total, err = h.payoutService.ListByBuyer(c.Context(), uint(c.QueryInt("buyer_id")), p.Limit, p.Offset)
	case c.Query("from") != "" && c.Query("to") != "":
		var start, end time.Time
		start, err = time.Parse(time.RFC3339, c.Query("from"))
		if err != nil {
			return utils.BadRequest(c, "Invalid 'from' timestamp")
		}
		end, err = time.Parse(time.RFC3339, c.Query("to"))
		if err != nil {
			return utils.BadRequest(c, "Invalid 'to' timestamp")
		}
		records, total, err = h.payoutService.ListByDateRange(c.Context(), start, end, p.Limit, p.Offset)
	default:
		return utils.BadRequest(c, "Provide status, seller_id, buyer_id or a from/to range")
	}

	if err != nil {
		if errors.Is(err, payout.ErrInvalidStatus) {
			return utils.BadRequest(c, "Unknown payout status")
		}
		return utils.InternalError(c, "Failed to list payouts")
	}

	p.Total = total
	return utils.Success(c, pagination.Response(p, records))
}

func (h *PayoutHandler) GetPayoutStats(c *fiber.Ctx) error {
	sellerID := uint(c.QueryInt("seller_id"))

	stats, err := h.payoutService.Stats(c.Context(), sellerID)
	if err != nil {
		return utils.InternalError(c, "Failed to get payout stats")
	}

	return utils.Success(c, fiber.Map{"stats": stats})
}

// GetMyPayouts lists the authenticated seller's payouts.
func (h *PayoutHandler) GetMyPayouts(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	p := pagination.ParseFromRequest(c)
	records, total, err := h.payoutService.ListBySeller(c.Context(), claims.UserID, p.Limit, p.Offset)
	if err != nil {
		return utils.InternalError(c, "Failed to list payouts")
	}

	p.Total = total
	return utils.Success(c, pagination.Response(p, records))
}

// GetMyStats returns the authenticated seller's payout statistics.
func (h *PayoutHandler) GetMyStats(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	stats, err := h.payoutService.Stats(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to get payout stats")
	}

	return utils.Success(c, fiber.Map{"stats": stats})
}
