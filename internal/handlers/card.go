package handlers

import (
	"errors"

	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"
	"sportwearxpress/internal/services/destination"
	"sportwearxpress/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CardHandler struct {
	destinationService destination.Service
}

func NewCardHandler(destinationService destination.Service) *CardHandler {
	return &CardHandler{
		destinationService: destinationService,
	}
}

func (h *CardHandler) LinkCard(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input models.LinkCardInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	card, err := h.destinationService.LinkCard(c.Context(), claims.UserID, input)
	if err != nil {
		if errors.Is(err, destination.ErrInvalidCard) {
			return utils.BadRequest(c, "Invalid card details")
		}
		return utils.InternalError(c, "Failed to link card")
	}

	return utils.Created(c, fiber.Map{
		"message": "Card linked",
		"card":    card,
	})
}

func (h *CardHandler) GetCards(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	cards, err := h.destinationService.GetSellerCards(c.Context(), claims.UserID)
	if err != nil {
		return utils.InternalError(c, "Failed to get cards")
	}

	return utils.Success(c, fiber.Map{"cards": cards})
}

func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	claims, err := extractUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	cardID, err := c.ParamsInt("cardId")
	if err != nil || cardID <= 0 {
		return utils.BadRequest(c, "Invalid card id")
	}

	if err := h.destinationService.DeleteCard(c.Context(), claims.UserID, uint(cardID)); err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return utils.NotFound(c, "Card not found")
		}
		if errors.Is(err, destination.ErrNotCardOwner) {
			return utils.Forbidden(c, "Not your card")
		}
		return utils.InternalError(c, "Failed to delete card")
	}

	return utils.Success(c, fiber.Map{"message": "Card deleted"})
}
