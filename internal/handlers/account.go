package handlers

import (
	"sportwearxpress/internal/services/account"
	"sportwearxpress/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AccountHandler struct {
	accountService account.Service
}

func NewAccountHandler(accountService account.Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

func (h *AccountHandler) RegisterSeller(c *fiber.Ctx) error {
	var input account.RegisterSellerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}

	seller, err := h.accountService.RegisterSeller(c.Context(), input)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	return utils.Created(c, fiber.Map{
		"message": "Seller registered",
		"seller": fiber.Map{
			"id":        seller.ID,
			"email":     seller.Email,
			"shop_name": seller.ShopName,
		},
	})
}
