package handlers

import (
	"sportwearxpress/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports database and cache connectivity.
func HealthCheck(c *fiber.Ctx) error {
	status := fiber.Map{
		"status":   "ok",
		"database": "connected",
		"cache":    "connected",
	}
	code := fiber.StatusOK

	sqlDB, err := repositories.DB.DB()
	if err != nil || sqlDB.PingContext(c.Context()) != nil {
		status["database"] = "unreachable"
		status["status"] = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	if repositories.CacheService == nil || repositories.CacheService.HealthCheck(c.Context()) != nil {
		status["cache"] = "unreachable"
		status["status"] = "degraded"
		code = fiber.StatusServiceUnavailable
	}

	return c.Status(code).JSON(status)
}
