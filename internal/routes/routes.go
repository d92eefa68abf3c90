// Package routes defines the API routing configuration.
// It sets up all HTTP routes and their corresponding handlers,
// including middleware and authentication requirements.
package routes

import (
	"sportwearxpress/internal/handlers"
	"sportwearxpress/internal/middleware"
	"sportwearxpress/internal/models"
	"sportwearxpress/internal/repositories"
	"sportwearxpress/internal/services/account"
	"sportwearxpress/internal/services/auth"
	"sportwearxpress/internal/services/destination"
	"sportwearxpress/internal/services/ledger"
	"sportwearxpress/internal/services/payout"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
// It groups routes by functionality and applies appropriate middleware.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Initialize repositories
	payoutRepo := repositories.NewPayoutRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	ledgerRepo := repositories.NewLedgerRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	cardRepo := repositories.NewCardRepository(db)

	// Initialize services in correct order
	authService := auth.NewService(accountRepo)
	accountService := account.NewService(accountRepo, ledgerRepo)
	ledgerService := ledger.NewService(ledgerRepo)
	payoutService := payout.NewService(
		payoutRepo,
		orderRepo,
		ledgerService,
		repositories.CacheService,
		payout.Config{},
		&payout.NoopMetricsCollector{},
	)
	destinationService := destination.NewService(cardRepo, nil)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	accountHandler := handlers.NewAccountHandler(accountService)
	payoutHandler := handlers.NewPayoutHandler(payoutService)
	sellerHandler := handlers.NewSellerHandler(ledgerService)
	adminHandler := handlers.NewAdminHandler(ledgerService)
	cardHandler := handlers.NewCardHandler(destinationService)

	// Public routes
	api := app.Group("/api")

	api.Post("/login", authHandler.Login)
	api.Post("/register", accountHandler.RegisterSeller)
	api.Post("/refresh", authHandler.RefreshToken)

	app.Get("/health", handlers.HealthCheck)

	// Also add a root welcome route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "SportWearXpress Payout API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	// Create middleware instance
	authMiddleware := middleware.NewAuthMiddleware(authService)

	// Protected routes with auth middleware
	protected := api.Use(authMiddleware.Handler)

	setupSellerRoutes(protected, payoutHandler, sellerHandler, cardHandler, authHandler)
	setupAdminRoutes(app, authMiddleware, payoutHandler, adminHandler)
}

func setupSellerRoutes(router fiber.Router, payoutHandler *handlers.PayoutHandler, sellerHandler *handlers.SellerHandler, cardHandler *handlers.CardHandler, authHandler *handlers.AuthHandler) {
	// Balance and payout history
	router.Get("/balance", middleware.HasPermission(models.PermissionSellerRead), sellerHandler.GetBalance)
	router.Get("/payout-history", middleware.HasPermission(models.PermissionSellerRead), sellerHandler.GetPayoutHistory)

	// Own payouts
	payouts := router.Group("/payouts", middleware.HasPermission(models.PermissionPayoutRead))
	payouts.Get("/", payoutHandler.GetMyPayouts)
	payouts.Get("/stats", payoutHandler.GetMyStats)
	payouts.Get("/:payoutId", payoutHandler.GetPayout)
	payouts.Get("/:payoutId/timeline", payoutHandler.GetPayoutTimeline)

	// Withdrawal cards
	router.Post("/cards", middleware.HasPermission(models.PermissionCardWrite), cardHandler.LinkCard)
	router.Get("/cards", middleware.HasPermission(models.PermissionSellerRead), cardHandler.GetCards)
	router.Delete("/cards/:cardId", middleware.HasPermission(models.PermissionCardWrite), cardHandler.DeleteCard)

	// Session management
	router.Post("/change-password", middleware.HasPermission(models.PermissionChangePassword), authHandler.ChangePassword)
	router.Post("/logout", authHandler.Logout)
}

func setupAdminRoutes(app *fiber.App, authMiddleware *middleware.AuthMiddleware, payoutHandler *handlers.PayoutHandler, adminHandler *handlers.AdminHandler) {
	admin := app.Group("/api/admin", authMiddleware.Handler, middleware.AdminAuthMiddleware)

	// Payout lifecycle
	payouts := admin.Group("/payouts")
	payouts.Post("/", middleware.HasPermission(models.PermissionPayoutWrite), payoutHandler.CreatePayout)
	payouts.Get("/", middleware.HasPermission(models.PermissionPayoutRead), payoutHandler.ListPayouts)
	payouts.Get("/stats", middleware.HasPermission(models.PermissionPayoutRead), payoutHandler.GetPayoutStats)
	payouts.Get("/:payoutId", middleware.HasPermission(models.PermissionPayoutRead), payoutHandler.GetPayout)
	payouts.Get("/:payoutId/timeline", middleware.HasPermission(models.PermissionPayoutRead), payoutHandler.GetPayoutTimeline)
	payouts.Put("/:payoutId/status", middleware.HasPermission(models.PermissionPayoutWrite), payoutHandler.UpdatePayoutStatus)
	payouts.Post("/:payoutId/retry-credit", middleware.HasPermission(models.PermissionLedgerCredit), payoutHandler.RetryCredit)
	payouts.Post("/:payoutId/payment-info", middleware.HasPermission(models.PermissionPayoutWrite), payoutHandler.RefreshPaymentInfo)

	// Commission ledger
	admin.Get("/commission-balance", middleware.HasPermission(models.PermissionLedgerRead), adminHandler.GetCommissionBalance)
	admin.Get("/commission-history", middleware.HasPermission(models.PermissionLedgerRead), adminHandler.GetCommissionHistory)
}
