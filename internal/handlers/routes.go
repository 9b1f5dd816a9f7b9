package handlers

import (
	"custodia/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers the HTTP surface. Registration is open; everything
// else requires the API key header.
func SetupRoutes(
	app *fiber.App,
	users *UserHandler,
	wallets *WalletHandler,
	transactions *TransactionHandler,
	stats *StatisticsHandler,
) {
	app.Post("/users", users.Register)

	authed := app.Group("", middleware.RequireAPIKey)
	authed.Post("/wallets", wallets.Create)
	authed.Get("/wallets/:address", wallets.Get)
	authed.Get("/wallets/:address/transactions", transactions.ListByWallet)
	authed.Post("/transactions", transactions.Create)
	authed.Get("/transactions", transactions.ListByUser)
	authed.Get("/statistics", stats.Get)
}
