package handlers

import (
	"custodia/internal/middleware"
	"custodia/internal/services/wallet"
	"custodia/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// WalletHandler exposes wallet creation and wallet views.
type WalletHandler struct {
	service wallet.Service
}

func NewWalletHandler(s wallet.Service) *WalletHandler { return &WalletHandler{service: s} }

// Create handles POST /wallets requests.
func (h *WalletHandler) Create(c *fiber.Ctx) error {
	view, err := h.service.CreateWallet(c.Context(), middleware.APIKey(c))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, "wallet created", view)
}

// Get handles GET /wallets/:address requests.
func (h *WalletHandler) Get(c *fiber.Ctx) error {
	view, err := h.service.GetWallet(c.Context(), middleware.APIKey(c), c.Params("address"))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "wallet fetched", view)
}
