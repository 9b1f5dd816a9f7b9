package handlers

import (
	"custodia/internal/middleware"
	"custodia/internal/services/transaction"
	"custodia/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler exposes transfers and ledger reads.
type TransactionHandler struct {
	service transaction.Service
}

func NewTransactionHandler(s transaction.Service) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// Create handles POST /transactions requests.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var req struct {
		SourceAddress      string  `json:"source_address"`
		DestinationAddress string  `json:"destination_address"`
		Amount             float64 `json:"amount"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	err := h.service.Transfer(c.Context(), middleware.APIKey(c), req.SourceAddress, req.DestinationAddress, req.Amount)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, "transfer completed", nil)
}

// ListByWallet handles GET /wallets/:address/transactions requests.
func (h *TransactionHandler) ListByWallet(c *fiber.Ctx) error {
	entries, err := h.service.GetTransactions(c.Context(), c.Params("address"), middleware.APIKey(c))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "transactions fetched", fiber.Map{"transactions": entries})
}

// ListByUser handles GET /transactions requests.
func (h *TransactionHandler) ListByUser(c *fiber.Ctx) error {
	entries, err := h.service.GetUserTransactions(c.Context(), middleware.APIKey(c))
	if err != nil {
		return serviceError(c, err)
	}
	return response.Success(c, "transactions fetched", fiber.Map{"transactions": entries})
}
