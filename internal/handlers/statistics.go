package handlers

import (
	"custodia/internal/middleware"
	"custodia/internal/services/statistics"
	"custodia/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// StatisticsHandler exposes the admin-only platform counters.
type StatisticsHandler struct {
	service statistics.Service
}

func NewStatisticsHandler(s statistics.Service) *StatisticsHandler {
	return &StatisticsHandler{service: s}
}

// Get handles GET /statistics requests.
func (h *StatisticsHandler) Get(c *fiber.Ctx) error {
	apiKey := middleware.APIKey(c)

	count, err := h.service.GetTotalTransactions(c.Context(), apiKey)
	if err != nil {
		return serviceError(c, err)
	}
	profit, err := h.service.GetPlatformProfit(c.Context(), apiKey)
	if err != nil {
		return serviceError(c, err)
	}

	return response.Success(c, "statistics fetched", fiber.Map{
		"transactions":    count,
		"platform_profit": profit,
	})
}
