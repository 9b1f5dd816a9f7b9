package handlers

import (
	"errors"

	"custodia/internal/repositories"
	"custodia/internal/services/statistics"
	"custodia/internal/services/transaction"
	"custodia/internal/services/wallet"
	"custodia/internal/utils/response"
	"custodia/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps service sentinels onto HTTP statuses: authorization
// failures (including the deliberate not-found fold) are 401, client
// mistakes are 409, everything else is a 500 with a generic message.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, transaction.ErrUnauthorized),
		errors.Is(err, wallet.ErrUnauthorized),
		errors.Is(err, statistics.ErrUnauthorized),
		errors.Is(err, validation.ErrInvalidAPIKey):
		return response.Error(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, transaction.ErrInvalidAmount),
		errors.Is(err, transaction.ErrInsufficientFunds),
		errors.Is(err, validation.ErrInvalidUsername),
		errors.Is(err, validation.ErrWalletLimitReached),
		errors.Is(err, repositories.ErrDuplicateUsername):
		return response.Error(c, fiber.StatusConflict, err.Error())
	default:
		return response.ServerError(c, "internal error")
	}
}
