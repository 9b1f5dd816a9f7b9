// Package middleware provides HTTP middleware for the fiber app.
package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIKeyHeader carries the bearer credential on every authenticated route.
const APIKeyHeader = "X-API-Key"

// APIKeyLocal is the fiber locals key under which the credential is stored.
const APIKeyLocal = "apiKey"

// RequireAPIKey extracts the API key header and stores it in the request
// context. It only requires presence; ownership and admin checks belong to
// the services, which deliberately fold unknown keys and unknown wallets
// into one signal.
func RequireAPIKey(c *fiber.Ctx) error {
	key := c.Get(APIKeyHeader)
	if key == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing API key"})
	}
	c.Locals(APIKeyLocal, key)
	return c.Next()
}

// APIKey returns the credential stored by RequireAPIKey.
func APIKey(c *fiber.Ctx) string {
	key, _ := c.Locals(APIKeyLocal).(string)
	return key
}
