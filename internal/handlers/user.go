package handlers

import (
	"custodia/internal/services/user"
	"custodia/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler exposes user registration.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(s user.Service) *UserHandler { return &UserHandler{service: s} }

// Register handles POST /users requests.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "invalid request")
	}

	apiKey, err := h.service.Register(c.Context(), req.Username)
	if err != nil {
		return serviceError(c, err)
	}
	return response.Created(c, "user created", fiber.Map{"api_key": apiKey})
}
