package controllers

import (
	"cargo-logbook-backend/config"
	"cargo-logbook-backend/token"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CurrentUser returns the profile behind the session cookies. The dashboard
// polls this on load, the server-side analog of a session-change callback.
func (ac *AuthController) CurrentUser(c *fiber.Ctx) error {
	payload, ok := c.Locals("user").(*token.Payload)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"data":    nil,
			"error":   "Authentication required",
		})
	}

	user, err := ac.UserRepo.GetUserByID(payload.UserID.String())
	if err != nil {
		config.Logger.Error("Failed to load current user profile",
			zap.String("user_id", payload.UserID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
			"data":    nil,
			"error":   "Conta não encontrada.",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Current user",
		"data":    user,
		"error":   nil,
	})
}
