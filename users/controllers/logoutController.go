package controllers

import (
	"cargo-logbook-backend/config"
	"cargo-logbook-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LogoutUser revokes the refresh token and clears both session cookies.
func (ac *AuthController) LogoutUser(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken != "" {
		err := ac.RedisClient.Del(ac.Ctx, "refresh_token:"+refreshToken).Err()
		if err != nil {
			config.Logger.Error("Failed to delete refresh token from Redis during logout", zap.Error(err))
		}
	} else {
		config.Logger.Debug("No refresh token found in cookies during logout attempt")
	}

	middleware.ClearAuthCookies(c)

	config.Logger.Info("User logged out", zap.String("client_ip", c.IP()))

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
		"data":    nil,
		"error":   nil,
	})
}
