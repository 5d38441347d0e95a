package controllers

import (
	"cargo-logbook-backend/config"
	"cargo-logbook-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoginUser validates credentials and starts a cookie session.
func (ac *AuthController) LoginUser(c *fiber.Ctx) error {
	type LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"senha"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing login request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Formato de requisição inválido.",
		})
	}

	if req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"data":    nil,
			"error":   "Preencha e-mail e senha.",
		})
	}

	user, err := ac.UserRepo.GetUserByEmail(req.Email)
	if err != nil || !repositories.CheckPasswordHash(req.Password, user.Password) {
		if err != nil {
			config.Logger.Warn("Login attempt: user not found or database error",
				zap.String("email", req.Email),
				zap.Error(err),
			)
		} else {
			config.Logger.Warn("Login attempt: invalid password",
				zap.String("email", req.Email),
			)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"data":    nil,
			"error":   "E-mail ou senha inválidos.",
		})
	}

	if err := ac.issueSession(c, user); err != nil {
		config.Logger.Error("Failed to start session", zap.String("email", user.Email), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"data":    nil,
			"error":   "Não foi possível fazer login.",
		})
	}

	config.Logger.Info("User logged in", zap.String("email", user.Email))

	return c.JSON(fiber.Map{
		"message": "Logged in successfully",
		"data":    user,
		"error":   nil,
	})
}
