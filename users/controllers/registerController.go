package controllers

import (
	"context"
	"time"

	"cargo-logbook-backend/config"
	"cargo-logbook-backend/db/models"
	"cargo-logbook-backend/middleware"
	"cargo-logbook-backend/token"
	"cargo-logbook-backend/users/repositories"
	"cargo-logbook-backend/users/services"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type AuthController struct {
	UserRepo    repositories.UserRepository
	PasetoMaker token.Maker
	Ctx         context.Context
	RedisClient *redis.Client
}

// RegisterUser creates the operator account and its one-time profile row,
// then signs the new user straight in, mirroring the sign-up redirect of
// the dashboard.
func (ac *AuthController) RegisterUser(c *fiber.Ctx) error {
	type RegisterRequest struct {
		Name            string `json:"nome"`
		Email           string `json:"email"`
		Password        string `json:"senha"`
		ConfirmPassword string `json:"confirmar"`
	}

	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		config.Logger.Error("Error parsing register request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request",
			"data":    nil,
			"error":   "Formato de requisição inválido.",
		})
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if validationError := services.ValidateUser(&user); validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"data":    nil,
			"error":   validationError,
		})
	}

	if req.ConfirmPassword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"data":    nil,
			"error":   "Preencha todos os campos.",
		})
	}

	if req.Password != req.ConfirmPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"data":    nil,
			"error":   "As senhas não coincidem.",
		})
	}

	if validationError := services.ValidatePassword(req.Password); validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"data":    nil,
			"error":   validationError,
		})
	}

	if validationError := services.ValidateEmail(req.Email, ac.UserRepo); validationError != "" {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Validation error",
			"data":    nil,
			"error":   validationError,
		})
	}

	createdUser, err := ac.UserRepo.CreateUser(&user)
	if err != nil {
		config.Logger.Error("Failed to create user in database", zap.Error(err), zap.String("email", req.Email))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Registration failed",
			"data":    nil,
			"error":   "Erro ao criar conta.",
		})
	}

	if err := ac.issueSession(c, createdUser); err != nil {
		// Account exists; the user can still sign in manually.
		config.Logger.Error("Failed to start session after registration", zap.Error(err))
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Account created, please log in",
			"data":    createdUser,
			"error":   nil,
		})
	}

	config.Logger.Info("User registered", zap.String("email", createdUser.Email))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account created successfully",
		"data":    createdUser,
		"error":   nil,
	})
}

// issueSession creates the access/refresh pair, stores the refresh token in
// Redis and sets both cookies.
func (ac *AuthController) issueSession(c *fiber.Ctx, user *models.User) error {
	accessToken, err := ac.PasetoMaker.CreateToken(user.ID, user.Email, 15*time.Minute)
	if err != nil {
		return err
	}

	refreshToken, err := ac.PasetoMaker.CreateToken(user.ID, user.Email, 7*24*time.Hour)
	if err != nil {
		return err
	}

	err = ac.RedisClient.Set(ac.Ctx, "refresh_token:"+refreshToken, user.ID.String(), 7*24*time.Hour).Err()
	if err != nil {
		return err
	}

	middleware.SetAuthCookies(c, accessToken, refreshToken)
	return nil
}
