package controllers

import (
	"cargo-logbook-backend/config"
	"cargo-logbook-backend/db/models"
	"cargo-logbook-backend/loads/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateLoad validates and records a new cargo load for the authenticated
// owner. Validation happens before any store call; a missing required
// field never reaches the database.
func (lc *LoadController) CreateLoad(c *fiber.Ctx) error {
	payload := owner(c)

	var load models.Load
	if err := c.BodyParser(&load); err != nil {
		config.Logger.Error("Error parsing load request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"data":    nil,
			"error":   "Formato de requisição inválido.",
		})
	}

	if validationError := services.ValidateLoad(&load); validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"data":    nil,
			"error":   validationError,
		})
	}

	load.OwnerID = payload.UserID

	createdLoad, err := lc.LoadRepo.CreateLoad(&load)
	if err != nil {
		config.Logger.Error("Failed to create load in database",
			zap.String("user_id", payload.UserID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Write rejected",
			"data":    nil,
			"error":   "Erro ao salvar a carga.",
		})
	}

	lc.Hub.NotifyLoadsChanged(payload.UserID)

	config.Logger.Info("Load created",
		zap.String("user_id", payload.UserID.String()),
		zap.String("load_id", createdLoad.ID.String()),
		zap.String("load_number", createdLoad.LoadNumber),
	)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Load created successfully",
		"data":    createdLoad,
		"error":   nil,
	})
}
