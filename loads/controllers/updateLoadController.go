package controllers

import (
	"errors"

	"cargo-logbook-backend/config"
	"cargo-logbook-backend/db/models"
	"cargo-logbook-backend/loads/repositories"
	"cargo-logbook-backend/loads/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UpdateLoad replaces the editable fields of the load named by the URL id.
// The creation timestamp is preserved; only the update timestamp moves.
func (lc *LoadController) UpdateLoad(c *fiber.Ctx) error {
	payload := owner(c)
	id := c.Params("id")

	var fields models.Load
	if err := c.BodyParser(&fields); err != nil {
		config.Logger.Error("Error parsing load request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"data":    nil,
			"error":   "Formato de requisição inválido.",
		})
	}

	if validationError := services.ValidateLoad(&fields); validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation error",
			"data":    nil,
			"error":   validationError,
		})
	}

	updatedLoad, err := lc.LoadRepo.UpdateLoad(payload.UserID, id, &fields)
	if errors.Is(err, repositories.ErrLoadNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Load not found",
			"data":    nil,
			"error":   "Carga não encontrada.",
		})
	}
	if err != nil {
		config.Logger.Error("Failed to update load in database",
			zap.String("user_id", payload.UserID.String()),
			zap.String("load_id", id),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Write rejected",
			"data":    nil,
			"error":   "Erro ao salvar a carga.",
		})
	}

	lc.Hub.NotifyLoadsChanged(payload.UserID)

	return c.JSON(fiber.Map{
		"message": "Load updated successfully",
		"data":    updatedLoad,
		"error":   nil,
	})
}
