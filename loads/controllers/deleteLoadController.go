package controllers

import (
	"errors"
	"fmt"

	"cargo-logbook-backend/config"
	"cargo-logbook-backend/loads/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeleteLoad removes a load after an explicit confirmation: the request
// must repeat the load number (the confirm dialog on the dashboard names
// the number and the formatted date). Deleting an id that is already gone
// answers success, so a double click never surfaces an error.
func (lc *LoadController) DeleteLoad(c *fiber.Ctx) error {
	payload := owner(c)
	id := c.Params("id")

	load, err := lc.LoadRepo.GetLoadByID(payload.UserID, id)
	if errors.Is(err, repositories.ErrLoadNotFound) {
		return c.JSON(fiber.Map{
			"message": "Load already deleted",
			"data":    nil,
			"error":   nil,
		})
	}
	if err != nil {
		config.Logger.Error("Failed to fetch load before delete",
			zap.String("user_id", payload.UserID.String()),
			zap.String("load_id", id),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"data":    nil,
			"error":   "Erro ao excluir a carga.",
		})
	}

	type DeleteRequest struct {
		Confirm string `json:"confirmar"`
	}
	var req DeleteRequest
	_ = c.BodyParser(&req)
	if req.Confirm == "" {
		req.Confirm = c.Query("confirmar")
	}

	if req.Confirm != load.LoadNumber {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Confirmation required",
			"data":    nil,
			"error": fmt.Sprintf(
				"Para excluir a carga %s do dia %s, envie o número da carga no campo 'confirmar'.",
				load.LoadNumber, load.Date.FormatBR(),
			),
		})
	}

	err = lc.LoadRepo.DeleteLoad(payload.UserID, id)
	if err != nil && !errors.Is(err, repositories.ErrLoadNotFound) {
		config.Logger.Error("Failed to delete load",
			zap.String("user_id", payload.UserID.String()),
			zap.String("load_id", id),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Write rejected",
			"data":    nil,
			"error":   "Erro ao excluir a carga.",
		})
	}

	lc.Hub.NotifyLoadsChanged(payload.UserID)

	config.Logger.Info("Load deleted",
		zap.String("user_id", payload.UserID.String()),
		zap.String("load_id", id),
		zap.String("load_number", load.LoadNumber),
	)

	return c.JSON(fiber.Map{
		"message": "Load deleted successfully",
		"data":    nil,
		"error":   nil,
	})
}
