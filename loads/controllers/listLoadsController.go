package controllers

import (
	"cargo-logbook-backend/config"
	"cargo-logbook-backend/db/models"
	"cargo-logbook-backend/loads/repositories"
	"cargo-logbook-backend/loads/services"
	"cargo-logbook-backend/token"
	"cargo-logbook-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LoadController struct {
	LoadRepo repositories.LoadRepository
	Hub      *websocket.Hub
}

// owner extracts the authenticated owner from the request context.
func owner(c *fiber.Ctx) *token.Payload {
	payload, _ := c.Locals("user").(*token.Payload)
	return payload
}

// filteredLoads loads the owner's full list and applies the display
// filters in memory, the same path for listing, summaries and exports.
func (lc *LoadController) filteredLoads(c *fiber.Ctx) ([]models.Load, error) {
	payload := owner(c)

	loads, err := lc.LoadRepo.ListByOwner(payload.UserID)
	if err != nil {
		return nil, err
	}

	return services.FilterLoads(loads, c.Query("data"), c.Query("busca")), nil
}

// GetLoads answers the dashboard list: the filtered records plus the
// summary counters. A store failure degrades to an empty list with an
// inline message rather than an error status, so the dashboard still
// renders.
func (lc *LoadController) GetLoads(c *fiber.Ctx) error {
	filtered, err := lc.filteredLoads(c)
	if err != nil {
		config.Logger.Error("Failed to load cargo list",
			zap.String("user_id", owner(c).UserID.String()),
			zap.Error(err),
		)
		return c.JSON(fiber.Map{
			"message": "Store unavailable",
			"data": fiber.Map{
				"cargas": []models.Load{},
				"resumo": services.LoadSummary{},
			},
			"error": "Erro ao carregar cargas.",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Loads retrieved",
		"data": fiber.Map{
			"cargas": filtered,
			"resumo": services.Summarize(filtered),
		},
		"error": nil,
	})
}

// GetLoadByID answers a single record, used to populate the edit form.
func (lc *LoadController) GetLoadByID(c *fiber.Ctx) error {
	payload := owner(c)

	load, err := lc.LoadRepo.GetLoadByID(payload.UserID, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Load not found",
			"data":    nil,
			"error":   "Carga não encontrada.",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Load retrieved",
		"data":    load,
		"error":   nil,
	})
}
