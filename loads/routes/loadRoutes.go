package router

import (
	"cargo-logbook-backend/loads/controllers"
	"cargo-logbook-backend/loads/repositories"
	"cargo-logbook-backend/middleware"
	"cargo-logbook-backend/websocket"

	"github.com/gofiber/fiber/v2"
)

func LoadRouterInit(
	app *fiber.App,
	loadRepo repositories.LoadRepository,
	appContext *middleware.AppContext,
	wsHub *websocket.Hub,
) {
	loadController := &controllers.LoadController{
		LoadRepo: loadRepo,
		Hub:      wsHub,
	}

	protectedRoutes := app.Group("/api/v1")
	protectedRoutes.Use(middleware.ProtectedRoute(appContext))
	{
		loadRoutes := protectedRoutes.Group("/loads")
		{
			// Specific routes first
			loadRoutes.Get("/cards", loadController.GetLoadCards)
			loadRoutes.Get("/report", loadController.ExportReport)
			loadRoutes.Get("/report.pdf", loadController.ExportReportPDF)
			loadRoutes.Get("/export.xlsx", loadController.ExportExcel)

			// General routes
			loadRoutes.Get("/", loadController.GetLoads)
			loadRoutes.Post("/", loadController.CreateLoad)

			// ID-based routes
			loadRoutes.Get("/:id", loadController.GetLoadByID)
			loadRoutes.Put("/:id", loadController.UpdateLoad)
			loadRoutes.Delete("/:id", loadController.DeleteLoad)
		}
	}
}
