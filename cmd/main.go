package main

import (
	"context"

	config "cargo-logbook-backend/config"
	"cargo-logbook-backend/middleware"
	"cargo-logbook-backend/token"
	"cargo-logbook-backend/utils"

	// Repositories
	loads_repositories "cargo-logbook-backend/loads/repositories"
	users_repositories "cargo-logbook-backend/users/repositories"

	// Routes
	load_routes "cargo-logbook-backend/loads/routes"
	user_routes "cargo-logbook-backend/users/routes"

	// WebSocket
	"cargo-logbook-backend/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	err := godotenv.Load(".env")
	if err != nil {
		config.Logger.Fatal("Error loading .env file", zap.Error(err))
	}

	app := fiber.New()

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	// Initialize database and configs
	db := config.ConfigureDatabase()
	port := config.GetEnv("PORT")
	ctx := context.Background()

	redisClient := config.InitRedisServer(ctx)

	tokenKey := config.GetEnv("TOKEN_SYMMETRIC_KEY")
	tokenMaker, err := token.NewPasetoMaker(tokenKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	// ------ WebSocket hub so open dashboard tabs reload after mutations ------
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Serve generated reports
	app.Static("/public", "./public")

	// Repositories
	userRepo := users_repositories.NewUserRepository(db)
	loadRepo := loads_repositories.NewLoadRepository(db)

	appContext := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Routes
	user_routes.InitRoutes(app, userRepo, ctx, redisClient, tokenMaker)
	load_routes.LoadRouterInit(app, loadRepo, appContext, wsHub)

	// WebSocket route with token validation
	wsHandler := websocket.NewWsHandler(wsHub, tokenMaker)
	app.Get("/ws", wsHandler.HandleWebSocket)
	config.Logger.Info("WebSocket endpoint registered at /ws")

	// Background cleanup of generated report files
	utils.RunScheduledCleanup()

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
