package router

import (
	"context"
	"time"

	"cargo-logbook-backend/middleware"
	"cargo-logbook-backend/token"
	"cargo-logbook-backend/users/controllers"
	"cargo-logbook-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

func InitRoutes(
	app *fiber.App,
	userRepo repositories.UserRepository,
	ctx context.Context,
	redisClient *redis.Client,
	tokenMaker token.Maker,
) {
	authController := &controllers.AuthController{
		UserRepo:    userRepo,
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	appContext := &middleware.AppContext{
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Public routes (no authentication required)
	publicRoutes := app.Group("/api/v1")
	{
		credentialLimit := middleware.AuthRateLimit(rate.Every(2*time.Second), 5) // one try every 2s, burst of 5
		publicRoutes.Post("/auth/register", credentialLimit, authController.RegisterUser)
		publicRoutes.Post("/auth/login", credentialLimit, authController.LoginUser)
	}

	// Protected routes (require authentication)
	protectedRoutes := app.Group("/api/v1")
	protectedRoutes.Use(middleware.ProtectedRoute(appContext))
	{
		protectedRoutes.Get("/auth/me", authController.CurrentUser)
		protectedRoutes.Post("/auth/logout", authController.LogoutUser)
	}
}
