package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/fourway/internal/middleware"
)

// SetupRoutes sets up the API routes.
func SetupRoutes(app *fiber.App) {
	apiGroup := app.Group("/api", middleware.AuthOrToken())

	// Game routes
	apiGroup.Post("/games", CreateGame)
	apiGroup.Get("/games/:id", GetGame)
	apiGroup.Post("/games/:id/moves", PlayMove)
	apiGroup.Post("/games/:id/pass", Pass)
	apiGroup.Delete("/games/:id", DeleteGame)

	// Finished game routes
	apiGroup.Get("/stats", GetStats)
	apiGroup.Get("/archive", GetArchive)
}
