package internal

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/fourway/internal/config"
	"github.com/lk16/fourway/internal/middleware"
	"github.com/lk16/fourway/internal/repository"
	"github.com/lk16/fourway/internal/routes"
	"github.com/lk16/fourway/internal/services"
)

const (
	defaultConcurrency  = 256 * 1024 // Maximum number of concurrent connections per worker
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 5 * time.Second
	defaultBodyLimit    = 64 * 1024
	schemaTimeout       = 10 * time.Second
)

func SetupApp() (*fiber.App, *config.ServerConfig) {
	// Load configuration
	cfg := config.LoadServerConfig()

	// Initialize services
	services, err := services.InitServices(cfg)
	if err != nil {
		slog.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	// Create the archive table
	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()

	err = repository.NewArchiveRepositoryFromServices(services).EnsureSchema(ctx)
	if err != nil && !errors.Is(err, repository.ErrArchiveDisabled) {
		slog.Error("Failed to create archive schema", "error", err)
		os.Exit(1)
	}

	return BuildApp(cfg, services), cfg
}

// BuildApp creates the Fiber app for already initialized services.
func BuildApp(cfg *config.ServerConfig, services *services.Services) *fiber.App {
	// Create Fiber app
	app := fiber.New(fiber.Config{
		Prefork:      cfg.Prefork,
		Concurrency:  defaultConcurrency,
		ReadTimeout:  defaultReadTimeout,
		WriteTimeout: defaultWriteTimeout,
		IdleTimeout:  defaultIdleTimeout,
		BodyLimit:    defaultBodyLimit,
	})

	// Setup connections to external services and config in Fiber app
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("services", services)
		c.Locals("config", cfg)
		return c.Next()
	})

	// Add logging middleware
	app.Use(middleware.Logging())

	// Setup all routes
	routes.SetupRoutes(app)

	return app
}
