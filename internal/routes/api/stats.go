package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/fourway/internal/games"
)

const (
	defaultArchiveLimit = 20
	maxArchiveLimit     = 100
)

// GetStats returns the number of finished games per outcome.
func GetStats(c *fiber.Ctx) error {
	manager, err := games.NewManagerFromCtx(c)
	if err != nil {
		return errorResponse(c, err)
	}

	stats, err := manager.Stats(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

// GetArchive returns recently finished games.
func GetArchive(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", defaultArchiveLimit)
	if limit < 1 || limit > maxArchiveLimit {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "limit must be between 1 and 100",
		})
	}

	manager, err := games.NewManagerFromCtx(c)
	if err != nil {
		return errorResponse(c, err)
	}

	archived, err := manager.Archive(c.Context(), limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(archived)
}
