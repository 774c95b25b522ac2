package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/fourway/internal/games"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/othello"
	"github.com/lk16/fourway/internal/repository"
)

// StatusCode maps errors of the game manager to HTTP status codes.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, repository.ErrGameNotFound), errors.Is(err, repository.ErrArchiveDisabled):
		return fiber.StatusNotFound
	case errors.Is(err, games.ErrInvalidRequest),
		errors.Is(err, models.ErrInvalidMove),
		errors.Is(err, models.ErrNoLegalMove):
		return fiber.StatusBadRequest
	case errors.Is(err, models.ErrMustMove),
		errors.Is(err, models.ErrGameOver),
		errors.Is(err, othello.ErrNotYourTurn),
		errors.Is(err, repository.ErrGameBusy):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status := StatusCode(err)
	if status == fiber.StatusInternalServerError {
		slog.Error("Request failed", "path", c.Path(), "error", err)
	}

	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
