package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/fourway/internal/games"
	"github.com/lk16/fourway/internal/models"
)

// CreateGame handles new game requests. An empty body uses the server defaults.
func CreateGame(c *fiber.Ctx) error {
	var payload models.NewGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body",
			})
		}
	}

	manager, err := games.NewManagerFromCtx(c)
	if err != nil {
		return errorResponse(c, err)
	}

	game, err := manager.Create(c.Context(), payload)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(game)
}

// GetGame returns a game.
func GetGame(c *fiber.Ctx) error {
	manager, err := games.NewManagerFromCtx(c)
	if err != nil {
		return errorResponse(c, err)
	}

	game, err := manager.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// PlayMove plays a human move and the computer reply.
func PlayMove(c *fiber.Ctx) error {
	var payload models.MoveRequest
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	manager, err := games.NewManagerFromCtx(c)
	if err != nil {
		return errorResponse(c, err)
	}

	game, err := manager.Move(c.Context(), c.Params("id"), payload.Move)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// Pass skips the human's turn when there is no legal move.
func Pass(c *fiber.Ctx) error {
	manager, err := games.NewManagerFromCtx(c)
	if err != nil {
		return errorResponse(c, err)
	}

	game, err := manager.Pass(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(game)
}

// DeleteGame removes a game.
func DeleteGame(c *fiber.Ctx) error {
	manager, err := games.NewManagerFromCtx(c)
	if err != nil {
		return errorResponse(c, err)
	}

	if err = manager.Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
