package ws

import (
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/fourway/internal/games"
	"github.com/lk16/fourway/internal/middleware"
	"github.com/lk16/fourway/internal/ws"
)

func handleWs(c *websocket.Conn) {
	manager := c.Locals("manager").(*games.Manager) //nolint: errcheck

	h := ws.NewHandler(c, manager)
	err := h.Handle()
	if err != nil {
		slog.Error("ws handle error", "error", err)
	}
}

// upgrade rejects non-websocket requests and prepares the game manager for the connection.
func upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	manager, err := games.NewManagerFromCtx(c)
	if err != nil {
		return err
	}

	c.Locals("manager", manager)
	return c.Next()
}

// SetupRoutes sets up the routes for the websocket.
func SetupRoutes(app *fiber.App) {
	app.Get("/ws", middleware.AuthOrToken(), upgrade, websocket.New(handleWs))
}
