package middleware //nolint:testpackage

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestLogging(t *testing.T) {
	var output bytes.Buffer

	app := fiber.New()
	app.Use(loggingTo(&output))
	app.Get("/api/archive", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "game archive is disabled")
	})
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req, err := http.NewRequest(http.MethodGet, "/api/archive?limit=5", nil)
	require.NoError(t, err)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	req, err = http.NewRequest(http.MethodGet, "/version", nil)
	require.NoError(t, err)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	require.Len(t, lines, 2)

	require.Contains(t, lines[0], "| 404 |")
	require.Contains(t, lines[0], "| GET | /api/archive?limit=5 | game archive is disabled")
	require.Regexp(t, `\|\s+\d+\.\dms \|`, lines[0])

	require.Contains(t, lines[1], "| 200 |")
	require.Contains(t, lines[1], "| GET | /version |")
}
