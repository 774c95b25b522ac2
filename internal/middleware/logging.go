package middleware

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Logging logs one line per request to /api, /ws and /version on stderr.
// Failed game requests also log the error returned by the handler.
func Logging() fiber.Handler {
	return loggingTo(os.Stderr)
}

func loggingTo(output io.Writer) fiber.Handler {
	return logger.New(logger.Config{
		Output:     output,
		Format:     "${time} | ${status} | ${latency} | ${method} | ${path}${query} | ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		CustomTags: map[string]logger.LogFunc{
			"latency": func(output logger.Buffer, _ *fiber.Ctx, data *logger.Data, _ string) (int, error) {
				latency := float64(data.Stop.Sub(data.Start).Nanoseconds()) / float64(time.Millisecond)
				return fmt.Fprintf(output, "%6.1fms", latency)
			},
			"query": func(output logger.Buffer, c *fiber.Ctx, _ *logger.Data, _ string) (int, error) {
				query := string(c.Request().URI().QueryString())
				if query == "" {
					return 0, nil
				}
				return output.WriteString("?" + query)
			},
		},
	})
}
