package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lk16/fourway/internal/config"
	"github.com/lk16/fourway/internal/models"
)

const (
	// The server searches before it responds, so this is much longer than a plain round trip.
	clientTimeout = 30 * time.Second
)

// StatusError is returned when the server responds with a non-2xx status.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the game API of a running server.
type Client struct {
	// config contains details on how to connect to the server
	config *config.ClientConfig

	httpClient *http.Client
}

func NewClient(config *config.ClientConfig) *Client {
	slog.Debug("New API client created", "server_url", config.ServerURL)

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: clientTimeout,
		},
	}
}

func (c *Client) logRequestAsCurl(req *http.Request) {
	// Do not build string if we're not logging it
	if !slog.Default().Enabled(req.Context(), slog.LevelDebug) {
		return
	}

	var builder strings.Builder
	builder.WriteString("curl -X ")
	builder.WriteString(req.Method)
	builder.WriteString(" '")
	builder.WriteString(req.URL.String())
	builder.WriteString("'")

	for key, values := range req.Header {
		for _, value := range values {
			builder.WriteString(" -H '")
			builder.WriteString(strings.ToLower(key))
			builder.WriteString(": ")
			builder.WriteString(value)
			builder.WriteString("'")
		}
	}

	if req.Body != nil && req.Body != http.NoBody {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			slog.Error("Failed to read request body", "error", err)
		}

		if len(body) > 0 {
			builder.WriteString(" -d '")
			builder.WriteString(strings.ReplaceAll(string(body), "'", "'\\''"))
			builder.WriteString("'")
		}

		// Restore the original body
		req.Body = io.NopCloser(bytes.NewBuffer(body))
	}

	slog.Debug("Sending request", "command", builder.String())
}

func (c *Client) request(ctx context.Context, method string, path string, payload any, target any) error {
	var body io.Reader = http.NoBody

	if payload != nil {
		buf := &bytes.Buffer{}
		err := json.NewEncoder(buf).Encode(payload)
		if err != nil {
			return fmt.Errorf("failed to encode payload: %w", err)
		}
		body = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.ServerURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("X-Token", c.config.Token)

	c.logRequestAsCurl(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	slog.Debug("Response", "status", resp.Status, "body", string(respBody))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}

		var parsed struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &parsed) == nil {
			statusErr.Message = parsed.Error
		}

		return statusErr
	}

	if target == nil {
		return nil
	}

	if err = json.Unmarshal(respBody, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// NewGame starts a game. Empty request fields use the server defaults.
func (c *Client) NewGame(ctx context.Context, req models.NewGameRequest) (models.GameResponse, error) {
	var game models.GameResponse
	if err := c.request(ctx, http.MethodPost, "/api/games", req, &game); err != nil {
		return models.GameResponse{}, fmt.Errorf("failed to create game: %w", err)
	}
	return game, nil
}

func (c *Client) GetGame(ctx context.Context, id string) (models.GameResponse, error) {
	var game models.GameResponse
	if err := c.request(ctx, http.MethodGet, "/api/games/"+url.PathEscape(id), nil, &game); err != nil {
		return models.GameResponse{}, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

// Move plays a move in field notation like "d3" and returns the game after the computer replied.
func (c *Client) Move(ctx context.Context, id string, move string) (models.GameResponse, error) {
	var game models.GameResponse
	path := "/api/games/" + url.PathEscape(id) + "/moves"
	if err := c.request(ctx, http.MethodPost, path, models.MoveRequest{Move: move}, &game); err != nil {
		return models.GameResponse{}, fmt.Errorf("failed to play move: %w", err)
	}
	return game, nil
}

func (c *Client) Pass(ctx context.Context, id string) (models.GameResponse, error) {
	var game models.GameResponse
	path := "/api/games/" + url.PathEscape(id) + "/pass"
	if err := c.request(ctx, http.MethodPost, path, nil, &game); err != nil {
		return models.GameResponse{}, fmt.Errorf("failed to pass: %w", err)
	}
	return game, nil
}

func (c *Client) DeleteGame(ctx context.Context, id string) error {
	if err := c.request(ctx, http.MethodDelete, "/api/games/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}
	return nil
}

func (c *Client) Stats(ctx context.Context) (models.StatsResponse, error) {
	var stats models.StatsResponse
	if err := c.request(ctx, http.MethodGet, "/api/stats", nil, &stats); err != nil {
		return models.StatsResponse{}, fmt.Errorf("failed to get stats: %w", err)
	}
	return stats, nil
}

// Archive returns up to limit recently finished games.
func (c *Client) Archive(ctx context.Context, limit int) ([]models.ArchivedGame, error) {
	var archived []models.ArchivedGame
	path := "/api/archive?limit=" + strconv.Itoa(limit)
	if err := c.request(ctx, http.MethodGet, path, nil, &archived); err != nil {
		return nil, fmt.Errorf("failed to get archive: %w", err)
	}
	return archived, nil
}

func (c *Client) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	if err := c.request(ctx, http.MethodGet, "/version", nil, &version); err != nil {
		return models.VersionResponse{}, fmt.Errorf("failed to get version: %w", err)
	}
	return version, nil
}
