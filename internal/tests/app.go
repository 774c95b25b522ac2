package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/lk16/fourway/internal"
	"github.com/lk16/fourway/internal/config"
	"github.com/lk16/fourway/internal/services"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const (
	TestUser     = "test-user"
	TestPassword = "test-password"
	TestToken    = "test-token"
)

// TestConfig returns a server config with a depth 1 search so games finish quickly.
func TestConfig() *config.ServerConfig {
	return &config.ServerConfig{
		ServerHost:        "localhost",
		ServerPort:        "3000",
		BasicAuthUsername: TestUser,
		BasicAuthPassword: TestPassword,
		Token:             TestToken,
		Play: config.PlayConfig{
			SearchDepth: 1,
			HumanColor:  "black",
			Algorithm:   "classic",
		},
	}
}

// NewTestServices returns services backed by an in-memory Redis, without an archive.
func NewTestServices(t *testing.T) (*services.Services, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return &services.Services{Redis: client}, mr
}

// NewTestApp builds the app on top of NewTestServices.
func NewTestApp(t *testing.T) (*fiber.App, *miniredis.Miniredis) {
	t.Helper()

	services, mr := NewTestServices(t)
	return internal.BuildApp(TestConfig(), services), mr
}

// Do sends a request to the app. The body is JSON encoded unless it is nil.
func Do(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("x-token", token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = resp.Body.Close()
	})

	return resp
}

// Decode reads a JSON response body into target.
func Decode(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}
