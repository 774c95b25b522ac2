package config

import (
	"log/slog"
	"os"
	"strconv"
)

const (
	DefaultSearchDepth = 3
	DefaultHumanColor  = "black"
	DefaultAlgorithm   = "classic"
)

// ServerConfig holds all configuration values loaded from environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string // optional, archiving is disabled when empty
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
	Play              PlayConfig
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("FOURWAY_SERVER_HOST"),
		ServerPort:        getEnvMust("FOURWAY_SERVER_PORT"),
		RedisURL:          getEnvMust("FOURWAY_REDIS_URL"),
		PostgresURL:       os.Getenv("FOURWAY_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("FOURWAY_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("FOURWAY_BASIC_AUTH_PASS"),
		Token:             getEnvMust("FOURWAY_TOKEN"),
		Prefork:           getEnvMustBool("FOURWAY_PREFORK"),
		Play:              *LoadPlayConfig(),
	}
}

// PlayConfig holds the default game settings of the CLI tools and the server.
type PlayConfig struct {
	SearchDepth int
	HumanColor  string
	Algorithm   string
}

// LoadPlayConfig loads play settings from environment variables, falling back to defaults.
func LoadPlayConfig() *PlayConfig {
	return &PlayConfig{
		SearchDepth: getEnvInt("FOURWAY_SEARCH_DEPTH", DefaultSearchDepth),
		HumanColor:  getEnvDefault("FOURWAY_HUMAN_COLOR", DefaultHumanColor),
		Algorithm:   getEnvDefault("FOURWAY_SEARCH_ALGORITHM", DefaultAlgorithm),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

func getEnvDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be an integer", "key", key, "value", value)
		os.Exit(1)
	}

	return parsed
}

// ClientConfig holds the details needed to reach a running server.
type ClientConfig struct {
	ServerURL string
	Token     string
}

// LoadClientConfig loads client configuration from environment variables.
func LoadClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerURL: getEnvMust("FOURWAY_SERVER_URL"),
		Token:     getEnvMust("FOURWAY_TOKEN"),
	}
}
