package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// ParseLogLevel converts DEBUG, INFO, WARN or ERROR, in any case, into a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
}

// SetLogLevel installs a text logger on stderr. The level comes from FOURWAY_LOG_LEVEL,
// or LOG_LEVEL when that is not set. Search statistics and API client requests are logged at DEBUG.
func SetLogLevel() {
	envLevel := getEnvDefault("FOURWAY_LOG_LEVEL", os.Getenv("LOG_LEVEL"))

	level := slog.LevelInfo
	if envLevel != "" {
		var err error
		level, err = ParseLogLevel(envLevel)
		if err != nil {
			slog.Error("Invalid log level", "level", envLevel)
			os.Exit(1)
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
