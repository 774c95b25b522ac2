package services

import (
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/fourway/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services.
type Services struct {
	Postgres *sqlx.DB // nil when archiving is disabled
	Redis    *redis.Client
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	// Initialize Redis
	redis, err := InitRedis(cfg.RedisURL)
	if err != nil {
		return nil, err
	}

	if cfg.PostgresURL == "" {
		slog.Info("Postgres URL is not set, finished games will not be archived")
		return &Services{Redis: redis}, nil
	}

	// Initialize database
	postgres, err := InitPostgres(cfg.PostgresURL)
	if err != nil {
		return nil, err
	}

	return &Services{
		Postgres: postgres,
		Redis:    redis,
	}, nil
}

// HasArchive checks if finished games can be archived.
func (s *Services) HasArchive() bool {
	return s.Postgres != nil
}
