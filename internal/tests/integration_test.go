//go:build integration

package tests_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/lk16/fourway/internal"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/repository"
	"github.com/lk16/fourway/internal/services"
	"github.com/lk16/fourway/internal/tests"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type TestContainers struct {
	Postgres testcontainers.Container
	Redis    testcontainers.Container
}

func (tc *TestContainers) Start(ctx context.Context) error {
	// Start PostgreSQL container
	postgresReq := testcontainers.ContainerRequest{
		Image:        "postgres:16",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "pg-test-user",
			"POSTGRES_PASSWORD": "pg-test-password",
			"POSTGRES_DB":       "pg-test-db",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}

	var err error
	tc.Postgres, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: postgresReq,
		Started:          true,
	})
	if err != nil {
		return err
	}

	// Start Redis container
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	tc.Redis, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: redisReq,
		Started:          true,
	})
	if err != nil {
		return err
	}

	return nil
}

func (tc *TestContainers) Stop(ctx context.Context) error {
	if tc.Postgres != nil {
		if err := tc.Postgres.Terminate(ctx); err != nil {
			return err
		}
	}
	if tc.Redis != nil {
		if err := tc.Redis.Terminate(ctx); err != nil {
			return err
		}
	}
	return nil
}

func TestFinishedGameIsArchived(t *testing.T) {
	ctx := context.Background()
	containers := &TestContainers{}

	t.Cleanup(func() {
		require.NoError(t, containers.Stop(ctx))
	})
	require.NoError(t, containers.Start(ctx))

	postgresAddr, err := containers.Postgres.PortEndpoint(ctx, "5432/tcp", "")
	require.NoError(t, err)

	redisAddr, err := containers.Redis.PortEndpoint(ctx, "6379/tcp", "")
	require.NoError(t, err)

	cfg := tests.TestConfig()
	cfg.RedisURL = "redis://" + redisAddr
	cfg.PostgresURL = "postgres://pg-test-user:pg-test-password@" + postgresAddr + "/pg-test-db?sslmode=disable"

	svc, err := services.InitServices(cfg)
	require.NoError(t, err)
	require.True(t, svc.HasArchive())

	require.NoError(t, repository.NewArchiveRepositoryFromServices(svc).EnsureSchema(ctx))

	app := internal.BuildApp(cfg, svc)

	resp := tests.Do(t, app, http.MethodPost, "/api/games", nil, tests.TestToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var game models.GameResponse
	tests.Decode(t, resp, &game)

	for !game.Over {
		resp = tests.Do(t, app, http.MethodPost, "/api/games/"+game.ID+"/moves",
			models.MoveRequest{Move: game.LegalMoves[0].String()}, tests.TestToken)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		tests.Decode(t, resp, &game)
	}

	resp = tests.Do(t, app, http.MethodGet, "/api/archive?limit=5", nil, tests.TestToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var archived []models.ArchivedGame
	tests.Decode(t, resp, &archived)
	require.Len(t, archived, 1)
	require.Equal(t, game.ID, archived[0].ID)
	require.Equal(t, game.BlackCount, archived[0].BlackCount)
	require.Len(t, archived[0].Moves, len(game.Moves))
}
