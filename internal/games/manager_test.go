package games_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lk16/fourway/internal/games"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/repository"
	"github.com/lk16/fourway/internal/tests"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *games.Manager {
	t.Helper()

	services, _ := tests.NewTestServices(t)
	manager, err := games.NewManager(services, tests.TestConfig())
	require.NoError(t, err)

	return manager
}

func TestNewManagerInvalidConfig(t *testing.T) {
	services, _ := tests.NewTestServices(t)
	cfg := tests.TestConfig()
	cfg.Play.Algorithm = "mcts"

	_, err := games.NewManager(services, cfg)
	require.Error(t, err)
}

func TestManager_Create(t *testing.T) {
	manager := newManager(t)
	ctx := context.Background()

	game, err := manager.Create(ctx, models.NewGameRequest{HumanColor: "white"})
	require.NoError(t, err)
	require.Equal(t, []string{"d3"}, game.ComputerMoves)
	require.Equal(t, models.White, game.Turn)
	require.Positive(t, game.SearchNodes)

	fetched, err := manager.Get(ctx, game.ID)
	require.NoError(t, err)
	require.Zero(t, fetched.SearchNodes)

	_, err = manager.Create(ctx, models.NewGameRequest{Depth: -1})
	require.ErrorIs(t, err, games.ErrInvalidRequest)
}

func TestManager_DeleteWhileLocked(t *testing.T) {
	services, mr := tests.NewTestServices(t)
	manager, err := games.NewManager(services, tests.TestConfig())
	require.NoError(t, err)
	ctx := context.Background()

	created, err := manager.Create(ctx, models.NewGameRequest{})
	require.NoError(t, err)

	require.NoError(t, mr.Set("game:"+created.ID+":lock", "other-request"))
	require.ErrorIs(t, manager.Delete(ctx, created.ID), repository.ErrGameBusy)
	require.True(t, mr.Exists("game:"+created.ID))

	mr.Del("game:" + created.ID + ":lock")
	require.NoError(t, manager.Delete(ctx, created.ID))
	require.False(t, mr.Exists("game:"+created.ID))
	require.False(t, mr.Exists("game:"+created.ID+":lock"))

	require.ErrorIs(t, manager.Delete(ctx, created.ID), repository.ErrGameNotFound)
}

func TestManager_MoveAndPass(t *testing.T) {
	manager := newManager(t)
	ctx := context.Background()

	created, err := manager.Create(ctx, models.NewGameRequest{})
	require.NoError(t, err)

	_, err = manager.Pass(ctx, created.ID)
	require.ErrorIs(t, err, models.ErrMustMove)

	_, err = manager.Move(ctx, created.ID, "--")
	require.ErrorIs(t, err, models.ErrMustMove)

	_, err = manager.Move(ctx, created.ID, "h8")
	require.ErrorIs(t, err, models.ErrInvalidMove)

	game, err := manager.Move(ctx, created.ID, "d3")
	require.NoError(t, err)
	require.Len(t, game.Moves, 2)

	_, err = manager.Move(ctx, "00000000-0000-0000-0000-000000000000", "d3")
	require.ErrorIs(t, err, repository.ErrGameNotFound)
}

func TestManager_FinishedGameIsArchived(t *testing.T) {
	services, _ := tests.NewTestServices(t)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	services.Postgres = sqlx.NewDb(db, "postgres")
	t.Cleanup(func() {
		_ = services.Postgres.Close()
	})

	manager, err := games.NewManager(services, tests.TestConfig())
	require.NoError(t, err)
	ctx := context.Background()

	game, err := manager.Create(ctx, models.NewGameRequest{})
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO games").WillReturnResult(sqlmock.NewResult(0, 1))

	for !game.Over {
		game, err = manager.Move(ctx, game.ID, game.LegalMoves[0].String())
		require.NoError(t, err)
	}

	require.NoError(t, mock.ExpectationsWereMet())

	stats, err := manager.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.Total)

	mock.ExpectQuery("FROM games").WithArgs(5).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	archived, err := manager.Archive(ctx, 5)
	require.NoError(t, err)
	require.Empty(t, archived)
}
