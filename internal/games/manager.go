package games

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/fourway/internal/config"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/othello"
	"github.com/lk16/fourway/internal/repository"
	"github.com/lk16/fourway/internal/services"
)

var ErrInvalidRequest = errors.New("invalid request")

// Manager runs games stored in Redis for the HTTP and websocket handlers.
// Every operation leaves the game either over or waiting for the human.
type Manager struct {
	services *services.Services
	games    *repository.GameRepository
	archive  *repository.ArchiveRepository
	defaults othello.Settings
}

// NewManager creates a new Manager.
func NewManager(services *services.Services, cfg *config.ServerConfig) (*Manager, error) {
	defaults, err := othello.SettingsFromConfig(&cfg.Play)
	if err != nil {
		return nil, fmt.Errorf("invalid play settings: %w", err)
	}

	return &Manager{
		services: services,
		games:    repository.NewGameRepositoryFromServices(services),
		archive:  repository.NewArchiveRepositoryFromServices(services),
		defaults: defaults,
	}, nil
}

// NewManagerFromCtx creates a new Manager from the services and config in the fiber context.
func NewManagerFromCtx(c *fiber.Ctx) (*Manager, error) {
	services := c.Locals("services").(*services.Services) //nolint: errcheck
	cfg := c.Locals("config").(*config.ServerConfig)       //nolint: errcheck

	return NewManager(services, cfg)
}

// Create starts a new game. If the computer moves first, it plays before Create returns.
func (m *Manager) Create(ctx context.Context, req models.NewGameRequest) (models.GameResponse, error) {
	settings, err := othello.SettingsFromRequest(req, m.defaults)
	if err != nil {
		return models.GameResponse{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	game, err := othello.NewGame(settings)
	if err != nil {
		return models.GameResponse{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	played, err := game.Advance()
	if err != nil {
		return models.GameResponse{}, fmt.Errorf("computer failed to move: %w", err)
	}

	id, err := m.games.Create(ctx, game)
	if err != nil {
		return models.GameResponse{}, err
	}

	logComputerMoves(id, game, played)

	slog.Info("Created game", "id", id, "human_color", settings.HumanColor, "depth", settings.Depth)

	return game.Response(id, played), nil
}

// Get returns a game.
func (m *Manager) Get(ctx context.Context, id string) (models.GameResponse, error) {
	game, err := m.games.Load(ctx, id)
	if err != nil {
		return models.GameResponse{}, err
	}

	return game.Response(id, nil), nil
}

// Move plays a human move in field notation, then lets the computer reply.
// A pass notation is accepted when the human has no legal move.
func (m *Manager) Move(ctx context.Context, id, field string) (models.GameResponse, error) {
	move, err := othello.ParseMove(field)
	if err != nil {
		return models.GameResponse{}, err
	}

	return m.update(ctx, id, func(game *othello.Game) error {
		if move == othello.PassMove {
			return passHuman(game)
		}
		return game.PlayHuman(models.SquareFromIndex(move))
	})
}

// Pass skips the turn of the human, which is only allowed without legal moves.
func (m *Manager) Pass(ctx context.Context, id string) (models.GameResponse, error) {
	return m.update(ctx, id, passHuman)
}

// Delete removes a game. It waits for no update: a game that is being updated gives ErrGameBusy.
func (m *Manager) Delete(ctx context.Context, id string) error {
	unlock, err := m.games.Lock(ctx, id)
	if err != nil {
		return err
	}
	defer unlock()

	return m.games.Delete(ctx, id)
}

// Stats returns the number of finished games per outcome.
func (m *Manager) Stats(ctx context.Context) (models.StatsResponse, error) {
	return m.games.GetStats(ctx)
}

// Archive returns recently finished games.
func (m *Manager) Archive(ctx context.Context, limit int) ([]models.ArchivedGame, error) {
	return m.archive.ListRecent(ctx, limit)
}

func logComputerMoves(id string, game *othello.Game, played []int) {
	if len(played) == 0 {
		return
	}

	stats := game.SearchStats()
	slog.Debug("Computer moved", "id", id, "moves", len(played), "nodes", stats.Nodes, "cutoffs", stats.Cutoffs)
}

func passHuman(game *othello.Game) error {
	if game.IsOver() {
		return models.ErrGameOver
	}

	if game.IsComputerTurn() {
		return othello.ErrNotYourTurn
	}

	return game.Pass()
}

// update applies a human action to a stored game, lets the computer reply and saves the result.
func (m *Manager) update(ctx context.Context, id string, action func(*othello.Game) error) (models.GameResponse, error) {
	unlock, err := m.games.Lock(ctx, id)
	if err != nil {
		return models.GameResponse{}, err
	}
	defer unlock()

	game, err := m.games.Load(ctx, id)
	if err != nil {
		return models.GameResponse{}, err
	}

	if err = action(game); err != nil {
		return models.GameResponse{}, err
	}

	played, err := game.Advance()
	if err != nil {
		return models.GameResponse{}, fmt.Errorf("computer failed to move: %w", err)
	}

	if err = m.games.Save(ctx, id, game); err != nil {
		return models.GameResponse{}, err
	}

	logComputerMoves(id, game, played)

	if game.IsOver() {
		m.finish(ctx, id, game)
	}

	return game.Response(id, played), nil
}

// finish counts and archives a game that just ended. Failures are logged, the game itself is already saved.
func (m *Manager) finish(ctx context.Context, id string, game *othello.Game) {
	slog.Info("Game over", "id", id, "winner", game.Winner(), "result", game.Result())

	if err := m.games.RecordResult(ctx, game.Winner()); err != nil {
		slog.Error("Failed to record result", "id", id, "error", err)
	}

	if !m.services.HasArchive() {
		return
	}

	if err := m.archive.Store(ctx, id, game); err != nil {
		slog.Error("Failed to archive game", "id", id, "error", err)
	}
}
