package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/othello"
	"github.com/lk16/fourway/internal/services"
)

const archiveSchema = `
	CREATE TABLE IF NOT EXISTS games (
		id UUID PRIMARY KEY,
		human_color TEXT NOT NULL,
		depth INTEGER NOT NULL,
		algorithm TEXT NOT NULL,
		moves INTEGER[] NOT NULL,
		black_count INTEGER NOT NULL,
		white_count INTEGER NOT NULL,
		winner TEXT NOT NULL,
		finished_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
`

var ErrArchiveDisabled = errors.New("game archive is disabled")

// ArchiveRepository stores finished games in Postgres.
type ArchiveRepository struct {
	services *services.Services
}

func NewArchiveRepositoryFromServices(services *services.Services) *ArchiveRepository {
	return &ArchiveRepository{
		services: services,
	}
}

// EnsureSchema creates the games table if it does not exist.
func (repo *ArchiveRepository) EnsureSchema(ctx context.Context) error {
	if !repo.services.HasArchive() {
		return ErrArchiveDisabled
	}

	if _, err := repo.services.Postgres.ExecContext(ctx, archiveSchema); err != nil {
		return fmt.Errorf("error creating games table: %w", err)
	}

	return nil
}

// Store archives a finished game. Storing the same game twice is a no-op.
func (repo *ArchiveRepository) Store(ctx context.Context, id string, game *othello.Game) error {
	if !repo.services.HasArchive() {
		return ErrArchiveDisabled
	}

	if !game.IsOver() {
		return fmt.Errorf("cannot archive unfinished game %s", id)
	}

	board := game.Current().Board()
	settings := game.Settings()

	query := `
		INSERT INTO games (id, human_color, depth, algorithm, moves, black_count, white_count, winner)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := repo.services.Postgres.ExecContext(ctx, query,
		id,
		settings.HumanColor.String(),
		settings.Depth,
		settings.Algorithm.String(),
		pq.Array(game.Moves()),
		board.Count(models.Black),
		board.Count(models.White),
		game.Winner().String(),
	)
	if err != nil {
		return fmt.Errorf("error archiving game: %w", err)
	}

	return nil
}

// ListRecent returns the most recently finished games, newest first.
func (repo *ArchiveRepository) ListRecent(ctx context.Context, limit int) ([]models.ArchivedGame, error) {
	if !repo.services.HasArchive() {
		return nil, ErrArchiveDisabled
	}

	query := `
		SELECT id, human_color, depth, algorithm, moves, black_count, white_count, winner, finished_at
		FROM games
		ORDER BY finished_at DESC
		LIMIT $1
	`

	games := make([]models.ArchivedGame, 0)
	if err := repo.services.Postgres.SelectContext(ctx, &games, query, limit); err != nil {
		return nil, fmt.Errorf("error listing archived games: %w", err)
	}

	return games, nil
}
