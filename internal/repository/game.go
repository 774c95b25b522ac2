package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/othello"
	"github.com/lk16/fourway/internal/services"
	"github.com/redis/go-redis/v9"
)

const (
	gameKeyPrefix = "game:"
	GameTTL       = 24 * time.Hour
	gameLockTTL   = 10 * time.Second
	gameStatsKey  = "game_stats"
)

// unlockScript deletes a lock only while it still holds the token of its owner.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameBusy     = errors.New("game is being updated by another request")
)

// storedGame is the JSON representation of a game in Redis.
// The states are not stored, they are replayed from the moves.
type storedGame struct {
	Settings othello.Settings `json:"settings"`
	Moves    []int            `json:"moves"`
}

// GameRepository stores games in progress and the outcome counters in Redis.
type GameRepository struct {
	services *services.Services
}

func NewGameRepositoryFromServices(services *services.Services) *GameRepository {
	return &GameRepository{
		services: services,
	}
}

func gameKey(id string) string {
	return gameKeyPrefix + id
}

// Create stores a new game and returns its ID.
func (repo *GameRepository) Create(ctx context.Context, game *othello.Game) (string, error) {
	id := uuid.New().String()

	if err := repo.Save(ctx, id, game); err != nil {
		return "", err
	}

	return id, nil
}

// Save stores a game and resets its TTL.
func (repo *GameRepository) Save(ctx context.Context, id string, game *othello.Game) error {
	jsonData, err := json.Marshal(storedGame{
		Settings: game.Settings(),
		Moves:    game.Moves(),
	})
	if err != nil {
		return fmt.Errorf("error marshaling game: %w", err)
	}

	err = repo.services.Redis.Set(ctx, gameKey(id), jsonData, GameTTL).Err()
	if err != nil {
		return fmt.Errorf("error storing game: %w", err)
	}

	return nil
}

// Load fetches a game and replays its moves.
func (repo *GameRepository) Load(ctx context.Context, id string) (*othello.Game, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrGameNotFound
	}

	jsonData, err := repo.services.Redis.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error getting game: %w", err)
	}

	var stored storedGame
	if err = json.Unmarshal(jsonData, &stored); err != nil {
		return nil, fmt.Errorf("error unmarshaling game: %w", err)
	}

	game, err := othello.NewGameFromMoves(stored.Settings, stored.Moves)
	if err != nil {
		return nil, fmt.Errorf("error replaying game %s: %w", id, err)
	}

	return game, nil
}

// Delete removes a game.
func (repo *GameRepository) Delete(ctx context.Context, id string) error {
	deleted, err := repo.services.Redis.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return fmt.Errorf("error deleting game: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}

// Lock prevents concurrent updates of one game. The returned function releases the lock,
// unless it expired and was taken by another request in the meantime.
func (repo *GameRepository) Lock(ctx context.Context, id string) (func(), error) {
	redisConn := repo.services.Redis
	lockKey := gameKey(id) + ":lock"
	token := uuid.New().String()

	lockAcquired, err := redisConn.SetNX(ctx, lockKey, token, gameLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("error acquiring game lock: %w", err)
	}

	if !lockAcquired {
		return nil, ErrGameBusy
	}

	return func() {
		err := unlockScript.Run(context.Background(), redisConn, []string{lockKey}, token).Err()
		if err != nil {
			slog.Error("Failed to release game lock", "id", id, "error", err)
		}
	}, nil
}

// RecordResult increments the counter of a finished game's outcome.
func (repo *GameRepository) RecordResult(ctx context.Context, outcome models.Outcome) error {
	if outcome == models.OutcomeNone {
		return errors.New("cannot record the result of an unfinished game")
	}

	err := repo.services.Redis.HIncrBy(ctx, gameStatsKey, outcome.String(), 1).Err()
	if err != nil {
		return fmt.Errorf("error recording result: %w", err)
	}

	return nil
}

// GetStats returns the number of finished games per outcome.
func (repo *GameRepository) GetStats(ctx context.Context) (models.StatsResponse, error) {
	fields, err := repo.services.Redis.HGetAll(ctx, gameStatsKey).Result()
	if err != nil {
		return models.StatsResponse{}, fmt.Errorf("error getting stats: %w", err)
	}

	counts := make(map[models.Outcome]int, len(fields))
	for key, value := range fields {
		var outcome models.Outcome
		if err = outcome.UnmarshalText([]byte(key)); err != nil {
			return models.StatsResponse{}, fmt.Errorf("error parsing stats key: %w", err)
		}

		count, err := strconv.Atoi(value)
		if err != nil {
			return models.StatsResponse{}, fmt.Errorf("error parsing stats value: %w", err)
		}

		counts[outcome] = count
	}

	stats := models.StatsResponse{
		BlackWins: counts[models.OutcomeBlack],
		WhiteWins: counts[models.OutcomeWhite],
		Draws:     counts[models.OutcomeDraw],
	}
	stats.Total = stats.BlackWins + stats.WhiteWins + stats.Draws

	return stats, nil
}
