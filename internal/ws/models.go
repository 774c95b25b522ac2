package ws

import (
	"encoding/json"

	"github.com/lk16/fourway/internal/models"
)

type Incoming struct {
	Event string          `json:"event"`
	ID    int             `json:"id"`
	Data  json.RawMessage `json:"data"`
}

type Outgoing struct {
	ID    int    `json:"id"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// NewGameRequest is the data of a new_game event.
type NewGameRequest = models.NewGameRequest

// GameRequest is the data of a get_game or pass event.
type GameRequest struct {
	GameID string `json:"game_id"`
}

// MoveRequest is the data of a move event.
type MoveRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}
