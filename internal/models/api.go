package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// MaxRequestDepth limits the search depth of games created through the API.
const MaxRequestDepth = 6

// NewGameRequest represents the payload for creating a game.
// Empty fields fall back to the server defaults.
type NewGameRequest struct {
	HumanColor string `json:"human_color"`
	Depth      int    `json:"depth"`
	Algorithm  string `json:"algorithm"`
}

// Validate validates the new game request.
func (r *NewGameRequest) Validate() error {
	if r.Depth < 0 || r.Depth > MaxRequestDepth {
		return fmt.Errorf("depth must be between 1 and %d", MaxRequestDepth)
	}

	if r.HumanColor != "" {
		if _, err := ParseColor(r.HumanColor); err != nil {
			return err
		}
	}

	return nil
}

// MoveRequest represents the payload for playing a move.
type MoveRequest struct {
	Move string `json:"move"`
}

// Validate validates the move request.
func (r *MoveRequest) Validate() error {
	if r.Move == "" {
		return errors.New("move is empty")
	}
	return nil
}

// GameResponse represents a game as returned by the API.
type GameResponse struct {
	ID            string            `json:"id"`
	HumanColor    Color             `json:"human_color"`
	Depth         int               `json:"depth"`
	Algorithm     string            `json:"algorithm"`
	State         string            `json:"state"`
	Rows          [BoardSize]string `json:"rows"`
	ASCIIArt      []string          `json:"ascii_art"`
	Turn          Color             `json:"turn"`
	LegalMoves    []Square          `json:"legal_moves"`
	Moves         []string          `json:"moves"`
	ComputerMoves []string          `json:"computer_moves"`
	BlackCount    int               `json:"black_count"`
	WhiteCount    int               `json:"white_count"`
	Over          bool              `json:"over"`
	Winner        Outcome           `json:"winner"`
	Result        string            `json:"result"`

	// SearchNodes is the number of nodes visited by the last search of this request, 0 if there was none.
	SearchNodes int `json:"search_nodes"`
}

// StatsResponse represents the number of finished games per outcome.
type StatsResponse struct {
	BlackWins int `json:"black_wins"`
	WhiteWins int `json:"white_wins"`
	Draws     int `json:"draws"`
	Total     int `json:"total"`
}

// ArchivedGame represents a finished game stored in the archive.
type ArchivedGame struct {
	ID         string    `json:"id"          db:"id"`
	HumanColor string    `json:"human_color" db:"human_color"`
	Depth      int       `json:"depth"       db:"depth"`
	Algorithm  string    `json:"algorithm"   db:"algorithm"`
	Moves      MoveList  `json:"moves"       db:"moves"`
	BlackCount int       `json:"black_count" db:"black_count"`
	WhiteCount int       `json:"white_count" db:"white_count"`
	Winner     string    `json:"winner"      db:"winner"`
	FinishedAt time.Time `json:"finished_at" db:"finished_at"`
}

// MoveList is a slice of square indexes that implements sql.Scanner.
// Passes are stored as -1.
type MoveList []int

// Scan implements the sql.Scanner interface for MoveList.
// Postgres sends arrays as text like "{19,-1,20}", which pq.Int64Array parses.
func (m *MoveList) Scan(value interface{}) error {
	if value == nil {
		return errors.New("cannot scan nil into MoveList")
	}

	if bytes, ok := value.([]byte); ok && bytes == nil {
		return errors.New("cannot scan nil into MoveList")
	}

	var parsed pq.Int64Array
	if err := parsed.Scan(value); err != nil {
		return fmt.Errorf("cannot scan into MoveList: %w", err)
	}

	moves := make(MoveList, len(parsed))
	for i, move := range parsed {
		moves[i] = int(move)
	}
	*m = moves

	return nil
}

type VersionResponse struct {
	Commit string `json:"commit"`
}
