package othello

import (
	"errors"
	"fmt"

	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/search"
)

const (
	// PassMove marks a side-skip in the move list.
	PassMove = -1

	DefaultDepth = 3
)

var ErrNotYourTurn = errors.New("it is not the human's turn")

// Settings are chosen before the game starts.
type Settings struct {
	HumanColor models.Color     `json:"human_color"`
	Depth      int              `json:"depth"`
	Algorithm  search.Algorithm `json:"algorithm"`
}

// DefaultSettings lets the human play black against a depth 3 search.
func DefaultSettings() Settings {
	return Settings{
		HumanColor: models.Black,
		Depth:      DefaultDepth,
		Algorithm:  search.Classic,
	}
}

// ComputerColor returns the color played by the computer.
func (s Settings) ComputerColor() models.Color {
	return s.HumanColor.Opponent()
}

// Game is a human versus computer game, either complete or in progress.
type Game struct {
	settings Settings

	// searcher picks the computer moves
	searcher *search.Searcher

	// history holds every state of the game, the first one being the start state.
	// Each state links to the index of the previous one.
	history []models.State

	// moves holds the square index of every move, or PassMove for a side-skip.
	moves []int
}

// NewGameWithStart creates a new game with a custom start state.
func NewGameWithStart(settings Settings, start models.State) (*Game, error) {
	searcher, err := search.New(search.Config{
		Algorithm: settings.Algorithm,
		Depth:     settings.Depth,
	})
	if err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return &Game{
		settings: settings,
		searcher: searcher,
		history:  []models.State{start.WithParent(models.NoParent)},
		moves:    make([]int, 0),
	}, nil
}

// NewGame creates a new game from the starting position.
func NewGame(settings Settings) (*Game, error) {
	return NewGameWithStart(settings, models.NewState())
}

// NewGameFromMoves creates a new game and replays moves, which may contain PassMove.
func NewGameFromMoves(settings Settings, moves []int) (*Game, error) {
	return NewGameFromMovesWithStart(settings, models.NewState(), moves)
}

// NewGameFromMovesWithStart is NewGameFromMoves for a custom start state.
func NewGameFromMovesWithStart(settings Settings, start models.State, moves []int) (*Game, error) {
	game, err := NewGameWithStart(settings, start)
	if err != nil {
		return nil, err
	}

	for _, move := range moves {
		if err = game.PushMove(move); err != nil {
			return nil, fmt.Errorf("failed to push move: %w", err)
		}
	}

	return game, nil
}

// Settings returns the game settings.
func (g *Game) Settings() Settings {
	return g.settings
}

// Start returns the first state of the game.
func (g *Game) Start() models.State {
	return g.history[0]
}

// Current returns the last state of the game.
func (g *Game) Current() models.State {
	return g.history[len(g.history)-1]
}

// History returns a copy of all states of the game.
func (g *Game) History() []models.State {
	history := make([]models.State, len(g.history))
	copy(history, g.history)
	return history
}

// Moves returns a copy of the move list.
func (g *Game) Moves() []int {
	moves := make([]int, len(g.moves))
	copy(moves, g.moves)
	return moves
}

// SearchStats returns the counters of the last computer search.
func (g *Game) SearchStats() search.Stats {
	return g.searcher.Stats()
}

func (g *Game) push(state models.State, move int) {
	g.history = append(g.history, state.WithParent(len(g.history)-1))
	g.moves = append(g.moves, move)
}

// PushMove plays a move for whoever is to move. PassMove is only accepted when
// the color to move has no legal move and the game is not over.
func (g *Game) PushMove(move int) error {
	current := g.Current()

	if current.IsTerminal() {
		return models.ErrGameOver
	}

	if move == PassMove {
		if current.HasMoves() {
			return fmt.Errorf("%w for %s", models.ErrMustMove, current.Turn())
		}
		g.push(current.Pass(), PassMove)
		return nil
	}

	if move < 0 || move >= models.NumSquares {
		return fmt.Errorf("%w: index %d", models.ErrInvalidMove, move)
	}

	sq := models.SquareFromIndex(move)
	next, err := models.SubmitMove(current, sq.Row, sq.Col)
	if err != nil {
		return err
	}

	g.push(next, move)
	return nil
}

// PopMove undoes the last move.
func (g *Game) PopMove() {
	if len(g.moves) == 0 {
		return
	}

	g.history = g.history[:len(g.history)-1]
	g.moves = g.moves[:len(g.moves)-1]
}

// Undo pops moves until it is the human's turn with a legal move, or the game is back at the start.
func (g *Game) Undo() {
	g.PopMove()

	for len(g.moves) > 0 {
		current := g.Current()
		if current.Turn() == g.settings.HumanColor && current.HasMoves() {
			return
		}
		g.PopMove()
	}
}

// IsComputerTurn checks if the computer is to move.
func (g *Game) IsComputerTurn() bool {
	return g.Current().Turn() == g.settings.ComputerColor()
}

// IsOver checks if neither color can move.
func (g *Game) IsOver() bool {
	return g.Current().IsTerminal()
}

// Winner returns the outcome of the game, OutcomeNone while it is in progress.
func (g *Game) Winner() models.Outcome {
	return g.Current().Winner()
}

// PlayHuman plays a move for the human.
func (g *Game) PlayHuman(sq models.Square) error {
	if g.IsOver() {
		return models.ErrGameOver
	}

	if g.IsComputerTurn() {
		return ErrNotYourTurn
	}

	if !sq.IsValid() {
		return fmt.Errorf("%w: %s is off the board", models.ErrInvalidMove, sq)
	}

	return g.PushMove(sq.Index())
}

// PlayComputer searches and plays a move for the color to move.
func (g *Game) PlayComputer() (models.Square, error) {
	current := g.Current()

	if current.IsTerminal() {
		return models.Square{}, models.ErrGameOver
	}

	move, ok := g.searcher.BestMove(current)
	if !ok {
		return models.Square{}, fmt.Errorf("%w for %s", models.ErrNoLegalMove, current.Turn())
	}

	if err := g.PushMove(move.Index()); err != nil {
		return models.Square{}, err
	}

	return move, nil
}

// Pass skips the turn of the color to move.
func (g *Game) Pass() error {
	return g.PushMove(PassMove)
}

// Advance plays side-skips and computer moves until the human has a legal move or the game is over.
// It returns the moves it played, including PassMove entries.
func (g *Game) Advance() ([]int, error) {
	played := make([]int, 0)

	for !g.IsOver() {
		current := g.Current()

		if !current.HasMoves() {
			if err := g.Pass(); err != nil {
				return played, err
			}
			played = append(played, PassMove)
			continue
		}

		if !g.IsComputerTurn() {
			break
		}

		move, err := g.PlayComputer()
		if err != nil {
			return played, err
		}
		played = append(played, move.Index())
	}

	return played, nil
}

// MoveString returns the field notation of a move, "--" for a pass.
func MoveString(move int) string {
	if move == PassMove {
		return "--"
	}
	return models.SquareFromIndex(move).String()
}

// ParseMove converts a field notation to a move index.
// PassMove is returned if the field is "--", "ps" or "pa".
func ParseMove(field string) (int, error) {
	switch field {
	case "--", "ps", "pa", "PS", "PA":
		return PassMove, nil
	}

	sq, err := models.ParseSquare(field)
	if err != nil {
		return 0, err
	}
	return sq.Index(), nil
}
