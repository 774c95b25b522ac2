package models

import (
	"fmt"
)

// NoParent is the parent index of a state that does not belong to a game history.
const NoParent = -1

// Outcome is the result of a game.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	OutcomeBlack
	OutcomeWhite
	OutcomeDraw
)

func (o Outcome) String() string {
	switch o {
	case OutcomeBlack:
		return "black"
	case OutcomeWhite:
		return "white"
	case OutcomeDraw:
		return "draw"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Outcome) UnmarshalText(text []byte) error {
	for _, outcome := range []Outcome{OutcomeNone, OutcomeBlack, OutcomeWhite, OutcomeDraw} {
		if outcome.String() == string(text) {
			*o = outcome
			return nil
		}
	}
	return fmt.Errorf("unknown outcome: %q", text)
}

func outcomeFor(color Color) Outcome {
	if color == White {
		return OutcomeWhite
	}
	return OutcomeBlack
}

// State is a node in the game tree: a board and the color to move.
// States are never mutated after creation.
type State struct {
	board Board
	turn  Color

	// parent is the index of the preceding state in a game history, or NoParent
	parent int
}

// NewState returns the starting position with black to move.
func NewState() State {
	return NewStateFromBoard(NewBoardStart(), Black)
}

// NewStateFromBoard creates a root state for a board and a color to move.
func NewStateFromBoard(board Board, turn Color) State {
	return State{
		board:  board,
		turn:   turn,
		parent: NoParent,
	}
}

// NewStateFromString parses the output of State.String.
func NewStateFromString(s string) (State, error) {
	if len(s) != 34 {
		return State{}, fmt.Errorf("state string must be 34 characters long, got %d", len(s))
	}

	board, err := NewBoardFromString(s[:32])
	if err != nil {
		return State{}, err
	}

	var turn Color
	switch s[32:34] {
	case "-w":
		turn = White
	case "-b":
		turn = Black
	default:
		return State{}, fmt.Errorf("invalid turn: %s", s[32:34])
	}

	return NewStateFromBoard(board, turn), nil
}

// Board returns the board.
func (s State) Board() Board {
	return s.board
}

// Turn returns the color to move.
func (s State) Turn() Color {
	return s.turn
}

// Parent returns the history index of the preceding state, if any.
func (s State) Parent() (int, bool) {
	return s.parent, s.parent != NoParent
}

// WithParent returns a copy of the state linked to the given history index.
func (s State) WithParent(parent int) State {
	s.parent = parent
	return s
}

// LegalMoves returns the legal moves of the color to move in row-major order.
func (s State) LegalMoves() []Square {
	return s.board.LegalMoves(s.turn)
}

// IsLegalMove checks if the color to move can play sq.
func (s State) IsLegalMove(sq Square) bool {
	return s.board.IsLegalMove(sq, s.turn)
}

// HasMoves checks if the color to move has any legal move.
func (s State) HasMoves() bool {
	return s.board.HasMoves(s.turn)
}

// IsTerminal checks if neither color has a legal move.
func (s State) IsTerminal() bool {
	return !s.board.HasMoves(s.turn) && !s.board.HasMoves(s.turn.Opponent())
}

// Heuristic returns the material balance from the perspective of the color to move.
func (s State) Heuristic() int {
	return s.board.Heuristic(s.turn)
}

// Play applies sq for the color to move without checking legality.
func (s State) Play(sq Square) State {
	return State{
		board:  s.board.ApplyMove(sq, s.turn),
		turn:   s.turn.Opponent(),
		parent: NoParent,
	}
}

// Pass hands the turn to the opponent without changing the board.
func (s State) Pass() State {
	return State{
		board:  s.board,
		turn:   s.turn.Opponent(),
		parent: NoParent,
	}
}

// Children returns one child per legal move, in row-major move order.
func (s State) Children() []State {
	moves := s.LegalMoves()
	children := make([]State, len(moves))
	for i, move := range moves {
		children[i] = s.Play(move)
	}
	return children
}

// Winner returns the outcome of a terminal state and OutcomeNone otherwise.
// A positive heuristic favors the color to move at the terminal state.
func (s State) Winner() Outcome {
	if !s.IsTerminal() {
		return OutcomeNone
	}

	heuristic := s.Heuristic()
	switch {
	case heuristic > 0:
		return outcomeFor(s.turn)
	case heuristic < 0:
		return outcomeFor(s.turn.Opponent())
	default:
		return OutcomeDraw
	}
}

// Equal checks if two states have the same board and color to move.
func (s State) Equal(other State) bool {
	return s.board == other.board && s.turn == other.turn
}

// String returns the board string followed by "-b" or "-w".
func (s State) String() string {
	turnString := "-b"
	if s.turn == White {
		turnString = "-w"
	}

	return s.board.String() + turnString
}

// SubmitMove validates and applies a move of the color to move.
func SubmitMove(state State, row, col int) (State, error) {
	sq, err := NewSquare(row, col)
	if err != nil {
		return state, err
	}

	if !state.HasMoves() {
		return state, fmt.Errorf("%w for %s", ErrNoLegalMove, state.turn)
	}

	if !state.IsLegalMove(sq) {
		return state, fmt.Errorf("%w: %s for %s", ErrInvalidMove, sq, state.turn)
	}

	return state.Play(sq), nil
}
