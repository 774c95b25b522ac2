package models

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

// directions holds the axis-aligned unit steps. Diagonals never flip in this variant.
var directions = [4]Square{
	{Row: 0, Col: 1},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: -1, Col: 0},
}

// Board is an 8x8 Othello board. It is a value type: moves return a new board.
type Board struct {
	black uint64 // Bitboard for black discs, bit index is row*8+col
	white uint64 // Bitboard for white discs
}

// NewBoard creates a board from a black and white bitboard.
func NewBoard(black, white uint64) (Board, error) {
	if black&white != 0 {
		return Board{}, errors.New("invalid board: black and white discs cannot overlap")
	}

	return Board{
		black: black,
		white: white,
	}, nil
}

// NewBoardMust creates a board from a black and white bitboard
// and panics if the board is invalid
func NewBoardMust(black, white uint64) Board {
	b, err := NewBoard(black, white)
	if err != nil {
		panic(err)
	}
	return b
}

// NewBoardStart creates a board with the starting position.
func NewBoardStart() Board {
	return NewBoardMust(0x0000000810000000, 0x0000001008000000)
}

// NewBoardEmpty creates a board without discs.
func NewBoardEmpty() Board {
	return Board{}
}

// NewBoardFromRows creates a board from 8 rows of 8 characters.
// 'B' or 'X' is a black disc, 'W' or 'O' is a white disc, anything else is empty.
func NewBoardFromRows(rows [BoardSize]string) (Board, error) {
	var board Board

	for row, line := range rows {
		if len(line) != BoardSize {
			return Board{}, fmt.Errorf("row %d must be %d characters long, got %d", row, BoardSize, len(line))
		}

		for col := range BoardSize {
			sq := Square{Row: row, Col: col}
			switch line[col] {
			case 'B', 'X':
				board.black |= sq.bit()
			case 'W', 'O':
				board.white |= sq.bit()
			}
		}
	}

	return board, nil
}

// NewBoardFromString parses the output of Board.String.
func NewBoardFromString(s string) (Board, error) {
	if len(s) != 32 {
		return Board{}, fmt.Errorf("board string must be 32 characters long, got %d", len(s))
	}

	black, err := strconv.ParseUint(s[:16], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid black bitboard: %w", err)
	}

	white, err := strconv.ParseUint(s[16:], 16, 64)
	if err != nil {
		return Board{}, fmt.Errorf("invalid white bitboard: %w", err)
	}

	return NewBoard(black, white)
}

func (b Board) discs(color Color) uint64 {
	if color == White {
		return b.white
	}
	return b.black
}

// Get returns the cell at the given square. Squares off the board are Empty.
func (b Board) Get(sq Square) Cell {
	if !sq.IsValid() {
		return Empty
	}

	mask := sq.bit()
	switch {
	case b.black&mask != 0:
		return BlackDisc
	case b.white&mask != 0:
		return WhiteDisc
	default:
		return Empty
	}
}

// Count returns the number of discs of the given color.
func (b Board) Count(color Color) int {
	return bits.OnesCount64(b.discs(color))
}

// CountEmpty returns the number of empty squares.
func (b Board) CountEmpty() int {
	return NumSquares - bits.OnesCount64(b.black|b.white)
}

// capturedRun returns the squares of the opponent run that starts next to sq in direction dir,
// provided that run is closed by a disc of color. Otherwise it returns 0.
func (b Board) capturedRun(sq, dir Square, color Color) uint64 {
	own := b.discs(color)
	opp := b.discs(color.Opponent())

	run := uint64(0)
	cur := sq.add(dir)

	for cur.IsValid() && opp&cur.bit() != 0 {
		run |= cur.bit()
		cur = cur.add(dir)
	}

	if cur.IsValid() && own&cur.bit() != 0 {
		return run
	}

	return 0
}

// IsLegalMove checks if color can place a disc on sq.
func (b Board) IsLegalMove(sq Square, color Color) bool {
	if !sq.IsValid() || (b.black|b.white)&sq.bit() != 0 {
		return false
	}

	for _, dir := range directions {
		if b.capturedRun(sq, dir, color) != 0 {
			return true
		}
	}

	return false
}

// LegalMoves returns the legal moves of color in row-major order.
func (b Board) LegalMoves(color Color) []Square {
	moves := make([]Square, 0, 16)

	for index := range NumSquares {
		sq := SquareFromIndex(index)
		if b.IsLegalMove(sq, color) {
			moves = append(moves, sq)
		}
	}

	return moves
}

// Moves returns a bitset with all legal moves of color.
func (b Board) Moves(color Color) uint64 {
	moves := uint64(0)
	for _, sq := range b.LegalMoves(color) {
		moves |= sq.bit()
	}
	return moves
}

// HasMoves checks if color has any legal move.
func (b Board) HasMoves(color Color) bool {
	for index := range NumSquares {
		if b.IsLegalMove(SquareFromIndex(index), color) {
			return true
		}
	}
	return false
}

// ApplyMove places a disc of color on sq and flips all captured runs.
// Legality is not checked. Squares off the board leave the board unchanged.
func (b Board) ApplyMove(sq Square, color Color) Board {
	if !sq.IsValid() {
		return b
	}

	flipped := sq.bit()
	for _, dir := range directions {
		flipped |= b.capturedRun(sq, dir, color)
	}

	if color == White {
		b.white |= flipped
		b.black &^= flipped
	} else {
		b.black |= flipped
		b.white &^= flipped
	}

	return b
}

// Heuristic returns the disc count of color minus the disc count of its opponent.
func (b Board) Heuristic(color Color) int {
	return b.Count(color) - b.Count(color.Opponent())
}

// ASCIIArtLines returns the ascii art lines for the board. Legal moves of color are marked with a dot.
func (b Board) ASCIIArtLines(color Color) []string {
	moves := b.Moves(color)
	lines := make([]string, BoardSize+2)

	lines[0] = "+-a-b-c-d-e-f-g-h-+"
	for row := range BoardSize {
		line := fmt.Sprintf("%d ", row+1)

		for col := range BoardSize {
			mask := Square{Row: row, Col: col}.bit()

			switch {
			case b.white&mask != 0:
				line += "○ "
			case b.black&mask != 0:
				line += "● "
			case moves&mask != 0:
				line += "· "
			default:
				line += "  "
			}
		}

		lines[row+1] = line + "|"
	}

	lines[BoardSize+1] = "+-----------------+"

	return lines
}

// Rows returns the board in the format accepted by NewBoardFromRows, using 'B', 'W' and '.'.
func (b Board) Rows() [BoardSize]string {
	var rows [BoardSize]string

	for row := range BoardSize {
		line := make([]byte, BoardSize)
		for col := range BoardSize {
			switch b.Get(Square{Row: row, Col: col}) {
			case BlackDisc:
				line[col] = 'B'
			case WhiteDisc:
				line[col] = 'W'
			default:
				line[col] = '.'
			}
		}
		rows[row] = string(line)
	}

	return rows
}

// String returns the black and white bitboards as 32 hex digits.
func (b Board) String() string {
	return fmt.Sprintf("%016x%016x", b.black, b.white)
}
