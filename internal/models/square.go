package models

import (
	"fmt"
	"strings"
)

const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize
)

// Square is a (row, col) coordinate. Row 0 is the top row, col 0 the leftmost column.
type Square struct {
	Row int
	Col int
}

// NewSquare returns the square at row, col or an error wrapping ErrInvalidMove when it is off the board.
func NewSquare(row, col int) (Square, error) {
	sq := Square{Row: row, Col: col}
	if !sq.IsValid() {
		return Square{}, fmt.Errorf("%w: (%d,%d) is off the board", ErrInvalidMove, row, col)
	}
	return sq, nil
}

// SquareFromIndex converts a 0-63 index in row-major order to a square.
func SquareFromIndex(index int) Square {
	return Square{Row: index / BoardSize, Col: index % BoardSize}
}

// IsValid checks if the square is on the board.
func (s Square) IsValid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Index returns the row-major index of the square.
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

func (s Square) add(d Square) Square {
	return Square{Row: s.Row + d.Row, Col: s.Col + d.Col}
}

func (s Square) bit() uint64 {
	return uint64(1) << s.Index()
}

// String returns the field notation of the square, e.g. "d3" for row 2, col 3.
func (s Square) String() string {
	if !s.IsValid() {
		return "??"
	}
	return fmt.Sprintf("%c%d", 'a'+s.Col, s.Row+1)
}

// ParseSquare converts a field notation (e.g. "a1", "h8") to a square.
func ParseSquare(field string) (Square, error) {
	if len(field) != 2 {
		return Square{}, fmt.Errorf("%w: invalid field length: %q", ErrInvalidMove, field)
	}

	field = strings.ToLower(field)

	if !('a' <= field[0] && field[0] <= 'h' && '1' <= field[1] && field[1] <= '8') {
		return Square{}, fmt.Errorf("%w: invalid field: %q", ErrInvalidMove, field)
	}

	return Square{Row: int(field[1] - '1'), Col: int(field[0] - 'a')}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Square) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Square) UnmarshalText(text []byte) error {
	sq, err := ParseSquare(string(text))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}
