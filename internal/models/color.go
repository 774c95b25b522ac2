package models

import (
	"fmt"
	"strings"
)

// Color is one of the two sides of the game.
type Color uint8

const (
	Black Color = iota
	White
)

// Cell is the content of a single square.
type Cell uint8

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

// ParseColor parses "black" or "white", case insensitive.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black", "b":
		return Black, nil
	case "white", "w":
		return White, nil
	default:
		return Black, fmt.Errorf("invalid color: %q", s)
	}
}

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return Black + White - c
}

// Disc returns the cell holding a disc of this color.
func (c Color) Disc() Cell {
	if c == White {
		return WhiteDisc
	}
	return BlackDisc
}

// String returns "black" or "white".
func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	color, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = color
	return nil
}

func (c Cell) String() string {
	switch c {
	case BlackDisc:
		return "black"
	case WhiteDisc:
		return "white"
	default:
		return "empty"
	}
}
