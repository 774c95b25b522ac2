package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		want    Square
		wantErr bool
	}{
		{"top left", "a1", Square{Row: 0, Col: 0}, false},
		{"bottom right", "h8", Square{Row: 7, Col: 7}, false},
		{"uppercase", "D3", Square{Row: 2, Col: 3}, false},
		{"too long", "a10", Square{}, true},
		{"column out of range", "i1", Square{}, true},
		{"row out of range", "a9", Square{}, true},
		{"pass is not a square", "--", Square{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSquare(tt.field)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidMove)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, SquareFromIndex(got.Index()))
		})
	}
}

func TestSquare_String(t *testing.T) {
	require.Equal(t, "d3", Square{Row: 2, Col: 3}.String())
	require.Equal(t, "??", Square{Row: 9, Col: 3}.String())
}

func TestNewSquare(t *testing.T) {
	sq, err := NewSquare(4, 5)
	require.NoError(t, err)
	require.Equal(t, 37, sq.Index())

	_, err = NewSquare(-1, 5)
	require.ErrorIs(t, err, ErrInvalidMove)
}

func TestSquareAndColorJSON(t *testing.T) {
	type payload struct {
		Move  Square `json:"move"`
		Color Color  `json:"color"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"move":"e6","color":"white"}`), &p))
	require.Equal(t, Square{Row: 5, Col: 4}, p.Move)
	require.Equal(t, White, p.Color)

	require.Error(t, json.Unmarshal([]byte(`{"move":"z9"}`), &p))
	require.Error(t, json.Unmarshal([]byte(`{"color":"red"}`), &p))
}

func TestColor_Opponent(t *testing.T) {
	require.Equal(t, White, Black.Opponent())
	require.Equal(t, Black, White.Opponent())
	require.Equal(t, BlackDisc, Black.Disc())
	require.Equal(t, WhiteDisc, White.Disc())
}
