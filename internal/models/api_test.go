package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveListScan(t *testing.T) {
	tests := []struct {
		name       string
		input      interface{}
		wantErr    bool
		wantErrMsg string
		wantMoves  MoveList
	}{
		{
			name:      "OK",
			input:     []byte("{19,-1,20}"),
			wantErr:   false,
			wantMoves: MoveList{19, -1, 20},
		},
		{
			name:      "Empty",
			input:     []byte("{}"),
			wantErr:   false,
			wantMoves: MoveList{},
		},
		{
			name:       "InvalidType",
			input:      123, // passing an int instead of []byte
			wantErr:    true,
			wantErrMsg: "cannot scan into MoveList",
		},
		{
			name:       "NilBytes",
			input:      []byte(nil),
			wantErr:    true,
			wantErrMsg: "cannot scan nil into MoveList",
		},
		{
			name:       "BrokenInt",
			input:      []byte("{1,abc,3}"),
			wantErr:    true,
			wantErrMsg: "cannot scan into MoveList",
		},
		{
			name:      "String",
			input:     "{-1,0,63}",
			wantErr:   false,
			wantMoves: MoveList{-1, 0, 63},
		},
		{
			name:       "Nil",
			input:      nil,
			wantErr:    true,
			wantErrMsg: "cannot scan nil into MoveList",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var moves MoveList
			err := moves.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantMoves, moves)
			}
		})
	}
}

func TestNewGameRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     NewGameRequest
		wantErr bool
	}{
		{"defaults", NewGameRequest{}, false},
		{"full", NewGameRequest{HumanColor: "white", Depth: 4, Algorithm: "negamax"}, false},
		{"negative depth", NewGameRequest{Depth: -1}, true},
		{"too deep", NewGameRequest{Depth: MaxRequestDepth + 1}, true},
		{"bad color", NewGameRequest{HumanColor: "red"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
