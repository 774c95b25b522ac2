package search

import (
	"golang.org/x/exp/rand"

	"github.com/lk16/fourway/internal/models"
)

// RandomMove returns a uniformly chosen legal move, or false when the color to move has none.
func RandomMove(state models.State, rng *rand.Rand) (models.Square, bool) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return models.Square{}, false
	}

	return moves[rng.Intn(len(moves))], true
}
