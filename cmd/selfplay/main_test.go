package main

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/search"
)

func TestPlayGame(t *testing.T) {
	searcher, err := search.New(search.Config{Algorithm: search.Negamax, Depth: 1})
	require.NoError(t, err)

	final := playGame(searcher, models.White, rand.New(rand.NewSource(3)))
	require.True(t, final.IsTerminal())
	require.NotEqual(t, models.OutcomeNone, final.Winner())
}

func TestRun(t *testing.T) {
	cfg := search.Config{Algorithm: search.Classic, Depth: 1}

	result := run(cfg, 6, 3, 42)
	require.Equal(t, 6, result.Wins+result.Losses+result.Draws)

	// Games are seeded per index, so the worker count does not change the outcome.
	require.Equal(t, result, run(cfg, 6, 1, 42))
}

func TestSummaryAdd(t *testing.T) {
	var s summary
	s.add(models.OutcomeBlack, models.Black, 10)
	s.add(models.OutcomeBlack, models.White, -4)
	s.add(models.OutcomeDraw, models.White, 0)

	require.Equal(t, summary{Wins: 1, Losses: 1, Draws: 1, Discs: 6}, s)
}
