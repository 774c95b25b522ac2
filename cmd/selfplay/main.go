package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lk16/fourway/internal/config"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/search"
)

// summary counts finished games from the engine's point of view.
type summary struct {
	Wins   int
	Losses int
	Draws  int
	Discs  int
}

func (s *summary) add(outcome models.Outcome, engine models.Color, discDiff int) {
	switch outcome {
	case models.OutcomeDraw:
		s.Draws++
	case models.OutcomeBlack:
		if engine == models.Black {
			s.Wins++
		} else {
			s.Losses++
		}
	case models.OutcomeWhite:
		if engine == models.White {
			s.Wins++
		} else {
			s.Losses++
		}
	}
	s.Discs += discDiff
}

func main() {
	config.LoadDotEnv()
	config.SetLogLevel()
	playConfig := config.LoadPlayConfig()

	games := flag.Int("games", 100, "number of games to play")
	depth := flag.Int("depth", playConfig.SearchDepth, "the search depth of the engine")
	algorithmName := flag.String("algorithm", playConfig.Algorithm, "the search algorithm: classic or negamax")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "seed of the random player") //nolint:gosec
	workers := flag.Int("workers", runtime.NumCPU(), "number of games played in parallel")
	flag.Parse()

	algorithm, err := search.ParseAlgorithm(*algorithmName)
	if err != nil {
		slog.Error("Invalid algorithm", "error", err)
		os.Exit(1)
	}

	cfg := search.Config{Algorithm: algorithm, Depth: *depth}
	if _, err = search.New(cfg); err != nil {
		slog.Error("Invalid search config", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	result := run(cfg, *games, *workers, *seed)

	fmt.Printf("%s depth %d vs random, %d games in %s\n", algorithm, *depth, *games, time.Since(start).Round(time.Millisecond))
	fmt.Printf("wins %d, losses %d, draws %d, average disc difference %.2f\n",
		result.Wins, result.Losses, result.Draws, float64(result.Discs)/float64(max(*games, 1)))
}

// run plays games in parallel. The engine plays black in even games and white in odd games.
func run(cfg search.Config, games, workers int, seed uint64) summary {
	jobs := make(chan int)
	results := make(chan summary)

	var wg sync.WaitGroup
	for range max(workers, 1) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Config was validated by the caller.
			searcher, _ := search.New(cfg)

			for game := range jobs {
				engine := models.Black
				if game%2 == 1 {
					engine = models.White
				}

				rng := rand.New(rand.NewSource(seed + uint64(game))) //nolint:gosec
				final := playGame(searcher, engine, rng)

				var s summary
				board := final.Board()
				s.add(final.Winner(), engine, board.Count(engine)-board.Count(engine.Opponent()))
				results <- s
			}
		}()
	}

	go func() {
		for game := range games {
			jobs <- game
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	var total summary
	for s := range results {
		total.Wins += s.Wins
		total.Losses += s.Losses
		total.Draws += s.Draws
		total.Discs += s.Discs
	}

	return total
}

// playGame plays until neither color can move and returns the final state.
func playGame(searcher *search.Searcher, engine models.Color, rng *rand.Rand) models.State {
	state := models.NewState()

	for !state.IsTerminal() {
		if !state.HasMoves() {
			state = state.Pass()
			continue
		}

		if state.Turn() == engine {
			move, _ := searcher.BestMove(state)
			state = state.Play(move)
			continue
		}

		move, _ := search.RandomMove(state, rng)
		state = state.Play(move)
	}

	return state
}
