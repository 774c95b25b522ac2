package search

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/lk16/fourway/internal/models"
)

// infinity bounds alpha and beta. Heuristic values never come close, so it can be negated safely.
const infinity = math.MaxInt32

// Algorithm selects how child values are combined.
type Algorithm int

const (
	// Classic alternates a maximizing and a minimizing layer and negates only
	// the values that come back into a maximizing layer.
	Classic Algorithm = iota

	// Negamax negates every child value and always maximizes.
	Negamax
)

// ParseAlgorithm parses "classic" or "negamax".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "":
		return Classic, nil
	case "negamax":
		return Negamax, nil
	default:
		return Classic, fmt.Errorf("unknown search algorithm: %q", s)
	}
}

func (a Algorithm) String() string {
	if a == Negamax {
		return "negamax"
	}
	return "classic"
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	algorithm, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = algorithm
	return nil
}

// Config describes a search.
type Config struct {
	Algorithm Algorithm
	Depth     int

	// DisablePruning searches the full tree. Used to check that pruning does not change results.
	DisablePruning bool
}

// Stats counts the work done by the last search.
type Stats struct {
	Nodes   int
	Leaves  int
	Cutoffs int
}

// Searcher picks moves with a depth-limited alpha-beta search.
type Searcher struct {
	config Config
	stats  Stats
}

// New creates a Searcher.
func New(config Config) (*Searcher, error) {
	if config.Depth < 1 {
		return nil, fmt.Errorf("%w, got %d", models.ErrInvalidDepth, config.Depth)
	}

	return &Searcher{config: config}, nil
}

// Config returns the search configuration.
func (s *Searcher) Config() Config {
	return s.config
}

// Stats returns the counters of the last search.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// Result is the outcome of a search.
type Result struct {
	Move  models.Square
	Value int
}

// Evaluations returns the value of every legal move for the color to move, in row-major order.
func (s *Searcher) Evaluations(state models.State) []Result {
	s.stats = Stats{}

	moves := state.LegalMoves()
	results := make([]Result, len(moves))

	for i, move := range moves {
		results[i] = Result{Move: move, Value: s.evaluateChild(state.Play(move))}
	}

	return results
}

// Search returns the move with the highest value for the color to move.
// Moves are tried in row-major order and ties keep the first move.
// It returns false when the color to move has no legal move.
func (s *Searcher) Search(state models.State) (Result, bool) {
	start := time.Now()

	results := s.Evaluations(state)
	if len(results) == 0 {
		return Result{}, false
	}

	best := results[0]
	for _, result := range results[1:] {
		if result.Value > best.Value {
			best = result
		}
	}

	slog.Debug("search done",
		"algorithm", s.config.Algorithm,
		"depth", s.config.Depth,
		"move", best.Move,
		"value", best.Value,
		"nodes", s.stats.Nodes,
		"cutoffs", s.stats.Cutoffs,
		"duration", time.Since(start),
	)

	return best, true
}

// BestMove is Search without the value.
func (s *Searcher) BestMove(state models.State) (models.Square, bool) {
	result, ok := s.Search(state)
	return result.Move, ok
}

// Play searches the best move and applies it.
func (s *Searcher) Play(state models.State) (models.State, error) {
	move, ok := s.BestMove(state)
	if !ok {
		return state, fmt.Errorf("%w for %s", models.ErrNoLegalMove, state.Turn())
	}

	return state.Play(move), nil
}

// evaluateChild returns the value of a root child from the perspective of the root mover.
func (s *Searcher) evaluateChild(child models.State) int {
	depth := s.config.Depth

	switch {
	case s.config.Algorithm == Negamax && s.config.DisablePruning:
		return -s.negamaxFull(child, depth-1)
	case s.config.Algorithm == Negamax:
		return -s.negamax(child, -infinity, infinity, depth-1)
	case s.config.DisablePruning:
		return s.minimaxFull(child, true, depth)
	default:
		return s.minimax(child, -infinity, infinity, true, depth)
	}
}

// AlphaBetaSearch returns the best move of the color to move using the Classic algorithm.
func AlphaBetaSearch(state models.State, depth int) (models.Square, bool) {
	searcher := &Searcher{config: Config{Algorithm: Classic, Depth: depth}}
	return searcher.BestMove(state)
}

// Minimax is AlphaBetaSearch without pruning.
func Minimax(state models.State, depth int) (models.Square, bool) {
	searcher := &Searcher{config: Config{Algorithm: Classic, Depth: depth, DisablePruning: true}}
	return searcher.BestMove(state)
}

// ComputerTurn plays the move chosen by AlphaBetaSearch.
func ComputerTurn(state models.State, depth int) (models.State, error) {
	searcher, err := New(Config{Algorithm: Classic, Depth: depth})
	if err != nil {
		return state, err
	}

	return searcher.Play(state)
}
