package gui

import (
	"log/slog"

	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/search"
)

type searchKind int

const (
	// computerMove asks for the best move of the computer.
	computerMove searchKind = iota

	// humanHints asks for the value of every human move.
	humanHints
)

type searchRequest struct {
	kind  searchKind
	state models.State

	// generation identifies the game history the request was sent for.
	generation int
}

type searchResult struct {
	request searchRequest
	results []search.Result
	best    search.Result
	ok      bool
}

// searchChanListener runs searches off the render loop.
type searchChanListener struct {
	// searcher computes all results, it is only used by the listener goroutine.
	searcher *search.Searcher

	// searchChan receives states to search.
	searchChan chan searchRequest

	// resultChan sends back the outcome of every search.
	resultChan chan searchResult
}

func newSearchChanListener(config search.Config, searchChan chan searchRequest, resultChan chan searchResult) (*searchChanListener, error) {
	searcher, err := search.New(config)
	if err != nil {
		return nil, err
	}

	return &searchChanListener{
		searcher:   searcher,
		searchChan: searchChan,
		resultChan: resultChan,
	}, nil
}

func (l *searchChanListener) Listen() {
	for request := range l.searchChan {
		l.resultChan <- l.handleSearch(request)
	}
}

func (l *searchChanListener) handleSearch(request searchRequest) searchResult {
	result := searchResult{request: request}

	switch request.kind {
	case computerMove:
		result.best, result.ok = l.searcher.Search(request.state)
	case humanHints:
		result.results = l.searcher.Evaluations(request.state)
		result.ok = len(result.results) > 0
	}

	stats := l.searcher.Stats()
	slog.Debug("gui search done", "kind", request.kind, "state", request.state, "nodes", stats.Nodes)

	return result
}

// evaluationMap converts per-move results to the map used for drawing.
func evaluationMap(results []search.Result) map[int]*MoveEvaluation {
	evals := make(map[int]*MoveEvaluation, len(results))
	if len(results) == 0 {
		return evals
	}

	bestScore := results[0].Value
	for _, result := range results {
		bestScore = max(bestScore, result.Value)
	}

	for _, result := range results {
		evals[result.Move.Index()] = &MoveEvaluation{
			Score:  result.Value,
			IsBest: result.Value == bestScore,
		}
	}

	return evals
}
