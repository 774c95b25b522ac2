package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/othello"
	"github.com/lk16/fourway/internal/search"
)

type Controller struct {
	// game contains the move history
	game *othello.Game

	// start is used to restart the game
	start models.State

	// searchChan is a channel used to start a new search.
	searchChan chan searchRequest

	// resultChan receives finished searches.
	resultChan chan searchResult

	// generation is incremented on every board change, results of older searches are dropped.
	generation int

	// thinking indicates the computer is searching its move
	thinking bool

	// evaluations holds the values of the human's moves, if computed
	evaluations map[int]*MoveEvaluation

	// evaluationEnabled indicates if we're evaluating the human's moves
	evaluationEnabled bool
}

func NewWindow(settings othello.Settings, start models.State) (*Controller, error) {
	game, err := othello.NewGameWithStart(settings, start)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	searchChan := make(chan searchRequest, 20)
	resultChan := make(chan searchResult, 20)

	listener, err := newSearchChanListener(search.Config{
		Algorithm: settings.Algorithm,
		Depth:     settings.Depth,
	}, searchChan, resultChan)
	if err != nil {
		return nil, fmt.Errorf("could not create channel listener: %w", err)
	}

	go listener.Listen()

	c := &Controller{
		game:              game,
		start:             start,
		searchChan:        searchChan,
		resultChan:        resultChan,
		evaluationEnabled: false,
	}

	c.OnBoardChange()

	return c, nil
}

func (c *Controller) Run() {
	rl.SetTraceLogLevel(rl.LogError)

	rl.InitWindow(BoardWidthPx, BoardHeightPx, "Fourway")
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	windowDrawer := newWindowDrawer(c)

	for !rl.WindowShouldClose() {
		c.handleEvents()
		c.handleSearchResults()
		windowDrawer.draw()
	}
}

func (c *Controller) handleEvents() {
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		mousePos := rl.GetMousePosition()

		sq := models.Square{
			Row: int(mousePos.Y) / SquareSize,
			Col: int(mousePos.X) / SquareSize,
		}

		if sq.IsValid() && c.game.Current().IsLegalMove(sq) {
			c.OnMove(sq)
		}
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseRightButton) {
		c.OnUndo()
	}

	for {
		key := rl.GetKeyPressed()
		if key == rl.KeyNull {
			break
		}

		c.OnKeyPress(key)
	}
}

func (c *Controller) handleSearchResults() {
	for {
		select {
		case result := <-c.resultChan:
			c.OnSearchResult(result)
		default:
			return
		}
	}
}

func (c *Controller) OnMove(sq models.Square) {
	if c.thinking {
		return
	}

	if err := c.game.PlayHuman(sq); err != nil {
		slog.Warn("move rejected", "move", sq, "error", err)
		return
	}

	c.OnBoardChange()
}

func (c *Controller) OnUndo() {
	c.game.Undo()
	c.OnBoardChange()
}

func (c *Controller) OnKeyPress(key int32) {
	switch key {
	// Print current state.
	case rl.KeyD:
		slog.Info("current state", "state", c.game.Current().String())

	// Print game record.
	case rl.KeyP:
		fmt.Print(c.game.PGN())

	// Restart game
	case rl.KeyN:
		game, err := othello.NewGameWithStart(c.game.Settings(), c.start)
		if err != nil {
			slog.Error("could not restart game", "error", err)
			return
		}
		c.game = game
		c.OnBoardChange()

	// Undo last human move
	case rl.KeyU:
		c.OnUndo()

	// Toggle showing and computing evaluations
	case rl.KeyE:
		c.evaluationEnabled = !c.evaluationEnabled
		c.OnBoardChange()
	}
}

func (c *Controller) OnSearchResult(result searchResult) {
	if result.request.generation != c.generation {
		return
	}

	switch result.request.kind {
	case computerMove:
		c.thinking = false

		if !result.ok {
			return
		}

		if err := c.game.PushMove(result.best.Move.Index()); err != nil {
			slog.Error("computer move rejected", "move", result.best.Move, "error", err)
			return
		}

		c.OnBoardChange()
	case humanHints:
		c.evaluations = evaluationMap(result.results)
	}
}

func (c *Controller) GetDrawArgs() *DrawArgs {
	return &DrawArgs{
		State:             c.game.Current(),
		HumanColor:        c.game.Settings().HumanColor,
		SquareEvaluations: c.evaluations,
		ShowEvaluations:   c.evaluationEnabled,
		Thinking:          c.thinking,
	}
}

// OnBoardChange passes where needed and starts the next search.
func (c *Controller) OnBoardChange() {
	c.generation++
	c.evaluations = nil
	c.thinking = false

	for !c.game.IsOver() && !c.game.Current().HasMoves() {
		if err := c.game.Pass(); err != nil {
			slog.Error("could not pass", "error", err)
			return
		}
	}

	if c.game.IsOver() {
		slog.Info("game over", "winner", c.game.Winner(), "result", c.game.Result())
		return
	}

	request := searchRequest{
		state:      c.game.Current(),
		generation: c.generation,
	}

	if c.game.IsComputerTurn() {
		request.kind = computerMove
		c.thinking = true
		c.searchChan <- request
		return
	}

	if c.evaluationEnabled {
		request.kind = humanHints
		c.searchChan <- request
	}
}
