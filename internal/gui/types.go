package gui

import "github.com/lk16/fourway/internal/models"

// DrawArgs contains arguments for drawing the window content.
type DrawArgs struct {
	// State is the current game state
	State models.State

	// HumanColor is the color played by the human
	HumanColor models.Color

	// SquareEvaluations is a map of square index to evaluation of the human's moves.
	SquareEvaluations map[int]*MoveEvaluation

	// ShowEvaluations decides if we show move evaluations
	ShowEvaluations bool

	// Thinking is set while the computer searches its move
	Thinking bool
}

// MoveEvaluation contains details about the evaluation of a single move.
type MoveEvaluation struct {
	// Score is the search value of the move for the human
	Score int

	// IsBest indicates if this square has the best score
	IsBest bool
}
