package gui

import (
	"fmt"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lk16/fourway/internal/models"
)

const (
	BoardWidthPx  = 600
	BoardHeightPx = 600

	SquareSize          = BoardWidthPx / models.BoardSize
	DiscRadius          = SquareSize/2 - 5
	MoveIndicatorRadius = SquareSize / 8
	StatusFontSize      = 20
)

type windowDrawer struct {
	controller *Controller
}

func newWindowDrawer(controller *Controller) *windowDrawer {
	return &windowDrawer{controller: controller}
}

func (w *windowDrawer) turnToColor(turn models.Color) rl.Color {
	if turn == models.White {
		return rl.White
	}
	return rl.Black
}

func (w *windowDrawer) draw() {
	args := w.controller.GetDrawArgs()
	board := args.State.Board()

	rl.BeginDrawing()

	backgroundColor := rl.NewColor(0, 128, 0, 255)
	rl.ClearBackground(backgroundColor)

	for index := range models.NumSquares {
		sq := models.SquareFromIndex(index)

		switch board.Get(sq) {
		case models.WhiteDisc:
			w.drawDisc(sq, w.turnToColor(models.White))
		case models.BlackDisc:
			w.drawDisc(sq, w.turnToColor(models.Black))
		case models.Empty:
			w.drawEmptySquare(sq, args)
		}
	}

	w.drawStatus(args)

	rl.EndDrawing()
}

func (w *windowDrawer) drawEmptySquare(sq models.Square, args *DrawArgs) {
	state := args.State

	if !state.IsLegalMove(sq) {
		return
	}

	color := w.turnToColor(state.Turn())

	eval, evalFound := args.SquareEvaluations[sq.Index()]
	if !evalFound || !args.ShowEvaluations {
		w.drawMoveIndicator(sq, color)
		return
	}

	w.drawEvaluationScore(sq, eval.Score, color)

	if eval.IsBest {
		w.drawBestEvaluationIndicator(sq, color)
	}
}

func (w *windowDrawer) drawStatus(args *DrawArgs) {
	var text string

	switch {
	case args.State.IsTerminal():
		board := args.State.Board()
		text = fmt.Sprintf("%s (%d-%d)", w.outcomeText(args), board.Count(models.Black), board.Count(models.White))
	case args.Thinking:
		text = "Thinking..."
	default:
		return
	}

	textWidth := rl.MeasureText(text, StatusFontSize)
	rl.DrawRectangle(0, BoardHeightPx/2-StatusFontSize, BoardWidthPx, 2*StatusFontSize, rl.Fade(rl.DarkGray, 0.8))
	rl.DrawText(text, (BoardWidthPx-textWidth)/2, BoardHeightPx/2-StatusFontSize/2, StatusFontSize, rl.RayWhite)
}

func (w *windowDrawer) outcomeText(args *DrawArgs) string {
	switch args.State.Winner() {
	case models.OutcomeDraw:
		return "Draw"
	case models.OutcomeBlack:
		if args.HumanColor == models.Black {
			return "You win"
		}
	case models.OutcomeWhite:
		if args.HumanColor == models.White {
			return "You win"
		}
	}
	return "Computer wins"
}

func (w *windowDrawer) getSquareCenter(sq models.Square) (int32, int32) {
	x := sq.Col*SquareSize + SquareSize/2
	y := sq.Row*SquareSize + SquareSize/2

	return int32(x), int32(y) //nolint:gosec
}

func (w *windowDrawer) drawDisc(sq models.Square, color rl.Color) {
	centerX, centerY := w.getSquareCenter(sq)
	rl.DrawCircle(centerX, centerY, DiscRadius, color)
}

func (w *windowDrawer) drawMoveIndicator(sq models.Square, color rl.Color) {
	centerX, centerY := w.getSquareCenter(sq)
	rl.DrawCircle(centerX, centerY, MoveIndicatorRadius, color)
}

func (w *windowDrawer) drawEvaluationScore(sq models.Square, score int, color rl.Color) {
	centerX, centerY := w.getSquareCenter(sq)

	fontSize := int32(30)

	text := strconv.Itoa(score)
	textWidth := rl.MeasureText(text, fontSize)
	textX := centerX - textWidth/2
	textY := centerY - fontSize/2

	rl.DrawText(text, textX, textY, fontSize, color)
}

func (w *windowDrawer) drawBestEvaluationIndicator(sq models.Square, color rl.Color) {
	centerX, centerY := w.getSquareCenter(sq)
	center := rl.Vector2{X: float32(centerX), Y: float32(centerY)}
	rl.DrawRing(center, DiscRadius-1, DiscRadius, 0, 360, 40, color)
}
