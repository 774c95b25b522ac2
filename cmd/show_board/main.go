package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lk16/fourway/internal/models"
)

func main() {
	stateString := flag.String("state", models.NewState().String(), "the state to show, as printed by the server")
	flag.Parse()

	state, err := models.NewStateFromString(*stateString)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	for _, line := range state.Board().ASCIIArtLines(state.Turn()) {
		fmt.Println(line)
	}

	board := state.Board()
	fmt.Printf("%s to move, black %d, white %d\n", state.Turn(), board.Count(models.Black), board.Count(models.White))

	switch {
	case state.IsTerminal():
		fmt.Printf("game over, winner: %s\n", state.Winner())
	case !state.HasMoves():
		fmt.Printf("%s has to pass\n", state.Turn())
	default:
		fmt.Printf("legal moves: %v\n", state.LegalMoves())
	}
}
