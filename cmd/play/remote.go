package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lk16/fourway/internal/api"
	"github.com/lk16/fourway/internal/models"
)

const remoteHelp = `Enter a field like "d3" to move.
Other commands: "help", "quit".`

type gameClient interface {
	NewGame(ctx context.Context, req models.NewGameRequest) (models.GameResponse, error)
	Move(ctx context.Context, id string, move string) (models.GameResponse, error)
	Pass(ctx context.Context, id string) (models.GameResponse, error)
}

func printResponse(out io.Writer, game models.GameResponse) {
	for _, line := range game.ASCIIArt {
		fmt.Fprintln(out, line)
	}

	fmt.Fprintf(out, "black %d, white %d\n", game.BlackCount, game.WhiteCount)
}

// playRemote plays a game stored on a server. Undo is not offered, the server only moves forward.
func playRemote(ctx context.Context, client gameClient, req models.NewGameRequest, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	game, err := client.NewGame(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Game %s, you play %s.\n%s\n", game.ID, game.HumanColor, remoteHelp)

	// A new game starts with black to move, later moves start with the computer's reply.
	mover := models.Black

	for {
		printPlayed(out, game.ComputerMoves, mover)
		game.ComputerMoves = nil
		mover = game.HumanColor.Opponent()

		printResponse(out, game)

		if game.Over {
			fmt.Fprintf(out, "Game over, winner: %s, result: %s\n", game.Winner, game.Result)
			return nil
		}

		if len(game.LegalMoves) == 0 {
			fmt.Fprintln(out, "you have no moves, passing")
			if game, err = client.Pass(ctx, game.ID); err != nil {
				return err
			}
			continue
		}

		fmt.Fprint(out, "your move: ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		input := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch input {
		case "quit":
			return nil
		case "help":
			fmt.Fprintln(out, remoteHelp)
		default:
			next, err := client.Move(ctx, game.ID, input)

			var statusErr *api.StatusError
			if errors.As(err, &statusErr) && statusErr.StatusCode < 500 {
				fmt.Fprintf(out, "invalid move: %s\n", statusErr.Message)
				continue
			}

			if err != nil {
				return err
			}

			game = next
		}
	}
}
