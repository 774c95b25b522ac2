package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lk16/fourway/internal/api"
	"github.com/lk16/fourway/internal/config"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/othello"
)

const help = `Enter a field like "d3" to move.
Other commands: "undo", "pgn", "help", "quit".`

func main() {
	config.LoadDotEnv()
	config.SetLogLevel()
	playConfig := config.LoadPlayConfig()

	color := flag.String("color", playConfig.HumanColor, "the color of the human player")
	depth := flag.Int("depth", playConfig.SearchDepth, "the search depth of the computer")
	algorithm := flag.String("algorithm", playConfig.Algorithm, "the search algorithm: classic or negamax")
	load := flag.String("load", "", "continue the game record in this file")
	save := flag.String("save", "", "write the game record to this file when the game ends")
	remote := flag.Bool("remote", false, "play on the server at FOURWAY_SERVER_URL instead of locally")
	flag.Parse()

	if *remote {
		client := api.NewClient(config.LoadClientConfig())
		req := models.NewGameRequest{HumanColor: *color, Depth: *depth, Algorithm: *algorithm}

		if err := playRemote(context.Background(), client, req, os.Stdin, os.Stdout); err != nil {
			slog.Error("Game aborted", "error", err)
			os.Exit(1)
		}
		return
	}

	game, err := newGame(*color, *depth, *algorithm, *load)
	if err != nil {
		slog.Error("Failed to create game", "error", err)
		os.Exit(1)
	}

	if err = play(game, os.Stdin, os.Stdout); err != nil {
		slog.Error("Game aborted", "error", err)
		os.Exit(1)
	}

	if *save != "" {
		if err = os.WriteFile(*save, []byte(game.PGN()), 0o600); err != nil {
			slog.Error("Failed to save game", "error", err)
			os.Exit(1)
		}
	}
}

func newGame(color string, depth int, algorithm, load string) (*othello.Game, error) {
	if load != "" {
		content, err := os.ReadFile(load)
		if err != nil {
			return nil, fmt.Errorf("failed to read game record: %w", err)
		}
		return othello.NewGameFromPGN(string(content))
	}

	settings, err := othello.SettingsFromConfig(&config.PlayConfig{
		SearchDepth: depth,
		HumanColor:  color,
		Algorithm:   algorithm,
	})
	if err != nil {
		return nil, err
	}

	return othello.NewGame(settings)
}

func printState(out io.Writer, state models.State) {
	for _, line := range state.Board().ASCIIArtLines(state.Turn()) {
		fmt.Fprintln(out, line)
	}

	board := state.Board()
	fmt.Fprintf(out, "black %d, white %d\n", board.Count(models.Black), board.Count(models.White))
}

// printPlayed prints moves played without input from the human. Passes can be made by either color,
// so they are labeled with the color that passed. mover is the color that played the first move.
func printPlayed(out io.Writer, moves []string, mover models.Color) {
	for _, move := range moves {
		if move == othello.MoveString(othello.PassMove) {
			fmt.Fprintf(out, "%s passes\n", mover)
		} else {
			fmt.Fprintf(out, "computer: %s\n", move)
		}
		mover = mover.Opponent()
	}
}

func play(game *othello.Game, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "You play %s.\n%s\n", game.Settings().HumanColor, help)

	for {
		played, err := game.Advance()
		if err != nil {
			return err
		}

		history := game.History()
		fields := make([]string, len(played))
		for i, move := range played {
			fields[i] = othello.MoveString(move)
		}
		printPlayed(out, fields, history[len(history)-1-len(played)].Turn())

		printState(out, game.Current())

		if game.IsOver() {
			fmt.Fprintf(out, "Game over, winner: %s, result: %s\n", game.Winner(), game.Result())
			return nil
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
			fmt.Fprintln(out, help)
		case "undo":
			game.Undo()
		case "pgn":
			fmt.Fprint(out, game.PGN())
		default:
			sq, err := models.ParseSquare(input)
			if err == nil {
				err = game.PlayHuman(sq)
			}
			if err != nil {
				fmt.Fprintf(out, "invalid move: %s\n", err)
			}
		}
	}
}
