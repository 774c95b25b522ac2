package othello

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/search"
)

const (
	humanPlayer    = "Human"
	computerPlayer = "Computer"
	unfinished     = "*"
)

var metadataRegex = regexp.MustCompile(`^\[(.*) "(.*)"\]$`)

// Result returns the final disc count as "black-white", or "*" while the game is in progress.
func (g *Game) Result() string {
	if !g.IsOver() {
		return unfinished
	}

	board := g.Current().Board()
	return fmt.Sprintf("%d-%d", board.Count(models.Black), board.Count(models.White))
}

func (g *Game) playerName(color models.Color) string {
	if color == g.settings.HumanColor {
		return humanPlayer
	}
	return computerPlayer
}

// PGN renders the game as a PGN-like record.
func (g *Game) PGN() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[Black \"%s\"]\n", g.playerName(models.Black))
	fmt.Fprintf(&sb, "[White \"%s\"]\n", g.playerName(models.White))
	fmt.Fprintf(&sb, "[Depth \"%d\"]\n", g.settings.Depth)
	fmt.Fprintf(&sb, "[Algorithm \"%s\"]\n", g.settings.Algorithm)
	if start := g.Start(); !start.Equal(models.NewState()) {
		fmt.Fprintf(&sb, "[Start \"%s\"]\n", start)
	}
	fmt.Fprintf(&sb, "[Result \"%s\"]\n", g.Result())
	sb.WriteString("\n")

	for i := 0; i < len(g.moves); i += 2 {
		fmt.Fprintf(&sb, "%d. %s", i/2+1, MoveString(g.moves[i]))
		if i+1 < len(g.moves) {
			fmt.Fprintf(&sb, " %s", MoveString(g.moves[i+1]))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(g.Result())
	sb.WriteString("\n")

	return sb.String()
}

// NewGameFromPGN creates a game from the output of Game.PGN.
func NewGameFromPGN(content string) (*Game, error) {
	lines := strings.Split(strings.TrimSpace(content), "\n")

	metadataRowCount := 0
	for _, line := range lines {
		if !strings.HasPrefix(line, "[") {
			break
		}
		metadataRowCount++
	}

	metadata, err := parseMetadata(lines[:metadataRowCount])
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	settings, err := metadata.settings()
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	start, err := metadata.start()
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata: %w", err)
	}

	moves, err := parsePgnMoves(lines[metadataRowCount:])
	if err != nil {
		return nil, fmt.Errorf("failed to parse moves: %w", err)
	}

	game, err := NewGameFromMovesWithStart(settings, start, moves)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if result, ok := metadata["Result"]; ok && result != game.Result() {
		return nil, fmt.Errorf("result %s does not match replayed result %s", result, game.Result())
	}

	return game, nil
}

type pgnMetadata map[string]string

func parseMetadata(lines []string) (pgnMetadata, error) {
	metadata := make(pgnMetadata)

	for _, line := range lines {
		matches := metadataRegex.FindStringSubmatch(strings.TrimSpace(line))
		if len(matches) != 3 {
			return nil, fmt.Errorf("could not parse PGN metadata: %s", line)
		}

		metadata[matches[1]] = matches[2]
	}

	return metadata, nil
}

func (m pgnMetadata) settings() (Settings, error) {
	settings := DefaultSettings()

	black, ok := m["Black"]
	if !ok {
		return Settings{}, errors.New("missing field Black in metadata")
	}

	white, ok := m["White"]
	if !ok {
		return Settings{}, errors.New("missing field White in metadata")
	}

	switch {
	case black == humanPlayer && white == computerPlayer:
		settings.HumanColor = models.Black
	case white == humanPlayer && black == computerPlayer:
		settings.HumanColor = models.White
	default:
		return Settings{}, fmt.Errorf("expected one human and one computer player, got %q and %q", black, white)
	}

	if depthString, ok := m["Depth"]; ok {
		depth, err := strconv.Atoi(depthString)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse depth: %w", err)
		}
		settings.Depth = depth
	}

	if algorithmString, ok := m["Algorithm"]; ok {
		algorithm, err := search.ParseAlgorithm(algorithmString)
		if err != nil {
			return Settings{}, err
		}
		settings.Algorithm = algorithm
	}

	return settings, nil
}

// start returns the state of the Start field, or the standard start state without one.
func (m pgnMetadata) start() (models.State, error) {
	startString, ok := m["Start"]
	if !ok {
		return models.NewState(), nil
	}

	start, err := models.NewStateFromString(startString)
	if err != nil {
		return models.State{}, fmt.Errorf("failed to parse start: %w", err)
	}

	return start, nil
}

func parsePgnMoves(lines []string) ([]int, error) {
	moves := make([]int, 0)

	for _, line := range lines {
		for _, word := range strings.Fields(line) {
			if word[0] >= '0' && word[0] <= '9' || word == unfinished {
				continue
			}

			move, err := ParseMove(word)
			if err != nil {
				return nil, fmt.Errorf("failed to parse move %s: %w", word, err)
			}

			moves = append(moves, move)
		}
	}

	return moves, nil
}
