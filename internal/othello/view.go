package othello

import (
	"github.com/lk16/fourway/internal/config"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/search"
)

// SettingsFromConfig parses the play settings loaded from the environment.
func SettingsFromConfig(cfg *config.PlayConfig) (Settings, error) {
	return withOverrides(DefaultSettings(), cfg.HumanColor, cfg.SearchDepth, cfg.Algorithm)
}

// SettingsFromRequest fills in the empty fields of a request with defaults.
func SettingsFromRequest(req models.NewGameRequest, defaults Settings) (Settings, error) {
	if err := req.Validate(); err != nil {
		return Settings{}, err
	}

	return withOverrides(defaults, req.HumanColor, req.Depth, req.Algorithm)
}

// withOverrides replaces the settings fields for which a non-zero value is passed.
func withOverrides(settings Settings, humanColor string, depth int, algorithm string) (Settings, error) {
	if humanColor != "" {
		color, err := models.ParseColor(humanColor)
		if err != nil {
			return Settings{}, err
		}
		settings.HumanColor = color
	}

	if depth != 0 {
		settings.Depth = depth
	}

	if algorithm != "" {
		parsed, err := search.ParseAlgorithm(algorithm)
		if err != nil {
			return Settings{}, err
		}
		settings.Algorithm = parsed
	}

	return settings, nil
}

// Response converts the game into its API representation.
// computerMoves are the moves played by the last call to Advance.
func (g *Game) Response(id string, computerMoves []int) models.GameResponse {
	current := g.Current()
	board := current.Board()

	moves := make([]string, len(g.moves))
	for i, move := range g.moves {
		moves[i] = MoveString(move)
	}

	computer := make([]string, len(computerMoves))
	for i, move := range computerMoves {
		computer[i] = MoveString(move)
	}

	return models.GameResponse{
		ID:            id,
		HumanColor:    g.settings.HumanColor,
		Depth:         g.settings.Depth,
		Algorithm:     g.settings.Algorithm.String(),
		State:         current.String(),
		Rows:          board.Rows(),
		ASCIIArt:      board.ASCIIArtLines(current.Turn()),
		Turn:          current.Turn(),
		LegalMoves:    current.LegalMoves(),
		Moves:         moves,
		ComputerMoves: computer,
		BlackCount:    board.Count(models.Black),
		WhiteCount:    board.Count(models.White),
		Over:          current.IsTerminal(),
		Winner:        current.Winner(),
		Result:        g.Result(),
		SearchNodes:   g.SearchStats().Nodes,
	}
}
