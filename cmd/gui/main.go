package main

import (
	"flag"
	"log"

	"github.com/lk16/fourway/internal/config"
	"github.com/lk16/fourway/internal/gui"
	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/othello"
)

func main() {
	config.LoadDotEnv()
	config.SetLogLevel()
	playConfig := config.LoadPlayConfig()

	start := flag.String("start", models.NewState().String(), "the start state")
	color := flag.String("color", playConfig.HumanColor, "the color of the human player")
	depth := flag.Int("depth", playConfig.SearchDepth, "the search depth of the computer")
	algorithm := flag.String("algorithm", playConfig.Algorithm, "the search algorithm: classic or negamax")
	flag.Parse()

	startState, err := models.NewStateFromString(*start)
	if err != nil {
		log.Fatalf("failed to create state: %v", err)
	}

	settings, err := othello.SettingsFromConfig(&config.PlayConfig{
		SearchDepth: *depth,
		HumanColor:  *color,
		Algorithm:   *algorithm,
	})
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	window, err := gui.NewWindow(settings, startState)
	if err != nil {
		log.Fatalf("failed to create window: %v", err)
	}

	window.Run()
}
