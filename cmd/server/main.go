package main

import (
	"log"

	"github.com/lk16/fourway/internal"
	"github.com/lk16/fourway/internal/config"
)

func main() {
	config.LoadDotEnv()
	config.SetLogLevel()

	// Setup app
	app, cfg := internal.SetupApp()

	// Start server
	address := cfg.ServerHost + ":" + cfg.ServerPort
	log.Fatal(app.Listen(address))
}
