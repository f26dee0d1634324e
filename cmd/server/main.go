// Command server runs the web front end: a two-tab UI for single and batch
// review classification, backed by the persisted pipelines.
package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/crimson-sun/stanza/internal/config"
	"github.com/crimson-sun/stanza/internal/engine"
	"github.com/crimson-sun/stanza/internal/logging"
	"github.com/crimson-sun/stanza/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	logging.Init(true, logging.ParseLevel(cfg.Server.LogLevel))

	// Load both pipelines once; the server shares them read-only across
	// every request for the lifetime of the process.
	eng, err := engine.Load(cfg.Data.ModelsDir)
	if err != nil {
		log.Fatalf("failed to load pipelines: %v", err)
	}
	slog.Info("pipelines loaded", "models_dir", cfg.Data.ModelsDir)

	if err := server.New(cfg.Server.Addr, eng).Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
