// Command train fits both classification pipelines on the review dataset,
// prints held-out classification reports, and persists the artifacts.
package main

import (
	"log"
	"os"

	"github.com/crimson-sun/stanza/internal/config"
	"github.com/crimson-sun/stanza/internal/dataset"
	"github.com/crimson-sun/stanza/internal/logging"
	"github.com/crimson-sun/stanza/internal/trainer"
)

func main() {
	cfg := config.Load()
	logging.Init(false, logging.ParseLevel(cfg.Server.LogLevel))

	ds, err := dataset.ReadCSV(cfg.Data.DatasetPath)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	if err := os.MkdirAll(cfg.Data.ModelsDir, 0755); err != nil {
		log.Fatalf("failed to create models directory: %v", err)
	}

	t := trainer.New(cfg.Data.ModelsDir, dataset.SplitOptions{
		TestFraction: cfg.Split.TestFraction,
		Seed:         cfg.Split.Seed,
		Stratify:     true,
	})
	if err := t.TrainAll(ds); err != nil {
		log.Fatalf("training failed: %v", err)
	}
}
