// Command evaluate reloads the persisted pipelines, re-scores them on the
// reconstructed test split, and renders confusion-matrix images.
package main

import (
	"log"
	"os"

	"github.com/crimson-sun/stanza/internal/config"
	"github.com/crimson-sun/stanza/internal/dataset"
	"github.com/crimson-sun/stanza/internal/evaluator"
	"github.com/crimson-sun/stanza/internal/logging"
)

func main() {
	cfg := config.Load()
	logging.Init(false, logging.ParseLevel(cfg.Server.LogLevel))

	ds, err := dataset.ReadCSV(cfg.Data.DatasetPath)
	if err != nil {
		log.Fatalf("failed to load dataset: %v", err)
	}

	if err := os.MkdirAll(cfg.Data.OutputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	e := evaluator.New(cfg.Data.ModelsDir, cfg.Data.OutputDir, dataset.SplitOptions{
		TestFraction: cfg.Split.TestFraction,
		Seed:         cfg.Split.Seed,
		Stratify:     true,
	})
	if err := e.EvaluateAll(ds); err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}
}
