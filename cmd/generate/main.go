// Command generate writes a balanced synthetic hotel review dataset to CSV.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crimson-sun/stanza/internal/config"
	"github.com/crimson-sun/stanza/internal/dataset"
	"github.com/crimson-sun/stanza/internal/logging"
)

func main() {
	cfg := config.Load()

	n := flag.Int("n", 360, "number of reviews to generate (rounded down to a multiple of 6)")
	seed := flag.Int64("seed", cfg.Split.Seed, "random seed")
	out := flag.String("out", cfg.Data.DatasetPath, "output CSV path")
	flag.Parse()

	logging.Init(false, logging.ParseLevel(cfg.Server.LogLevel))

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("failed to create output directory: %v", err)
		}
	}

	ds := dataset.Generate(*n, *seed)
	if err := ds.WriteCSV(*out); err != nil {
		log.Fatalf("failed to write dataset: %v", err)
	}
	slog.Info("synthetic dataset written", "rows", len(ds), "seed", *seed, "path", *out)
}
