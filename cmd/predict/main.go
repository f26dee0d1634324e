// Command predict runs batch prediction over a CSV or XLSX file and writes
// the rows back out with predicted_department, predicted_sentiment and
// timestamp columns appended.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crimson-sun/stanza/internal/config"
	"github.com/crimson-sun/stanza/internal/dataset"
	"github.com/crimson-sun/stanza/internal/engine"
	"github.com/crimson-sun/stanza/internal/logging"
)

func main() {
	cfg := config.Load()

	out := flag.String("out", "", "output CSV path (default <output dir>/predictions_batch.csv)")
	flag.Parse()

	logging.Init(false, logging.ParseLevel(cfg.Server.LogLevel))

	if flag.NArg() != 1 {
		log.Fatalf("usage: predict [-out predictions.csv] <input.csv|input.xlsx>")
	}
	input := flag.Arg(0)
	if *out == "" {
		*out = filepath.Join(cfg.Data.OutputDir, "predictions_batch.csv")
	}

	eng, err := engine.Load(cfg.Data.ModelsDir)
	if err != nil {
		log.Fatalf("failed to load pipelines: %v", err)
	}

	table, err := dataset.ReadTable(input)
	if err != nil {
		log.Fatalf("failed to read input: %v", err)
	}
	if err := eng.PredictBatch(table); err != nil {
		log.Fatalf("batch prediction failed: %v", err)
	}

	if dir := filepath.Dir(*out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("failed to create output directory: %v", err)
		}
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("failed to create output: %v", err)
	}
	if err := table.WriteCSV(f); err != nil {
		f.Close()
		log.Fatalf("failed to write predictions: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("failed to write predictions: %v", err)
	}
	slog.Info("predictions saved", "rows", len(table.Rows), "path", *out)
}
