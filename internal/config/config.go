// Package config loads runtime settings from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all Stanza configuration.
type Config struct {
	Data   DataConfig
	Split  SplitConfig
	Server ServerConfig
}

// DataConfig holds dataset and artifact locations.
type DataConfig struct {
	DatasetPath string // labeled review CSV
	ModelsDir   string // persisted pipeline artifacts
	OutputDir   string // predictions and confusion-matrix images
}

// SplitConfig holds the train/test partition settings. The trainer and the
// evaluator both read these, which is what keeps their test splits identical.
type SplitConfig struct {
	TestFraction float64
	Seed         int64
}

// ServerConfig holds web front-end settings.
type ServerConfig struct {
	Addr     string
	LogLevel string // "debug", "info", "warn", "error"
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Data: DataConfig{
			DatasetPath: getenv("STANZA_DATASET_PATH", "data/synthetic_reviews.csv"),
			ModelsDir:   getenv("STANZA_MODELS_DIR", "models"),
			OutputDir:   getenv("STANZA_OUTPUT_DIR", "outputs"),
		},
		Split: SplitConfig{
			TestFraction: getenvFloat("STANZA_TEST_FRACTION", 0.2),
			Seed:         getenvInt("STANZA_SEED", 42),
		},
		Server: ServerConfig{
			Addr:     getenv("STANZA_ADDR", ":8080"),
			LogLevel: getenv("STANZA_LOG_LEVEL", "info"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getenvInt(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
