package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"STANZA_DATASET_PATH", "STANZA_MODELS_DIR", "STANZA_OUTPUT_DIR",
		"STANZA_TEST_FRACTION", "STANZA_SEED",
		"STANZA_ADDR", "STANZA_LOG_LEVEL",
	} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.Data.DatasetPath != "data/synthetic_reviews.csv" {
		t.Fatalf("expected default dataset path, got %q", cfg.Data.DatasetPath)
	}
	if cfg.Data.ModelsDir != "models" {
		t.Fatalf("expected default models dir 'models', got %q", cfg.Data.ModelsDir)
	}
	if cfg.Data.OutputDir != "outputs" {
		t.Fatalf("expected default output dir 'outputs', got %q", cfg.Data.OutputDir)
	}
	if cfg.Split.TestFraction != 0.2 {
		t.Fatalf("expected default test fraction 0.2, got %v", cfg.Split.TestFraction)
	}
	if cfg.Split.Seed != 42 {
		t.Fatalf("expected default seed 42, got %d", cfg.Split.Seed)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected default addr ':8080', got %q", cfg.Server.Addr)
	}
	if cfg.Server.LogLevel != "info" {
		t.Fatalf("expected default log level 'info', got %q", cfg.Server.LogLevel)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("STANZA_DATASET_PATH", "/tmp/reviews.csv")
	t.Setenv("STANZA_MODELS_DIR", "/tmp/models")
	t.Setenv("STANZA_TEST_FRACTION", "0.3")
	t.Setenv("STANZA_SEED", "7")
	t.Setenv("STANZA_ADDR", ":9000")

	cfg := Load()

	if cfg.Data.DatasetPath != "/tmp/reviews.csv" {
		t.Fatalf("expected overridden dataset path, got %q", cfg.Data.DatasetPath)
	}
	if cfg.Data.ModelsDir != "/tmp/models" {
		t.Fatalf("expected overridden models dir, got %q", cfg.Data.ModelsDir)
	}
	if cfg.Split.TestFraction != 0.3 {
		t.Fatalf("expected test fraction 0.3, got %v", cfg.Split.TestFraction)
	}
	if cfg.Split.Seed != 7 {
		t.Fatalf("expected seed 7, got %d", cfg.Split.Seed)
	}
	if cfg.Server.Addr != ":9000" {
		t.Fatalf("expected addr ':9000', got %q", cfg.Server.Addr)
	}
}

func TestGetenvFloat(t *testing.T) {
	tests := []struct {
		name     string
		envVal   string
		set      bool
		fallback float64
		want     float64
	}{
		{"empty uses fallback", "", false, 0.2, 0.2},
		{"valid float", "0.25", true, 0.2, 0.25},
		{"invalid falls back", "lots", true, 0.2, 0.2},
	}

	const key = "STANZA_TEST_GETENVFLOAT"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(key, tt.envVal)
			} else {
				os.Unsetenv(key)
			}
			if got := getenvFloat(key, tt.fallback); got != tt.want {
				t.Errorf("getenvFloat(%q, %v) = %v, want %v", tt.envVal, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		envVal   string
		set      bool
		fallback int64
		want     int64
	}{
		{"empty uses fallback", "", false, 42, 42},
		{"valid int", "7", true, 42, 7},
		{"zero", "0", true, 42, 0},
		{"negative", "-1", true, 42, -1},
		{"invalid falls back", "abc", true, 42, 42},
	}

	const key = "STANZA_TEST_GETENVINT"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv(key, tt.envVal)
			} else {
				os.Unsetenv(key)
			}
			if got := getenvInt(key, tt.fallback); got != tt.want {
				t.Errorf("getenvInt(%q, %d) = %d, want %d", tt.envVal, tt.fallback, got, tt.want)
			}
		})
	}
}
