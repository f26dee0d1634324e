package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a labeled review for classification validation.
type CorpusEntry struct {
	Title              string `json:"title"`
	Body               string `json:"body"`
	ExpectedDepartment string `json:"expected_department"`
	ExpectedSentiment  string `json:"expected_sentiment"`
	Description        string `json:"description"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
