package stanza

import (
	"fmt"
	"time"

	"github.com/crimson-sun/stanza/internal/engine"
)

// Classifier predicts the department and sentiment of hotel reviews using
// pipelines trained ahead of time. Safe for concurrent use: the underlying
// pipelines are loaded once and never mutated.
type Classifier struct {
	eng *engine.Engine
}

// Prediction is the label pair produced for one review.
type Prediction struct {
	Department string
	Sentiment  string
	Timestamp  time.Time
}

// New creates a Classifier, loading both persisted pipeline artifacts.
// Create once and reuse across requests.
func New(opts ...Option) (*Classifier, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	eng, err := engine.Load(o.modelsDir)
	if err != nil {
		return nil, fmt.Errorf("stanza: %w", err)
	}
	return &Classifier{eng: eng}, nil
}

// Predict classifies a single review. Title and body may both be empty; the
// classifier still returns a label pair.
func (c *Classifier) Predict(title, body string) (Prediction, error) {
	p, err := c.eng.PredictOne(title, body)
	if err != nil {
		return Prediction{}, fmt.Errorf("stanza: %w", err)
	}
	return Prediction{Department: p.Department, Sentiment: p.Sentiment, Timestamp: p.Timestamp}, nil
}
