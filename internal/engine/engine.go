// Package engine exposes the inference side of the review classifier: an
// immutable handle over the two persisted pipelines, constructed once at
// process start and shared read-only afterwards.
package engine

import (
	"fmt"
	"time"

	"github.com/crimson-sun/stanza/internal/dataset"
	"github.com/crimson-sun/stanza/internal/engine/classifier"
	"github.com/crimson-sun/stanza/internal/engine/textnorm"
	"github.com/crimson-sun/stanza/internal/model"
)

// Engine runs both classification tasks over review text. It holds fitted
// pipelines only and is never mutated after construction, so a single Engine
// is safe to share across goroutines without locking.
type Engine struct {
	department *classifier.Pipeline
	sentiment  *classifier.Pipeline
}

// New creates an Engine from two fitted pipelines.
func New(department, sentiment *classifier.Pipeline) *Engine {
	return &Engine{department: department, sentiment: sentiment}
}

// Load reads both persisted pipelines from modelsDir. Call once per process
// and reuse the result for every subsequent prediction.
func Load(modelsDir string) (*Engine, error) {
	dept, err := classifier.Load(classifier.ArtifactPath(modelsDir, model.TaskDepartment))
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	sent, err := classifier.Load(classifier.ArtifactPath(modelsDir, model.TaskSentiment))
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	return New(dept, sent), nil
}

// PredictOne classifies a single review. Empty title and body are fine: the
// text normalizes to "" and both pipelines still return a label.
func (e *Engine) PredictOne(title, body string) (model.Prediction, error) {
	text := textnorm.ReviewText(title, body)

	dept, err := e.department.PredictOne(text)
	if err != nil {
		return model.Prediction{}, err
	}
	sent, err := e.sentiment.PredictOne(text)
	if err != nil {
		return model.Prediction{}, err
	}
	return model.Prediction{Department: dept, Sentiment: sent, Timestamp: time.Now()}, nil
}

// PredictBatch classifies every row of a batch table in place, appending
// predicted_department, predicted_sentiment and timestamp columns. The table
// must have title and body columns; missing cell values read as "".
func (e *Engine) PredictBatch(t *dataset.Table) error {
	titleCol := t.Column("title")
	bodyCol := t.Column("body")
	if titleCol < 0 || bodyCol < 0 {
		return fmt.Errorf("engine: batch input needs title and body columns, got %v", t.Header)
	}

	texts := make([]string, len(t.Rows))
	for i := range t.Rows {
		texts[i] = textnorm.ReviewText(t.Cell(i, titleCol), t.Cell(i, bodyCol))
	}

	depts, err := e.department.Predict(texts)
	if err != nil {
		return err
	}
	sents, err := e.sentiment.Predict(texts)
	if err != nil {
		return err
	}

	// One stamp per batch call so all rows of a run sort together.
	stamp := time.Now().Format(time.RFC3339)
	stamps := make([]string, len(t.Rows))
	for i := range stamps {
		stamps[i] = stamp
	}

	if err := t.AppendColumn("predicted_department", depts); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := t.AppendColumn("predicted_sentiment", sents); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	if err := t.AppendColumn("timestamp", stamps); err != nil {
		return fmt.Errorf("engine: %w", err)
	}
	return nil
}
