// Package trainer fits and persists the per-task classification pipelines.
package trainer

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/crimson-sun/stanza/internal/dataset"
	"github.com/crimson-sun/stanza/internal/engine/classifier"
	"github.com/crimson-sun/stanza/internal/engine/metrics"
	"github.com/crimson-sun/stanza/internal/engine/textnorm"
	"github.com/crimson-sun/stanza/internal/model"
)

// Trainer runs split → fit → report → persist, once per label column.
type Trainer struct {
	ModelsDir string
	Split     dataset.SplitOptions
	Out       io.Writer // classification reports; defaults to stdout
}

// New creates a Trainer writing artifacts to modelsDir.
func New(modelsDir string, split dataset.SplitOptions) *Trainer {
	return &Trainer{ModelsDir: modelsDir, Split: split, Out: os.Stdout}
}

// TrainAll trains every known task on the dataset.
func (t *Trainer) TrainAll(ds dataset.Dataset) error {
	for _, task := range model.Tasks {
		if _, err := t.Train(ds, task); err != nil {
			return err
		}
	}
	return nil
}

// Train fits one task's pipeline on the stratified train split, reports
// held-out metrics, and persists the artifact. Returns the test-split report.
func (t *Trainer) Train(ds dataset.Dataset, task model.Task) (*metrics.Report, error) {
	train, test, err := dataset.Split(ds, task, t.Split)
	if err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}

	pipe, err := classifier.New(task)
	if err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}

	slog.Info("training pipeline", "task", task, "train_rows", len(train), "test_rows", len(test))
	if err := pipe.Fit(BuildTexts(train), train.Labels(task)); err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}

	preds, err := pipe.Predict(BuildTexts(test))
	if err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}
	report := metrics.Classification(test.Labels(task), preds)
	fmt.Fprintf(t.Out, "\n=== %s_classifier ===\n%s\n", task, report)

	path := classifier.ArtifactPath(t.ModelsDir, task)
	if err := pipe.Save(path); err != nil {
		return nil, fmt.Errorf("trainer: %w", err)
	}
	slog.Info("pipeline saved", "task", task, "path", path, "accuracy", report.Accuracy)
	return report, nil
}

// BuildTexts derives the model input text for every row: normalized
// title + body. Shared with the evaluator so both sides of the artifact see
// the same features.
func BuildTexts(ds dataset.Dataset) []string {
	texts := make([]string, len(ds))
	for i, r := range ds {
		texts[i] = textnorm.ReviewText(r.Title, r.Body)
	}
	return texts
}
