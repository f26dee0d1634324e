// Package evaluator re-scores persisted pipelines against the held-out test
// split and renders confusion matrices.
package evaluator

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/crimson-sun/stanza/internal/dataset"
	"github.com/crimson-sun/stanza/internal/engine/classifier"
	"github.com/crimson-sun/stanza/internal/engine/metrics"
	"github.com/crimson-sun/stanza/internal/model"
	"github.com/crimson-sun/stanza/internal/trainer"
)

// Evaluator reloads artifacts and reproduces the training-time test split.
// Split must match the options used at training time exactly; with a
// different seed or fraction the reconstructed test partition, and so the
// metrics, would be meaningless.
type Evaluator struct {
	ModelsDir string
	OutputDir string
	Split     dataset.SplitOptions
	Out       io.Writer // classification reports; defaults to stdout
}

// New creates an Evaluator reading artifacts from modelsDir and writing
// confusion-matrix images to outputDir.
func New(modelsDir, outputDir string, split dataset.SplitOptions) *Evaluator {
	return &Evaluator{ModelsDir: modelsDir, OutputDir: outputDir, Split: split, Out: os.Stdout}
}

// EvaluateAll evaluates every known task.
func (e *Evaluator) EvaluateAll(ds dataset.Dataset) error {
	for _, task := range model.Tasks {
		if _, err := e.Evaluate(ds, task); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate reloads one task's pipeline, predicts on the reconstructed test
// split, prints the classification report, and writes
// confusion_matrix_<task>.png to the output directory.
func (e *Evaluator) Evaluate(ds dataset.Dataset, task model.Task) (*metrics.Report, error) {
	pipe, err := classifier.Load(classifier.ArtifactPath(e.ModelsDir, task))
	if err != nil {
		return nil, fmt.Errorf("evaluator: %w", err)
	}

	_, test, err := dataset.Split(ds, task, e.Split)
	if err != nil {
		return nil, fmt.Errorf("evaluator: %w", err)
	}

	yTrue := test.Labels(task)
	yPred, err := pipe.Predict(trainer.BuildTexts(test))
	if err != nil {
		return nil, fmt.Errorf("evaluator: %w", err)
	}

	report := metrics.Classification(yTrue, yPred)
	fmt.Fprintf(e.Out, "\n=== Evaluating %s classifier ===\n%s\n", task, report)

	png := filepath.Join(e.OutputDir, fmt.Sprintf("confusion_matrix_%s.png", task))
	if err := metrics.ConfusionMatrix(yTrue, yPred).RenderPNG(png); err != nil {
		return nil, fmt.Errorf("evaluator: %w", err)
	}
	slog.Info("confusion matrix rendered", "task", task, "path", png, "accuracy", report.Accuracy)
	return report, nil
}
