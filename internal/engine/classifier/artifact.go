package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cdipaolo/goml/base"
	"github.com/cdipaolo/goml/linear"

	"github.com/crimson-sun/stanza/internal/engine/vectorizer"
	"github.com/crimson-sun/stanza/internal/model"
)

// artifact is the on-disk form of a fitted pipeline: vectorizer state, class
// list, and the learned parameters of whichever model the task uses. The
// format is private to this package; consumers treat the file as opaque.
type artifact struct {
	Task    model.Task             `json:"task"`
	Classes []string               `json:"classes"`
	Vec     *vectorizer.Vectorizer `json:"vectorizer"`
	Theta   [][]float64            `json:"theta,omitempty"`   // softmax parameters
	Weights []float64              `json:"weights,omitempty"` // logistic parameters
}

// ArtifactPath returns the artifact file for a task inside modelsDir,
// e.g. models/department_classifier.json.
func ArtifactPath(modelsDir string, task model.Task) string {
	return filepath.Join(modelsDir, string(task)+"_classifier.json")
}

// Save serializes the fitted pipeline to path, overwriting any prior
// artifact of the same name.
func (p *Pipeline) Save(path string) error {
	art := artifact{Task: p.task, Classes: p.classes, Vec: p.vec}
	switch p.task {
	case model.TaskDepartment:
		if p.softmax == nil {
			return fmt.Errorf("classifier: save %s: pipeline not fitted", p.task)
		}
		art.Theta = p.softmax.Parameters
	case model.TaskSentiment:
		if p.logistic == nil {
			return fmt.Errorf("classifier: save %s: pipeline not fitted", p.task)
		}
		art.Weights = p.logistic.Parameters
	}

	data, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return fmt.Errorf("classifier: marshal %s: %w", p.task, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("classifier: save %s: %w", p.task, err)
	}
	return nil
}

// Load reads a persisted pipeline. The returned pipeline is fully fitted and
// read-only; loading once per process and sharing it is the intended use.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: load: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("classifier: load %s: %w", path, err)
	}
	if !art.Task.Known() {
		return nil, fmt.Errorf("%w: %q in %s", ErrUnknownTask, art.Task, path)
	}

	p := &Pipeline{task: art.Task, vec: art.Vec, classes: art.Classes}
	n := art.Vec.NumFeatures()
	switch art.Task {
	case model.TaskDepartment:
		sm := linear.NewSoftmax(base.BatchGA, learningRate, 0, len(art.Classes), departmentMaxIters, nil, nil, n)
		sm.Output = io.Discard
		sm.Parameters = art.Theta
		p.softmax = sm
	case model.TaskSentiment:
		lr := linear.NewLogistic(base.BatchGA, learningRate, 0, sentimentMaxIters, nil, nil, n)
		lr.Output = io.Discard
		lr.Parameters = art.Weights
		p.logistic = lr
	}
	return p, nil
}
