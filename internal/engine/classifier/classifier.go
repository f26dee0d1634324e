// Package classifier implements the per-task TF-IDF + linear-model pipeline.
//
// Each task owns an independent pipeline: a vectorizer fit on its training
// split and a linear classifier over the resulting features. The department
// task uses a 3-class softmax model, the sentiment task a binary logistic
// model capped at 200 optimization iterations. The learning itself is
// delegated to goml; nothing here reimplements it.
package classifier

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/cdipaolo/goml/base"
	"github.com/cdipaolo/goml/linear"

	"github.com/crimson-sun/stanza/internal/engine/vectorizer"
	"github.com/crimson-sun/stanza/internal/model"
)

// ErrUnknownTask is returned when a pipeline is constructed for a task
// identifier that names neither classification target.
var ErrUnknownTask = errors.New("classifier: unknown task")

const (
	learningRate       = 0.01
	departmentMaxIters = 1000
	sentimentMaxIters  = 200
)

// Pipeline is one feature-extraction + classifier unit, bound to a single
// label column. Fit once, then read-only.
type Pipeline struct {
	task    model.Task
	vec     *vectorizer.Vectorizer
	classes []string // sorted unique fit labels; index = class id

	softmax  *linear.Softmax  // department task
	logistic *linear.Logistic // sentiment task
}

// New constructs an unfitted pipeline for the given task.
func New(task model.Task) (*Pipeline, error) {
	if !task.Known() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTask, task)
	}
	return &Pipeline{task: task, vec: vectorizer.New()}, nil
}

// Task returns the label column this pipeline is bound to.
func (p *Pipeline) Task() model.Task { return p.task }

// Classes returns the sorted class labels seen at fit time.
func (p *Pipeline) Classes() []string { return p.classes }

// Fit learns the vocabulary and classifier from pre-normalized training
// texts and their labels. Convergence quality is the optimizer's business;
// only structural failures (dimension mismatches and the like) surface here.
func (p *Pipeline) Fit(texts []string, labels []string) error {
	if len(texts) != len(labels) {
		return fmt.Errorf("classifier: %d texts for %d labels", len(texts), len(labels))
	}

	p.classes = uniqueSorted(labels)
	p.vec.Fit(texts)

	x := p.vec.Transform(texts)
	classID := make(map[string]int, len(p.classes))
	for i, c := range p.classes {
		classID[c] = i
	}
	y := make([]float64, len(labels))
	for i, label := range labels {
		y[i] = float64(classID[label])
	}

	switch p.task {
	case model.TaskDepartment:
		sm := linear.NewSoftmax(base.BatchGA, learningRate, 0, len(p.classes), departmentMaxIters, x, y)
		sm.Output = io.Discard
		if err := sm.Learn(); err != nil {
			return fmt.Errorf("classifier: fit %s: %w", p.task, err)
		}
		p.softmax = sm
	case model.TaskSentiment:
		lr := linear.NewLogistic(base.BatchGA, learningRate, 0, sentimentMaxIters, x, y)
		lr.Output = io.Discard
		if err := lr.Learn(); err != nil {
			return fmt.Errorf("classifier: fit %s: %w", p.task, err)
		}
		p.logistic = lr
	}
	return nil
}

// Predict classifies pre-normalized texts and returns one label per text.
func (p *Pipeline) Predict(texts []string) ([]string, error) {
	rows := p.vec.Transform(texts)
	out := make([]string, len(rows))
	for i, row := range rows {
		label, err := p.predictRow(row)
		if err != nil {
			return nil, err
		}
		out[i] = label
	}
	return out, nil
}

// PredictOne classifies a single pre-normalized text.
func (p *Pipeline) PredictOne(text string) (string, error) {
	labels, err := p.Predict([]string{text})
	if err != nil {
		return "", err
	}
	return labels[0], nil
}

func (p *Pipeline) predictRow(row []float64) (string, error) {
	switch p.task {
	case model.TaskDepartment:
		scores, err := p.softmax.Predict(row)
		if err != nil {
			return "", fmt.Errorf("classifier: predict %s: %w", p.task, err)
		}
		return p.classes[argmax(scores)], nil
	case model.TaskSentiment:
		scores, err := p.logistic.Predict(row)
		if err != nil {
			return "", fmt.Errorf("classifier: predict %s: %w", p.task, err)
		}
		if scores[0] > 0.5 {
			return p.classes[1], nil
		}
		return p.classes[0], nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTask, p.task)
}

func argmax(scores []float64) int {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}

func uniqueSorted(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	var out []string
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	sort.Strings(out)
	return out
}
