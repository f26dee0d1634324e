// Package metrics computes evaluation metrics for the classification tasks:
// per-class precision/recall/F1 reports and confusion matrices.
package metrics

import (
	"fmt"
	"sort"
	"strings"
)

// ClassMetrics holds one class's row of the classification report.
type ClassMetrics struct {
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report is a per-class precision/recall/F1 summary over a prediction run,
// shaped like the usual classification report.
type Report struct {
	Classes  []string // sorted unique true labels
	PerClass map[string]ClassMetrics
	Accuracy float64
	Total    int
}

// Classification computes a report from parallel true/predicted label slices.
func Classification(yTrue, yPred []string) *Report {
	classes := uniqueSorted(yTrue)

	tp := make(map[string]int)
	fp := make(map[string]int)
	fn := make(map[string]int)
	support := make(map[string]int)

	correct := 0
	for i := range yTrue {
		support[yTrue[i]]++
		if yPred[i] == yTrue[i] {
			tp[yTrue[i]]++
			correct++
		} else {
			fn[yTrue[i]]++
			fp[yPred[i]]++
		}
	}

	r := &Report{
		Classes:  classes,
		PerClass: make(map[string]ClassMetrics, len(classes)),
		Total:    len(yTrue),
	}
	if r.Total > 0 {
		r.Accuracy = float64(correct) / float64(r.Total)
	}
	for _, c := range classes {
		m := ClassMetrics{Support: support[c]}
		if denom := tp[c] + fp[c]; denom > 0 {
			m.Precision = float64(tp[c]) / float64(denom)
		}
		if denom := tp[c] + fn[c]; denom > 0 {
			m.Recall = float64(tp[c]) / float64(denom)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		r.PerClass[c] = m
	}
	return r
}

// MacroAvg averages each metric over classes with equal weight.
func (r *Report) MacroAvg() ClassMetrics {
	var avg ClassMetrics
	if len(r.Classes) == 0 {
		return avg
	}
	for _, c := range r.Classes {
		m := r.PerClass[c]
		avg.Precision += m.Precision
		avg.Recall += m.Recall
		avg.F1 += m.F1
	}
	n := float64(len(r.Classes))
	avg.Precision /= n
	avg.Recall /= n
	avg.F1 /= n
	avg.Support = r.Total
	return avg
}

// WeightedAvg averages each metric over classes weighted by support.
func (r *Report) WeightedAvg() ClassMetrics {
	var avg ClassMetrics
	if r.Total == 0 {
		return avg
	}
	for _, c := range r.Classes {
		m := r.PerClass[c]
		w := float64(m.Support) / float64(r.Total)
		avg.Precision += w * m.Precision
		avg.Recall += w * m.Recall
		avg.F1 += w * m.F1
	}
	avg.Support = r.Total
	return avg
}

// String formats the report with three-digit precision, one row per class
// plus accuracy, macro avg and weighted avg rows.
func (r *Report) String() string {
	width := len("weighted avg")
	for _, c := range r.Classes {
		if len(c) > width {
			width = len(c)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%*s  precision  recall  f1-score  support\n\n", width, "")
	for _, c := range r.Classes {
		m := r.PerClass[c]
		fmt.Fprintf(&b, "%*s      %.3f   %.3f     %.3f  %7d\n", width, c, m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\n%*s                        %.3f  %7d\n", width, "accuracy", r.Accuracy, r.Total)
	ma := r.MacroAvg()
	fmt.Fprintf(&b, "%*s      %.3f   %.3f     %.3f  %7d\n", width, "macro avg", ma.Precision, ma.Recall, ma.F1, ma.Support)
	wa := r.WeightedAvg()
	fmt.Fprintf(&b, "%*s      %.3f   %.3f     %.3f  %7d\n", width, "weighted avg", wa.Precision, wa.Recall, wa.F1, wa.Support)
	return b.String()
}

// Confusion is a square confusion matrix. Rows are true classes, columns
// predicted classes, both in sorted order of the unique true labels.
type Confusion struct {
	Classes []string
	Counts  [][]int
}

// ConfusionMatrix tallies predictions against true labels. Predicted labels
// outside the true label set are ignored, matching the fixed class order.
func ConfusionMatrix(yTrue, yPred []string) *Confusion {
	classes := uniqueSorted(yTrue)
	idx := make(map[string]int, len(classes))
	for i, c := range classes {
		idx[c] = i
	}

	counts := make([][]int, len(classes))
	for i := range counts {
		counts[i] = make([]int, len(classes))
	}
	for i := range yTrue {
		row := idx[yTrue[i]]
		col, ok := idx[yPred[i]]
		if !ok {
			continue
		}
		counts[row][col]++
	}
	return &Confusion{Classes: classes, Counts: counts}
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
