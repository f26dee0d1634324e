// Package dataset holds the labeled review dataset: CSV persistence, the
// synthetic corpus generator, and the deterministic train/test split.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/crimson-sun/stanza/internal/model"
)

// Columns is the dataset CSV header, in order.
var Columns = []string{"id", "title", "body", "department", "sentiment"}

// Dataset is an ordered sequence of review records. Row order carries no
// meaning; the generator shuffles before writing.
type Dataset []model.Review

// ReadCSV loads a dataset from a CSV file with the canonical header.
func ReadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", path, err)
	}
	return ds, nil
}

// Read parses dataset CSV content. The header row is required and must
// contain every canonical column; column order is not significant.
func Read(r io.Reader) (Dataset, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range Columns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}

	var ds Dataset
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		ds = append(ds, model.Review{
			ID:         rec[idx["id"]],
			Title:      rec[idx["title"]],
			Body:       rec[idx["body"]],
			Department: rec[idx["department"]],
			Sentiment:  rec[idx["sentiment"]],
		})
	}
	return ds, nil
}

// WriteCSV writes the dataset to path, creating or truncating the file.
func (ds Dataset) WriteCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}
	if err := ds.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("dataset: %s: %w", path, err)
	}
	return f.Close()
}

// Write emits the dataset as CSV with the canonical header.
func (ds Dataset) Write(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range ds {
		if err := cw.Write([]string{r.ID, r.Title, r.Body, r.Department, r.Sentiment}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Labels returns the task's label column for every row, in row order.
func (ds Dataset) Labels(task model.Task) []string {
	out := make([]string, len(ds))
	for i, r := range ds {
		out[i] = task.Label(r)
	}
	return out
}
