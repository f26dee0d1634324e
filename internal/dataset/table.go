package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a generic tabular file used for batch prediction input and
// output. Unlike Dataset it keeps every input column, known or not, so extra
// columns pass through to the prediction output unchanged.
type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable loads a batch input file. The format is chosen by extension:
// .xlsx is read through excelize (first sheet), anything else as CSV.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("table: %w", err)
	}
	defer f.Close()
	t, err := ReadTableFrom(f, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("table: %s: %w", path, err)
	}
	return t, nil
}

// ReadTableFrom parses table content from r. ext selects the format the same
// way ReadTable does; matching is case-insensitive.
func ReadTableFrom(r io.Reader, ext string) (*Table, error) {
	if strings.EqualFold(ext, ".xlsx") {
		return readXLSX(r)
	}
	return readCSV(r)
}

func readCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file, header row required")
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

func readXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty sheet, header row required")
	}

	t := &Table{Header: rows[0]}
	for _, row := range rows[1:] {
		// excelize trims trailing empty cells; pad back to header width.
		for len(row) < len(t.Header) {
			row = append(row, "")
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Column returns the index of the named column, or -1 if absent.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, column index), or "" when the column is
// absent or the row is short. Missing values read as empty strings.
func (t *Table) Cell(row, col int) string {
	if col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// AppendColumn adds a column with one value per row.
func (t *Table) AppendColumn(name string, values []string) error {
	if len(values) != len(t.Rows) {
		return fmt.Errorf("table: column %q has %d values for %d rows", name, len(values), len(t.Rows))
	}
	t.Header = append(t.Header, name)
	for i := range t.Rows {
		t.Rows[i] = append(t.Rows[i], values[i])
	}
	return nil
}

// WriteCSV emits the table, header first.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("table: write header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("table: write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
