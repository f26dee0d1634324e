package dataset

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/crimson-sun/stanza/internal/model"
)

func TestCSVRoundTrip(t *testing.T) {
	ds := Generate(60, 42)
	path := filepath.Join(t.TempDir(), "reviews.csv")

	if err := ds.WriteCSV(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(ds) {
		t.Fatalf("read %d rows, wrote %d", len(got), len(ds))
	}
	for i := range ds {
		if got[i] != ds[i] {
			t.Fatalf("row %d mismatch: %+v != %+v", i, got[i], ds[i])
		}
	}
}

func TestReadRequiresColumns(t *testing.T) {
	_, err := Read(strings.NewReader("id,title,body,department\nx,t,b,F&B\n"))
	if err == nil || !strings.Contains(err.Error(), "sentiment") {
		t.Fatalf("expected missing-column error naming sentiment, got %v", err)
	}
}

func TestReadColumnOrderIrrelevant(t *testing.T) {
	in := "sentiment,id,body,title,department\npositive,ab12,letto comodo,Ottimo,Housekeeping\n"
	ds, err := Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := model.Review{ID: "ab12", Title: "Ottimo", Body: "letto comodo", Department: "Housekeeping", Sentiment: "positive"}
	if ds[0] != want {
		t.Fatalf("got %+v, want %+v", ds[0], want)
	}
}

func TestLabels(t *testing.T) {
	ds := Dataset{
		{ID: "a", Department: "F&B", Sentiment: "negative"},
		{ID: "b", Department: "Reception", Sentiment: "positive"},
	}
	got := ds.Labels(model.TaskSentiment)
	if got[0] != "negative" || got[1] != "positive" {
		t.Fatalf("unexpected labels %v", got)
	}
}
