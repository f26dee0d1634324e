// Package vectorizer turns normalized review text into TF-IDF weighted
// bag-of-n-grams feature vectors.
package vectorizer

import (
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// DefaultMinDF is the minimum number of training documents a term must
// appear in to enter the vocabulary.
const DefaultMinDF = 2

// Vectorizer extracts unigram and bigram features weighted by
// term-frequency/inverse-document-frequency. Fit on the training split only;
// after that it is read-only and terms unseen at fit time are ignored.
//
// The exported fields are the full serializable state; Terms order fixes the
// feature column order.
type Vectorizer struct {
	MinDF int       `json:"min_df"`
	Terms []string  `json:"terms"`
	IDF   []float64 `json:"idf"`

	index map[string]int
}

// New creates an unfitted vectorizer with the default document-frequency cutoff.
func New() *Vectorizer {
	return &Vectorizer{MinDF: DefaultMinDF}
}

// Fit builds the vocabulary and IDF weights from the training texts.
// Terms below the document-frequency cutoff are dropped. The resulting
// vocabulary is sorted, so a given corpus always yields the same columns.
func (v *Vectorizer) Fit(texts []string) {
	df := make(map[string]int)
	for _, text := range texts {
		seen := make(map[string]bool)
		for _, term := range ngrams(text) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	v.Terms = v.Terms[:0]
	for term, n := range df {
		if n >= v.MinDF {
			v.Terms = append(v.Terms, term)
		}
	}
	sort.Strings(v.Terms)

	// Smoothed IDF: ln((1+N)/(1+df)) + 1.
	n := float64(len(texts))
	v.IDF = make([]float64, len(v.Terms))
	for i, term := range v.Terms {
		v.IDF[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	v.index = nil
}

// Transform maps texts to L2-normalized TF-IDF rows. Unknown terms
// contribute nothing; an all-unknown text maps to the zero vector.
func (v *Vectorizer) Transform(texts []string) [][]float64 {
	idx := v.termIndex()
	rows := make([][]float64, len(texts))
	for i, text := range texts {
		row := make([]float64, len(v.Terms))
		for _, term := range ngrams(text) {
			if j, ok := idx[term]; ok {
				row[j] += v.IDF[j]
			}
		}
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
		rows[i] = row
	}
	return rows
}

// NumFeatures returns the fitted vocabulary size.
func (v *Vectorizer) NumFeatures() int {
	return len(v.Terms)
}

// termIndex lazily rebuilds the term lookup; Terms may have been restored
// from a serialized artifact rather than set by Fit.
func (v *Vectorizer) termIndex() map[string]int {
	if v.index == nil {
		v.index = make(map[string]int, len(v.Terms))
		for i, term := range v.Terms {
			v.index[term] = i
		}
	}
	return v.index
}

// ngrams tokenizes on whitespace and emits unigrams followed by bigrams.
// Input is expected to be normalized already.
func ngrams(text string) []string {
	tokens := strings.Fields(text)
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
