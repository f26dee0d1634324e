// Package textnorm cleans review text before feature extraction.
//
// Every component that builds model input (training, evaluation, inference)
// goes through Normalize, so the vocabulary seen at predict time matches the
// one the vectorizer was fit on.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Normalize lowercases s with Unicode case folding, replaces every rune that
// is not a word character or whitespace with a space, collapses whitespace
// runs to a single space, and trims the ends. Accented Italian vowels
// (à è é ì ò ó ù) are word characters and survive.
//
// Normalize is pure and idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = cases.Fold().String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isWordRune(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// ReviewText builds the model input text for a review: title and body joined
// by a space, then normalized. Callers pass "" for missing values.
func ReviewText(title, body string) string {
	return Normalize(title + " " + body)
}

// isWordRune mirrors the \w character class: letters, digits, underscore.
// Whitespace is handled separately by the Fields collapse in Normalize.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
