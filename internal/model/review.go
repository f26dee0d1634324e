package model

import "time"

// Review is a single hotel review record, as stored in the dataset CSV.
// Title and Body may be empty at inference time.
type Review struct {
	ID         string // 12-char hex token
	Title      string
	Body       string
	Department string // one of Departments; empty for unlabeled input
	Sentiment  string // one of Sentiments; empty for unlabeled input
}

// Prediction is the output for a single classified review.
// Created per inference call, never mutated afterwards.
type Prediction struct {
	ID         string    `json:"id"`
	Department string    `json:"department"`
	Sentiment  string    `json:"sentiment"`
	Timestamp  time.Time `json:"timestamp"`
}

// Departments are the three department classes, in canonical order.
var Departments = []string{"Housekeeping", "Reception", "F&B"}

// Sentiments are the two polarity classes, in canonical order.
var Sentiments = []string{"positive", "negative"}
