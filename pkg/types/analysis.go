// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records shared between the analysis engine and
// its collaborators (report rendering, export, CLI).
package types

import "time"

// DocumentSummary holds the basic statistics of a document.
type DocumentSummary struct {
	// WordCount is the number of whitespace-delimited words.
	WordCount int `json:"word_count" yaml:"word_count"`

	// SentenceCount counts the fragments that survive the sentence filter
	// (punctuation-run split, more than 20 characters after trimming).
	SentenceCount int `json:"sentence_count" yaml:"sentence_count"`

	// AvgSentenceLength is WordCount / max(SentenceCount, 1).
	AvgSentenceLength float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`

	// ParagraphCount is the number of blocks separated by a blank line.
	ParagraphCount int `json:"paragraph_count" yaml:"paragraph_count"`
}

// Count is one named counter in an ordered result such as methodology
// scores, concept frequencies, or research-component mentions.
type Count struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

// TheoryFinding records how often a theory's vocabulary occurs and which
// of its keywords matched at least once.
type TheoryFinding struct {
	Name  string   `json:"-" yaml:"-"`
	Count int      `json:"count" yaml:"count"`
	Terms []string `json:"terms" yaml:"terms"`
}

// CitationReport summarizes the author-year citations found in a document.
type CitationReport struct {
	// Total counts every pooled match, duplicates included.
	Total int `json:"total_citations" yaml:"total_citations"`

	// Unique counts the distinct matched strings.
	Unique int `json:"unique_citations" yaml:"unique_citations"`

	// Samples lists up to the configured number of distinct matches in
	// first-occurrence order.
	Samples []string `json:"sample_citations" yaml:"sample_citations"`
}

// KeywordCount is a content word and its frequency. It serializes as a
// two-element [word, count] array.
type KeywordCount struct {
	Word  string
	Count int
}

// AnalysisReport aggregates every component result for one document. It is
// built once per analysis and never modified afterwards.
type AnalysisReport struct {
	// FilePath identifies the analyzed source.
	FilePath string `json:"filepath" yaml:"filepath"`

	// Timestamp is captured when the analysis runs.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	Summary DocumentSummary `json:"summary" yaml:"summary"`

	// Methodology is dense: every methodology category appears, in
	// taxonomy declaration order.
	Methodology Counts `json:"methodology" yaml:"methodology"`

	// Theories holds only theories with at least one match, ordered by
	// descending count with declaration order breaking ties.
	Theories TheoryFindings `json:"theories" yaml:"theories"`

	// Concepts holds only matched concepts, ordered like Theories.
	Concepts Counts `json:"concepts" yaml:"concepts"`

	// Components holds only research components with at least one match,
	// in declaration order.
	Components Counts `json:"components" yaml:"components"`

	Citations CitationReport `json:"citations" yaml:"citations"`

	// Keywords is ranked by descending frequency, first appearance
	// breaking ties.
	Keywords []KeywordCount `json:"keywords" yaml:"keywords"`
}
