package oneloop

import (
	"io"

	"github.com/kolkov/oneloop/internal/analyze"
	"github.com/kolkov/oneloop/internal/normalize"
	"github.com/kolkov/oneloop/internal/report"
)

// Version is the oneloop version string.
const Version = "0.1.0"

// Report holds the statistics for one piece of text:
// total words, unique words, the average word length rounded to one decimal,
// and up to TopN most frequent words.
type Report = analyze.Report

// WordCount is a word with its number of occurrences.
type WordCount = analyze.Entry

// Normalize lowercases text, removes every character that is not a word
// character or whitespace, collapses whitespace runs to a single space and
// trims the result. It accepts any input, including the empty string.
//
// Example:
//
//	oneloop.Normalize("The cat sat on the mat. The cat ran!")
//	// "the cat sat on the mat the cat ran"
func Normalize(text string) string {
	return normalize.String(text)
}

// Analyze computes the report for already normalized text, keeping the five
// most frequent words. Empty text yields a zero report.
func Analyze(normalized string) *Report {
	return analyze.Analyze(normalized, analyze.DefaultTopN)
}

// AnalyzeWithConfig is like Analyze but honors config.TopN.
// A nil config uses the defaults.
func AnalyzeWithConfig(normalized string, config *Config) *Report {
	topN := analyze.DefaultTopN
	if config != nil && config.TopN > 0 {
		topN = config.TopN
	}
	return analyze.Analyze(normalized, topN)
}

// FormatReport renders r as the console report.
func FormatReport(r *Report) string {
	return report.Format(r)
}

// WriteReport writes the console report for r to w.
func WriteReport(w io.Writer, r *Report) error {
	if err := report.Write(w, r); err != nil {
		return &OutputError{Err: err}
	}
	return nil
}
