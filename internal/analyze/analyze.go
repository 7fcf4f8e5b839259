// Package analyze computes word-frequency statistics over normalized text.
package analyze

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultTopN is the number of most frequent words kept in a report.
const DefaultTopN = 5

// Report holds the statistics for one piece of text.
type Report struct {
	TotalWords    int
	UniqueWords   int
	AverageLength float64 // rounded to one decimal
	TopWords      []Entry

	// Frequencies is the full table the report was built from.
	// Nil for empty input.
	Frequencies *FrequencyTable
}

// Analyze computes a report for normalized text, keeping the topN most
// frequent words (DefaultTopN if topN <= 0).
//
// Tokens are counted in a single pass. Top words are ordered by count,
// descending; equal counts keep first-occurrence order.
func Analyze(text string, topN int) *Report {
	if text == "" {
		return &Report{TopWords: []Entry{}}
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	words := strings.Fields(text)
	table := NewFrequencyTable()
	totalLen := 0
	for _, w := range words {
		table.Add(w)
		totalLen += utf8.RuneCountInString(w)
	}

	var avg float64
	if len(words) > 0 {
		avg = Round1(float64(totalLen) / float64(len(words)))
	}

	return &Report{
		TotalWords:    len(words),
		UniqueWords:   table.Len(),
		AverageLength: avg,
		TopWords:      Top(table, topN),
		Frequencies:   table,
	}
}

// Top returns up to n entries of t sorted by count, descending.
// The sort is stable, so ties stay in first-occurrence order.
func Top(t *FrequencyTable, n int) []Entry {
	entries := t.Entries()
	slices.SortStableFunc(entries, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// Round1 rounds x to one decimal place. Exact ties round to even, matching
// what %.1f prints for the same value.
func Round1(x float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	return r
}
