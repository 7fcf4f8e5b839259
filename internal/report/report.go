// Package report renders analysis results as the fixed-width console report.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kolkov/oneloop/internal/analyze"
)

// BannerWidth is the number of '=' characters in a banner line.
const BannerWidth = 50

// WordWidth is the minimum field width of a word in the top-words section.
// Longer words are printed in full.
const WordWidth = 15

// Banner is a full-width separator line.
var Banner = strings.Repeat("=", BannerWidth)

const (
	welcomeTitle = "         Welcome to OneLoop Analyzer"
	reportTitle  = "           OneLoop Analyzer Report"
	prompt       = "Enter your text:"

	noInputMessage     = "No input provided. Exiting."
	noValidTextMessage = "No valid text found after cleaning. Exiting."
	doneMessage        = "Analysis completed successfully."
)

// Welcome returns the greeting banner followed by the input prompt.
func Welcome() string {
	var sb strings.Builder
	sb.WriteString(Banner + "\n")
	sb.WriteString(welcomeTitle + "\n")
	sb.WriteString(Banner + "\n")
	sb.WriteString("\n" + prompt + "\n")
	return sb.String()
}

// Format renders r as report text.
func Format(r *analyze.Report) string {
	var sb strings.Builder
	sb.WriteString("\n" + Banner + "\n")
	sb.WriteString(reportTitle + "\n")
	sb.WriteString(Banner + "\n")
	fmt.Fprintf(&sb, "Total Words      : %d\n", r.TotalWords)
	fmt.Fprintf(&sb, "Unique Words     : %d\n", r.UniqueWords)
	fmt.Fprintf(&sb, "Average Word Length: %s\n", FormatAverage(r.AverageLength))

	if len(r.TopWords) > 0 {
		sb.WriteString("\nMost Common Words:\n")
		for _, e := range r.TopWords {
			fmt.Fprintf(&sb, "  %-*s : %d\n", WordWidth, e.Word, e.Count)
		}
	}

	sb.WriteString(Banner + "\n")
	sb.WriteString(doneMessage + "\n")
	return sb.String()
}

// FormatAverage prints an average with exactly one decimal place.
func FormatAverage(avg float64) string {
	return strconv.FormatFloat(avg, 'f', 1, 64)
}

// WriteWelcome writes the greeting banner and prompt to w.
func WriteWelcome(w io.Writer) error {
	_, err := io.WriteString(w, Welcome())
	return err
}

// Write writes the report for r to w.
func Write(w io.Writer, r *analyze.Report) error {
	_, err := io.WriteString(w, Format(r))
	return err
}

// WriteNoInput writes the message for an empty input line.
func WriteNoInput(w io.Writer) error {
	_, err := io.WriteString(w, "\n"+noInputMessage+"\n")
	return err
}

// WriteNoValidText writes the message for input that normalized to nothing.
func WriteNoValidText(w io.Writer) error {
	_, err := io.WriteString(w, "\n"+noValidTextMessage+"\n")
	return err
}
