// Package oneloop reads a line of text and reports word-frequency statistics.
//
// The pipeline has three stages:
//   - [Normalize] lowercases text, drops everything that is not a word
//     character or whitespace, and collapses whitespace to single spaces
//   - [Analyze] counts tokens in one pass and computes totals, the average
//     word length and the most frequent words
//   - [WriteReport] renders the fixed-width console report
//
// # Quick Start
//
//	report := oneloop.Analyze(oneloop.Normalize("The cat sat on the mat."))
//	fmt.Println(report.TotalWords) // 6
//
// [Run] wires the stages to an interactive session: it prints the welcome
// banner, reads one line, and either exits early or prints the report.
//
//	res, err := oneloop.Run(&oneloop.Config{Input: os.Stdin, Output: os.Stdout})
//
// # Top Words
//
// Top words are sorted by count, descending. Words with equal counts keep the
// order in which they first appeared in the text.
//
// # Rounding
//
// The average word length is rounded to one decimal place. Exact ties round
// to even, the same way %.1f prints them.
//
// # Error Handling
//
// Empty input and input without any word characters are not errors; they are
// reported through [Result.Status]. Only I/O failures are returned:
//   - [InputError]: reading the input line failed
//   - [OutputError]: writing to the output failed
package oneloop
