// Package normalize reduces raw text to lowercase word characters separated
// by single spaces.
//
// The pipeline runs in a fixed order:
//  1. Unicode lowercasing
//  2. removal of every rune that is neither a word character nor whitespace
//  3. mapping of every whitespace rune to ' '
//  4. collapsing runs of spaces and trimming the ends
//
// Word characters are Unicode letters, Unicode numbers and '_'.
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"github.com/coregx/coregex"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// spaceRun matches the runs left behind once all whitespace is ' '.
var spaceRun = coregex.MustCompile(` +`)

// pool of fresh transformer chains; lowercasing is stateful
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			cases.Lower(language.Und),
			runes.Remove(runes.Predicate(isStripped)),
			runes.Map(toSpace),
		)
	},
}

// IsWord reports whether r is a word character.
func IsWord(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// IsSpace reports whether r is whitespace: the Unicode White_Space runes
// plus the ASCII information separators U+001C..U+001F.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func isStripped(r rune) bool {
	return !IsWord(r) && !IsSpace(r)
}

func toSpace(r rune) rune {
	if IsSpace(r) {
		return ' '
	}
	return r
}

// Normalizer applies the normalization pipeline. It is safe for concurrent use.
type Normalizer struct{}

// New constructs a Normalizer.
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the normalized form of s. It never fails; an input with
// no word characters yields the empty string.
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	ns = spaceRun.ReplaceAllString(ns, " ")
	return strings.Trim(ns, " ")
}

var defaultNormalizer = New()

// String normalizes s with a shared Normalizer.
func String(s string) string {
	return defaultNormalizer.Normalize(s)
}
