package normalize

import (
	"strings"
	"testing"
	"unicode"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"sentence", "The cat sat on the mat. The cat ran!", "the cat sat on the mat the cat ran"},
		{"only punctuation", "!!! ... ???", ""},
		{"only whitespace", " \t  \r ", ""},
		{"mixed whitespace", "a\t\tb \n c\vd\fe", "a b c d e"},
		{"leading and trailing", "   Hello   World   ", "hello world"},
		{"digits and underscore", "Route_66 is 2 fast", "route_66 is 2 fast"},
		{"punctuation inside words", "don't re-use e.g.", "dont reuse eg"},
		{"punctuation between words", "one,two;three", "onetwothree"},
		{"punctuation surrounded by spaces", "a - b", "a b"},
		{"unicode letters", "Café NAÏVE", "café naïve"},
		{"no-break space", "a\u00a0b", "a b"},
		{"symbols", "price: $5 + 10% = ?", "price 5 10"},
		{"greek", "Καλημέρα, κόσμε!", "καλημέρα κόσμε"},
		{"cjk with ideographic space", "日本語\u3000テキスト。", "日本語 テキスト"},
		{"other numbers", "①②③ ²", "①②③ ²"},
		{"line separator", "x\u2028y", "x y"},
		{"information separator", "a\x1fb", "a b"},
		{"combining mark removed", "e\u0301", "e"},
	}

	n := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"The cat sat on the mat. The cat ran!",
		"  MULTIPLE   spaces\tand\ttabs  ",
		"!!! ... ???",
		"snake_case and CamelCase, 42 times",
		"Ünïcödé wörds — dashes – and «quotes»",
	}

	for _, in := range inputs {
		once := String(in)
		twice := String(once)
		if once != twice {
			t.Errorf("not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalizeOutputShape(t *testing.T) {
	inputs := []string{
		"Hello, World!  How are   you?",
		"\t\ttabs\tEVERYWHERE\t\t",
		"x_1 + y_2 = z_3;",
		"...leading dots and trailing dots...",
	}

	for _, in := range inputs {
		got := String(in)
		if got != strings.TrimSpace(got) {
			t.Errorf("%q: output %q has leading or trailing space", in, got)
		}
		if strings.Contains(got, "  ") {
			t.Errorf("%q: output %q has a double space", in, got)
		}
		for _, r := range got {
			switch {
			case r == ' ', r == '_':
			case unicode.IsDigit(r):
			case unicode.IsLetter(r) && !unicode.IsUpper(r):
			default:
				t.Errorf("%q: output %q contains %q", in, got, r)
			}
		}
	}
}

func TestNormalizeKeepsWordCharacters(t *testing.T) {
	inputs := []string{
		"Café NAÏVE",
		"Καλημέρα, κόσμε!",
		"日本語\u3000テキスト",
		"①②③ ² and 42",
		"snake_case, Ünïcödé; «quotes»",
		"Hello, World!",
	}

	for _, in := range inputs {
		got := String(in)
		kept := make(map[rune]int)
		for _, r := range got {
			kept[r]++
		}
		for _, r := range strings.ToLower(in) {
			if !IsWord(r) {
				continue
			}
			if kept[r] == 0 {
				t.Errorf("%q: word rune %q lost, got %q", in, r, got)
				continue
			}
			kept[r]--
		}
	}
}

func TestIsWordIsSpace(t *testing.T) {
	words := []rune{'a', 'Z', 'é', 'σ', '日', '7', '①', '_'}
	for _, r := range words {
		if !IsWord(r) || IsSpace(r) {
			t.Errorf("%q should be a word rune", r)
		}
	}
	spaces := []rune{' ', '\t', '\n', '\v', '\f', '\r', 0x1c, 0x1f, 0x85, 0xa0, 0x2028, 0x3000}
	for _, r := range spaces {
		if !IsSpace(r) || IsWord(r) {
			t.Errorf("%U should be whitespace", r)
		}
	}
	for _, r := range []rune{'.', '-', '$', '«', 0x0301} {
		if IsWord(r) || IsSpace(r) {
			t.Errorf("%U should be stripped", r)
		}
	}
}
