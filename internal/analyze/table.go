package analyze

// Entry is a token with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// FrequencyTable counts tokens and remembers the order in which distinct
// tokens were first seen.
type FrequencyTable struct {
	index   map[string]int // token -> position in entries
	entries []Entry
	total   int
}

// NewFrequencyTable creates an empty table.
func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{index: make(map[string]int)}
}

// Add records one occurrence of word.
func (t *FrequencyTable) Add(word string) {
	t.total++
	if i, ok := t.index[word]; ok {
		t.entries[i].Count++
		return
	}
	t.index[word] = len(t.entries)
	t.entries = append(t.entries, Entry{Word: word, Count: 1})
}

// Count returns the number of occurrences of word.
func (t *FrequencyTable) Count(word string) int {
	if i, ok := t.index[word]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct tokens.
func (t *FrequencyTable) Len() int {
	return len(t.entries)
}

// Total returns the sum of all counts.
func (t *FrequencyTable) Total() int {
	return t.total
}

// Entries returns a copy of the table in first-occurrence order.
func (t *FrequencyTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
