// Package dictionary loads glossary sources and merges them into a single
// term table keyed by lowercase word.
package dictionary

import "strings"

// Entry is a single glossary definition.
type Entry struct {
	// Word is the lowercase form used as the table key.
	Word string `json:"word"`
	// Meaning is the definition text shown to the reader.
	Meaning string `json:"meaning"`
	// Reference is an optional "see also" pointer, empty when absent.
	Reference string `json:"reference,omitempty"`
}

// Table maps lowercase words to entries and remembers the order in which
// each word was first inserted. Replacing an existing word keeps its position.
type Table struct {
	index   map[string]int
	entries []Entry
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Set stores e under its lowercased word. It reports whether an existing
// entry was replaced.
func (t *Table) Set(e Entry) bool {
	e.Word = strings.ToLower(e.Word)
	if i, ok := t.index[e.Word]; ok {
		t.entries[i] = e
		return true
	}
	t.index[e.Word] = len(t.entries)
	t.entries = append(t.entries, e)
	return false
}

// Get looks up an entry case-insensitively.
func (t *Table) Get(word string) (Entry, bool) {
	i, ok := t.index[strings.ToLower(word)]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Len returns the number of distinct words.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the entries in insertion order.
func (t *Table) Entries() []Entry {
	if t.Len() == 0 {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Words returns the keys in insertion order.
func (t *Table) Words() []string {
	if t.Len() == 0 {
		return nil
	}
	words := make([]string, len(t.entries))
	for i, e := range t.entries {
		words[i] = e.Word
	}
	return words
}

// Merge copies every entry of other into t, in other's order. Entries already
// present are overwritten in place.
func (t *Table) Merge(other *Table) {
	if other == nil {
		return
	}
	for _, e := range other.entries {
		t.Set(e)
	}
}
