package matcher

import (
	"strings"
	"sync"

	"glossary-extractor/internal/dictionary"

	"github.com/cloudflare/ahocorasick"
)

// IndexMatcher scans the text once with an Aho-Corasick automaton built over
// the table's words. The automaton is rebuilt when a different table is passed.
type IndexMatcher struct {
	mu      sync.Mutex
	table   *dictionary.Table
	entries []dictionary.Entry
	ac      *ahocorasick.Matcher
}

func NewIndexMatcher() *IndexMatcher { return &IndexMatcher{} }

func (m *IndexMatcher) Match(text string, terms *dictionary.Table) *dictionary.Table {
	found := dictionary.NewTable()
	if terms.Len() == 0 || text == "" {
		return found
	}

	lower := strings.ToLower(text)

	// ahocorasick.Matcher keeps per-scan state and must not be shared.
	m.mu.Lock()
	if m.table != terms {
		m.build(terms)
	}
	hits := m.ac.Match([]byte(lower))
	entries := m.entries
	m.mu.Unlock()

	matched := make([]bool, len(entries))
	for _, i := range hits {
		matched[i] = true
	}
	for i, e := range entries {
		if matched[i] {
			found.Set(e)
		}
	}
	return found
}

func (m *IndexMatcher) build(terms *dictionary.Table) {
	m.table = terms
	m.entries = terms.Entries()
	words := make([]string, len(m.entries))
	for i, e := range m.entries {
		words[i] = e.Word
	}
	m.ac = ahocorasick.NewStringMatcher(words)
}
