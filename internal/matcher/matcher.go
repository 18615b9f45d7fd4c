// Package matcher finds dictionary terms inside document text.
//
// A term matches when its lowercase form occurs anywhere in the lowercased
// text. There is no tokenization: "cache" matches "cacheable".
package matcher

import (
	"fmt"
	"strings"

	"glossary-extractor/internal/dictionary"
)

// Matcher returns the subset of terms present in text, in table order.
type Matcher interface {
	Match(text string, terms *dictionary.Table) *dictionary.Table
}

// Strategy names accepted by New.
const (
	StrategyScan  = "scan"
	StrategyIndex = "index"
)

// Strategies lists the accepted strategy names.
var Strategies = []string{StrategyScan, StrategyIndex}

// New returns the Matcher for a strategy name.
func New(strategy string) (Matcher, error) {
	switch strategy {
	case "", StrategyScan:
		return NewScanMatcher(), nil
	case StrategyIndex:
		return NewIndexMatcher(), nil
	default:
		return nil, fmt.Errorf("unknown matcher %q", strategy)
	}
}

// ScanMatcher tests every term against the text with a substring search.
type ScanMatcher struct{}

func NewScanMatcher() *ScanMatcher { return &ScanMatcher{} }

func (m *ScanMatcher) Match(text string, terms *dictionary.Table) *dictionary.Table {
	found := dictionary.NewTable()
	if terms.Len() == 0 || text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, e := range terms.Entries() {
		if e.Word != "" && strings.Contains(lower, e.Word) {
			found.Set(e)
		}
	}
	return found
}
