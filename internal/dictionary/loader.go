package dictionary

import (
	"fmt"
	"os"

	"glossary-extractor/internal/filewalker"
	"glossary-extractor/internal/textutil"

	"github.com/rs/zerolog"
)

// Stats summarises a load.
type Stats struct {
	Sources    []string
	Records    int
	Overwrites int
}

// Loader resolves dictionary paths and merges their records into a Table.
type Loader struct {
	walker *filewalker.Walker
	logger zerolog.Logger
}

// NewLoader creates a Loader.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{
		walker: filewalker.NewWalker(logger, SourceExtensions...),
		logger: logger,
	}
}

// ExpandSources flattens paths into an ordered list of dictionary files.
// Directories contribute their .json and .csv files in sorted order; any
// other path is taken as-is.
func (l *Loader) ExpandSources(paths []string) ([]string, error) {
	var sources []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat dictionary path: %w", err)
		}
		if !info.IsDir() {
			sources = append(sources, p)
			continue
		}

		entries, err := l.walker.Walk(p)
		if err != nil {
			return nil, fmt.Errorf("expand dictionary directory %s: %w", p, err)
		}
		for _, e := range entries {
			sources = append(sources, e.Path)
		}
	}
	return sources, nil
}

// Load builds the term table. Sources are applied in order, so a word defined
// by several files keeps the definition from the last one. Any failing source
// aborts the whole load.
func (l *Loader) Load(paths []string) (*Table, Stats, error) {
	sources, err := l.ExpandSources(paths)
	if err != nil {
		return nil, Stats{}, err
	}

	table := NewTable()
	stats := Stats{Sources: sources}

	for _, src := range sources {
		l.logger.Info().Str("file", src).Msg("Loading dictionary file")

		entries, err := ParseFile(src)
		if err != nil {
			l.logger.Error().Err(err).Str("file", src).Msg("Error loading dictionary file")
			return nil, Stats{}, fmt.Errorf("load dictionary %s: %w", src, err)
		}

		for _, e := range entries {
			stats.Records++
			if table.Set(e) {
				stats.Overwrites++
				l.logger.Debug().
					Str("word", e.Word).
					Str("file", src).
					Str("meaning", textutil.Truncate(e.Meaning, 40)).
					Msg("Overwrote dictionary entry")
			}
		}
	}

	l.logger.Info().
		Int("sources", len(sources)).
		Int("records", stats.Records).
		Int("terms", table.Len()).
		Int("overwrites", stats.Overwrites).
		Msg("Dictionaries loaded")

	return table, stats, nil
}
