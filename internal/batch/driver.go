// Package batch runs the read and match steps over one input file or a
// whole directory of documents and unions the results.
package batch

import (
	"context"
	"fmt"
	"os"

	"glossary-extractor/internal/dictionary"
	"glossary-extractor/internal/document"
	"glossary-extractor/internal/filewalker"
	"glossary-extractor/internal/matcher"
	"glossary-extractor/internal/worker"

	"github.com/rs/zerolog"
)

// Driver applies a document reader and a matcher to every input document.
type Driver struct {
	registry *document.Registry
	matcher  matcher.Matcher
	walker   *filewalker.Walker
	workers  int
	logger   zerolog.Logger
}

// NewDriver creates a Driver. workers below 1 is treated as 1.
func NewDriver(registry *document.Registry, m matcher.Matcher, workers int, logger zerolog.Logger) *Driver {
	return &Driver{
		registry: registry,
		matcher:  m,
		walker:   filewalker.NewWalker(logger, document.Extensions()...),
		workers:  max(workers, 1),
		logger:   logger,
	}
}

// Run matches terms against inputPath. A file is read and matched once; a
// directory contributes every supported document beneath it, merged in
// sorted path order. Any read failure aborts the run.
func (d *Driver) Run(ctx context.Context, inputPath string, terms *dictionary.Table) (*dictionary.Table, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if !info.IsDir() {
		return d.processFile(ctx, inputPath, terms)
	}

	entries, err := d.walker.Walk(inputPath)
	if err != nil {
		return nil, fmt.Errorf("walk input directory: %w", err)
	}

	d.logger.Info().
		Int("files", len(entries)).
		Int("workers", d.workers).
		Str("root", inputPath).
		Msg("Starting batch")

	pool := worker.NewPool[filewalker.FileEntry, *dictionary.Table](d.workers,
		func(ctx context.Context, entry filewalker.FileEntry) (*dictionary.Table, error) {
			return d.processFile(ctx, entry.Path, terms)
		},
		d.logger,
	).FailFast()

	tasks := pool.Execute(ctx, entries)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}

	// Merge in discovery order, not completion order.
	all := dictionary.NewTable()
	for _, task := range tasks {
		if task.Err != nil {
			return nil, task.Err
		}
		all.Merge(task.Result)
	}

	d.logger.Info().
		Int("files", len(entries)).
		Int("terms", all.Len()).
		Msg("Batch complete")

	return all, nil
}

func (d *Driver) processFile(ctx context.Context, path string, terms *dictionary.Table) (*dictionary.Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.logger.Info().Str("file", path).Msg("Reading input file")

	text, err := d.registry.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", path, err)
	}

	found := d.matcher.Match(text, terms)
	d.logger.Info().Str("file", path).Int("terms", found.Len()).Msg("Found terms in text")

	return found, nil
}
