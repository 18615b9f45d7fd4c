package filewalker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// Walker discovers files with a given set of extensions under a directory tree.
type Walker struct {
	extensions map[string]bool
	logger     zerolog.Logger
}

// NewWalker creates a Walker accepting the given extensions. Extensions are
// compared case-insensitively and must include the leading dot.
func NewWalker(logger zerolog.Logger, extensions ...string) *Walker {
	exts := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		exts[strings.ToLower(ext)] = true
	}
	return &Walker{extensions: exts, logger: logger}
}

// FileEntry represents a discovered file ready for processing.
type FileEntry struct {
	Path string
	Ext  string
}

// Supports reports whether path carries one of the walker's extensions.
func (w *Walker) Supports(path string) bool {
	return w.extensions[Ext(path)]
}

// Walk discovers all supported files under root, sorted lexicographically by
// path so that processing order does not depend on the filesystem.
func (w *Walker) Walk(root string) ([]FileEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", root)
	}

	var entries []FileEntry

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		if !w.Supports(path) {
			return nil
		}

		entries = append(entries, FileEntry{Path: path, Ext: Ext(path)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})

	w.logger.Debug().Int("count", len(entries)).Str("root", root).Msg("Discovered files")
	return entries, nil
}

// Ext returns the lowercase extension of path, including the dot.
func Ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
