// Package render writes a glossary of matched terms in one of the supported
// output formats.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"glossary-extractor/internal/dictionary"
)

// ErrUnsupportedFormat marks an unknown output format name.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Format identifies an output format.
type Format string

const (
	FormatDocx     Format = "docx"
	FormatHTML     Format = "html"
	FormatText     Format = "txt"
	FormatMarkdown Format = "md"
)

// Formats lists the accepted format names, default first.
func Formats() []string {
	return []string{string(FormatDocx), string(FormatHTML), string(FormatText), string(FormatMarkdown)}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatDocx, FormatHTML, FormatText, FormatMarkdown:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// DefaultOutputPath is the file written when no output path is given.
func DefaultOutputPath(f Format) string {
	return "output." + string(f)
}

// Renderer writes every term in table order: a heading with the word, the
// meaning, and a "<phrase> <reference>" line only when the reference is set.
type Renderer interface {
	Render(w io.Writer, terms *dictionary.Table, phrase string) error
}

// RendererFor returns the Renderer for f.
func RendererFor(f Format) (Renderer, error) {
	switch f {
	case FormatDocx:
		return NewDocxRenderer(), nil
	case FormatHTML:
		return NewHTMLRenderer(), nil
	case FormatText:
		return NewTextRenderer(), nil
	case FormatMarkdown:
		return NewMarkdownRenderer(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// Save renders terms to path. Output goes to a temporary file next to path
// and is renamed into place only after rendering succeeds.
func Save(path string, f Format, terms *dictionary.Table, phrase string) error {
	r, err := RendererFor(f)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := r.Render(tmp, terms, phrase); err != nil {
		tmp.Close()
		return fmt.Errorf("render %s: %w", f, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod output file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}
	return nil
}

func referenceLine(phrase, reference string) string {
	return phrase + " " + reference
}
