// Package document extracts plain text from input documents.
package document

import (
	"errors"
	"fmt"

	"glossary-extractor/internal/filewalker"
)

// ErrUnsupportedFormat marks an input file whose extension has no reader.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Reader is the interface for all input document formats.
type Reader interface {
	// CanRead returns true if this reader handles the given lowercase extension.
	CanRead(ext string) bool
	// Read returns the document's plain text.
	Read(filePath string) (string, error)
}

// Registry dispatches files to the reader registered for their extension.
type Registry struct {
	readers []Reader
}

// NewRegistry creates a Registry with the default readers.
func NewRegistry() *Registry {
	return &Registry{
		readers: []Reader{
			NewTextReader(),
			NewDocxReader(),
			NewPDFReader(),
		},
	}
}

// Extensions lists the input formats handled by the default registry.
func Extensions() []string {
	return []string{".txt", ".md", ".docx", ".pdf"}
}

// ReaderFor returns the reader for ext, or nil.
func (r *Registry) ReaderFor(ext string) Reader {
	for _, rd := range r.readers {
		if rd.CanRead(ext) {
			return rd
		}
	}
	return nil
}

// Read extracts text from filePath using the reader for its extension.
func (r *Registry) Read(filePath string) (string, error) {
	ext := filewalker.Ext(filePath)
	rd := r.ReaderFor(ext)
	if rd == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return rd.Read(filePath)
}
