package document

import (
	"fmt"
	"os"

	"glossary-extractor/internal/textutil"
)

// TextReader handles plain text and Markdown. Markdown is returned as raw
// source, markup included.
type TextReader struct{}

func NewTextReader() *TextReader { return &TextReader{} }

func (r *TextReader) CanRead(ext string) bool {
	return ext == ".txt" || ext == ".md"
}

func (r *TextReader) Read(filePath string) (string, error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("read text file: %w", err)
	}
	text, err := textutil.Decode(raw)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", filePath, err)
	}
	return text, nil
}
