package document

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// ErrMalformed marks a structured document that cannot be decoded.
var ErrMalformed = errors.New("malformed document")

const documentPart = "word/document.xml"

// DocxReader extracts body paragraphs from Office Open XML documents.
type DocxReader struct{}

func NewDocxReader() *DocxReader { return &DocxReader{} }

func (r *DocxReader) CanRead(ext string) bool {
	return ext == ".docx"
}

// Read returns the text of every top-level body paragraph, joined by newlines.
// Paragraphs nested in tables are not included.
func (r *DocxReader) Read(filePath string) (string, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open docx %s: %w", filePath, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("stat docx %s: %w", filePath, err)
	}

	// go-docx accepts packages without a main part and yields an empty body.
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("open docx %s: %w: %v", filePath, ErrMalformed, err)
	}
	if !hasPart(zr, documentPart) {
		return "", fmt.Errorf("open docx %s: %w: missing %s", filePath, ErrMalformed, documentPart)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("read docx %s: %w: %v", filePath, ErrMalformed, err)
	}

	var paragraphs []string
	for _, item := range doc.Document.Body.Items {
		if p, ok := item.(*docx.Paragraph); ok {
			paragraphs = append(paragraphs, p.String())
		}
	}
	return strings.Join(paragraphs, "\n"), nil
}

func hasPart(zr *zip.Reader, name string) bool {
	for _, f := range zr.File {
		if f.Name == name {
			return true
		}
	}
	return false
}
