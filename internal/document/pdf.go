package document

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFReader extracts page text from PDF files.
type PDFReader struct{}

func NewPDFReader() *PDFReader { return &PDFReader{} }

func (r *PDFReader) CanRead(ext string) bool {
	return ext == ".pdf"
}

// Read concatenates the plain text of every page in page order, with no
// separator between pages.
func (r *PDFReader) Read(filePath string) (text string, err error) {
	// The pdf package panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("extract pdf %s: %w: %v", filePath, ErrMalformed, rec)
		}
	}()

	f, rd, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w: %v", filePath, ErrMalformed, err)
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= rd.NumPage(); i++ {
		page := rd.Page(i)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract pdf %s page %d: %w", filePath, i, err)
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}
