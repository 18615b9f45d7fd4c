package render

import (
	"bufio"
	"fmt"
	"io"

	"glossary-extractor/internal/dictionary"
)

// TextRenderer writes plain lines with a blank line after each term.
type TextRenderer struct{}

func NewTextRenderer() *TextRenderer { return &TextRenderer{} }

func (r *TextRenderer) Render(w io.Writer, terms *dictionary.Table, phrase string) error {
	bw := bufio.NewWriter(w)
	for _, e := range terms.Entries() {
		fmt.Fprintf(bw, "%s\n%s\n", e.Word, e.Meaning)
		if e.Reference != "" {
			fmt.Fprintf(bw, "%s\n", referenceLine(phrase, e.Reference))
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}

// MarkdownRenderer writes a level-one heading per term and italicises the
// reference line.
type MarkdownRenderer struct{}

func NewMarkdownRenderer() *MarkdownRenderer { return &MarkdownRenderer{} }

func (r *MarkdownRenderer) Render(w io.Writer, terms *dictionary.Table, phrase string) error {
	bw := bufio.NewWriter(w)
	for _, e := range terms.Entries() {
		fmt.Fprintf(bw, "# %s\n\n%s\n\n", e.Word, e.Meaning)
		if e.Reference != "" {
			fmt.Fprintf(bw, "*%s*\n\n", referenceLine(phrase, e.Reference))
		}
	}
	return bw.Flush()
}
