package render

import (
	"bytes"
	"embed"
	"io"
	"io/fs"

	"glossary-extractor/internal/dictionary"

	"github.com/fumiama/go-docx"
)

//go:embed xml/default/word/styles.xml
var stylesFS embed.FS

const (
	templateName = "default"
	stylesPart   = "xml/" + templateName + "/word/styles.xml"
)

// templateFS serves the go-docx default template with a style sheet that
// defines Heading1.
type templateFS struct{}

func (templateFS) Open(name string) (fs.File, error) {
	if name == stylesPart {
		return stylesFS.Open(name)
	}
	return docx.TemplateXMLFS.Open(name)
}

// DocxRenderer writes a Word document: a Heading1 paragraph per term, the
// meaning, and an italic reference paragraph.
type DocxRenderer struct{}

func NewDocxRenderer() *DocxRenderer { return &DocxRenderer{} }

func (r *DocxRenderer) Render(w io.Writer, terms *dictionary.Table, phrase string) error {
	doc := docx.New().UseTemplate(templateName, docx.DefaultTemplateFilesList, templateFS{})

	for _, e := range terms.Entries() {
		preserveSpace(doc.AddParagraph().Style("Heading1").AddText(e.Word))
		preserveSpace(doc.AddParagraph().AddText(e.Meaning))
		if e.Reference != "" {
			preserveSpace(doc.AddParagraph().AddText(referenceLine(phrase, e.Reference)).Italic())
		}
	}

	// US Letter with one inch margins.
	doc.Document.Body.Items = append(doc.Document.Body.Items, &docx.SectPr{
		PgSz:  &docx.PgSz{W: 12240, H: 15840},
		PgMar: &docx.PgMar{Top: 1440, Right: 1440, Bottom: 1440, Left: 1440, Header: 720, Footer: 720},
	})

	// WriteTo drops the zip Close error; a buffer cannot fail to close.
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// preserveSpace keeps leading and trailing blanks of every text chunk.
func preserveSpace(run *docx.Run) {
	for _, c := range run.Children {
		if t, ok := c.(*docx.Text); ok {
			t.XMLSpace = "preserve"
		}
	}
}
