package render

import (
	"bufio"
	"io"

	"glossary-extractor/internal/dictionary"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HTMLRenderer builds an HTML document tree and serializes it.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer { return &HTMLRenderer{} }

func (r *HTMLRenderer) Render(w io.Writer, terms *dictionary.Table, phrase string) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html)
	doc.AppendChild(root)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(textElement(atom.Title, "Glossary"))
	root.AppendChild(head)

	body := element(atom.Body)
	root.AppendChild(body)

	for _, e := range terms.Entries() {
		body.AppendChild(textElement(atom.H1, e.Word))
		body.AppendChild(textElement(atom.P, e.Meaning))
		if e.Reference != "" {
			body.AppendChild(textElement(atom.P, referenceLine(phrase, e.Reference),
				html.Attribute{Key: "style", Val: "font-style:italic;"}))
		}
	}

	bw := bufio.NewWriter(w)
	if err := html.Render(bw, doc); err != nil {
		return err
	}
	bw.WriteString("\n")
	return bw.Flush()
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textElement(a atom.Atom, text string, attrs ...html.Attribute) *html.Node {
	n := element(a, attrs...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
