/*
Package svgdoc assembles a standalone SVG document from a laid-out line of
text.

The document keeps all coordinates in font design units. Glyph outlines are
written unchanged; a single group transform flips the y-axis and moves the
baseline down by the ascender, so the top-left corner of the viewBox sits at
(0, ascender) in font space:

	<svg xmlns="http://www.w3.org/2000/svg"
	     viewBox="0 0 W H"
	     fill="#212529"
	     role="img"
	     aria-label="Steinsiek">
	  <g transform="scale(1, -1) translate(0, -A)">
	    <path d="M…Z" transform="translate(x, 0)"/>
	  </g>
	</svg>

The fill color is set once on the root element and inherited by every path.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package svgdoc

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	"github.com/npillmayer/outlinesvg/layout"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Options control the presentation attributes of a document.
type Options struct {
	Fill  string // fill color of all glyphs, e.g. "#212529"
	Label string // accessible name; aria-label is omitted if empty
}

// Path is a glyph outline placed at a horizontal offset.
type Path struct {
	Char rune
	D    string // path data in design units, y-axis up
	X    float64
}

// Document is an SVG document for a single line of text.
type Document struct {
	Width    float64
	Height   float64
	Ascender float64
	Fill     string
	Label    string
	Paths    []Path // in text order
}

// Assemble creates a document from a layout result. Glyphs without ink do not
// produce a path, but their advance is part of the document's width.
func Assemble(result *layout.Result, opts Options) *Document {
	doc := &Document{
		Fill:  opts.Fill,
		Label: opts.Label,
	}
	if result == nil {
		return doc
	}
	doc.Width = result.Width
	doc.Height = result.Height
	doc.Ascender = result.Ascender
	doc.Paths = make([]Path, 0, len(result.Glyphs))
	for _, g := range result.Glyphs {
		if !g.HasInk() {
			continue
		}
		doc.Paths = append(doc.Paths, Path{Char: g.Char, D: g.PathData, X: g.X})
	}
	return doc
}

// WriteTo writes the serialized document to w.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(doc.Bytes())
	return int64(n), err
}

// Bytes returns the serialized document. Serialization is deterministic:
// equal documents produce identical bytes.
func (doc *Document) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="` + Namespace + `"` + "\n")
	buf.WriteString(`     viewBox="0 0 `)
	buf.WriteString(num(doc.Width))
	buf.WriteByte(' ')
	buf.WriteString(num(doc.Height))
	buf.WriteByte('"')
	if doc.Fill != "" {
		buf.WriteString("\n     ")
		attr(&buf, "fill", doc.Fill)
	}
	buf.WriteString("\n     ")
	attr(&buf, "role", "img")
	if doc.Label != "" {
		buf.WriteString("\n     ")
		attr(&buf, "aria-label", doc.Label)
	}
	buf.WriteString(">\n")
	buf.WriteString(`  <g transform="scale(1, -1) translate(0, `)
	buf.WriteString(num(-doc.Ascender))
	buf.WriteString(`)">` + "\n")
	for _, p := range doc.Paths {
		buf.WriteString("    <path ")
		attr(&buf, "d", p.D)
		buf.WriteString(` transform="translate(`)
		buf.WriteString(num(p.X))
		buf.WriteString(`, 0)"/>` + "\n")
	}
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func attr(buf *bytes.Buffer, name, value string) {
	buf.WriteString(name)
	buf.WriteString(`="`)
	_ = xml.EscapeText(buf, []byte(value)) // bytes.Buffer does not fail
	buf.WriteByte('"')
}

// num formats document dimensions and offsets with the fewest digits that
// round-trip the float64 value. Path data keeps its float32 precision.
func num(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
