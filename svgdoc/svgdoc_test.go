package svgdoc

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/npillmayer/outlinesvg/layout"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioAB() *layout.Result {
	return &layout.Result{
		Glyphs: []layout.Glyph{
			{Char: 'A', GID: 1, PathData: "M0 0L300 700L600 0Z", Advance: 600, X: 0},
			{Char: 'B', GID: 2, PathData: "M0 0V700H500V0Z", Advance: 650, X: 750},
		},
		Width:         1400,
		Height:        1000,
		Ascender:      800,
		Descender:     -200,
		TrackingUnits: 150,
	}
}

func TestAssembleScenarioAB(t *testing.T) {
	doc := Assemble(scenarioAB(), Options{Fill: "#212529", Label: "AB"})
	want := `<svg xmlns="http://www.w3.org/2000/svg"
     viewBox="0 0 1400 1000"
     fill="#212529"
     role="img"
     aria-label="AB">
  <g transform="scale(1, -1) translate(0, -800)">
    <path d="M0 0L300 700L600 0Z" transform="translate(0, 0)"/>
    <path d="M0 0V700H500V0Z" transform="translate(750, 0)"/>
  </g>
</svg>
`
	assert.Equal(t, want, string(doc.Bytes()))
}

func TestAssembleSkipsGlyphsWithoutInk(t *testing.T) {
	result := &layout.Result{
		Glyphs: []layout.Glyph{
			{Char: 'A', PathData: "M0 0L1 1Z", Advance: 600, X: 0},
			{Char: ' ', Advance: 250, X: 750},
			{Char: 'B', PathData: "M0 0L2 2Z", Advance: 650, X: 1150},
		},
		Width:    1800,
		Height:   1000,
		Ascender: 800,
	}
	doc := Assemble(result, Options{Fill: "black"})
	require.Len(t, doc.Paths, 2)
	assert.Equal(t, 1150.0, doc.Paths[1].X)
	out := string(doc.Bytes())
	assert.Equal(t, 2, strings.Count(out, "<path "))
	assert.Contains(t, out, `viewBox="0 0 1800 1000"`, "space still occupies width")
	assert.NotContains(t, out, "aria-label", "no label configured")
}

func TestAssembleEmptyText(t *testing.T) {
	result := &layout.Result{Height: 1000, Ascender: 800, Descender: -200}
	out := string(Assemble(result, Options{Fill: "#000"}).Bytes())
	assert.Contains(t, out, `viewBox="0 0 0 1000"`)
	assert.Contains(t, out, `<g transform="scale(1, -1) translate(0, -800)">`)
	assert.NotContains(t, out, "<path")
}

func TestAssembleIsWellFormed(t *testing.T) {
	doc := Assemble(scenarioAB(), Options{Fill: `"red" & <blue>`, Label: `A&B "quoted"`})
	var parsed struct {
		XMLName xml.Name
		ViewBox string `xml:"viewBox,attr"`
		Fill    string `xml:"fill,attr"`
		Label   string `xml:"aria-label,attr"`
		Group   struct {
			Transform string `xml:"transform,attr"`
			Paths     []struct {
				D         string `xml:"d,attr"`
				Transform string `xml:"transform,attr"`
			} `xml:"path"`
		} `xml:"g"`
	}
	require.NoError(t, xml.Unmarshal(doc.Bytes(), &parsed))
	assert.Equal(t, "svg", parsed.XMLName.Local)
	assert.Equal(t, Namespace, parsed.XMLName.Space)
	assert.Equal(t, "0 0 1400 1000", parsed.ViewBox)
	assert.Equal(t, `"red" & <blue>`, parsed.Fill, "attribute values must round-trip through escaping")
	assert.Equal(t, `A&B "quoted"`, parsed.Label)
	assert.Equal(t, "scale(1, -1) translate(0, -800)", parsed.Group.Transform)
	require.Len(t, parsed.Group.Paths, 2)
	assert.Equal(t, "translate(750, 0)", parsed.Group.Paths[1].Transform)
}

func TestDocumentIsDeterministic(t *testing.T) {
	a := Assemble(scenarioAB(), Options{Fill: "#212529", Label: "AB"}).Bytes()
	b := Assemble(scenarioAB(), Options{Fill: "#212529", Label: "AB"}).Bytes()
	assert.True(t, bytes.Equal(a, b))
	//
	var buf bytes.Buffer
	n, err := Assemble(scenarioAB(), Options{Fill: "#212529", Label: "AB"}).WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(a)), n)
	assert.Equal(t, a, buf.Bytes())
}

func TestFractionalOffsets(t *testing.T) {
	result := &layout.Result{
		Glyphs: []layout.Glyph{
			{Char: 'x', PathData: "M0 0L1 1Z", X: 0},
			{Char: 'y', PathData: "M0 0L1 1Z", X: 1535.2},
		},
		Width:    2800.5,
		Height:   2400,
		Ascender: 1900,
	}
	out := string(Assemble(result, Options{}).Bytes())
	assert.Contains(t, out, `viewBox="0 0 2800.5 2400"`)
	assert.Contains(t, out, `transform="translate(1535.2, 0)"`)
	assert.NotContains(t, out, "fill=")
}

func TestLargeDimensionsKeepPrecision(t *testing.T) {
	result := &layout.Result{
		Glyphs: []layout.Glyph{
			{Char: 'x', PathData: "M0 0L1 1Z", X: 0},
			{Char: 'y', PathData: "M0 0L1 1Z", X: 12345678.25},
		},
		Width:    895772.7999999942,
		Height:   2400,
		Ascender: 1900,
	}
	doc := Assemble(result, Options{})
	assert.Equal(t, result.Width, doc.Width)
	out := string(doc.Bytes())
	assert.Contains(t, out, `viewBox="0 0 895772.7999999942 2400"`)
	assert.Contains(t, out, `transform="translate(12345678.25, 0)"`)
	assert.Contains(t, out, `translate(0, -1900)`)
}
