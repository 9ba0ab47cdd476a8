package otquery

import "golang.org/x/image/font/sfnt"

// FontMetricsInfo contains selected metric information for a font.
// Ascent and Descent are the typographic values from table 'OS/2';
// Descent is negative for fonts that extend below the baseline.
type FontMetricsInfo struct {
	UnitsPerEm          sfnt.Units // ad-hoc units per em
	Ascent, Descent     sfnt.Units // typographic ascender and descender
	LineGap             sfnt.Units // typographic line gap
	HheaAscent          sfnt.Units // ascender from table 'hhea'
	HheaDescent         sfnt.Units // descender from table 'hhea'
	MaxAdvance          sfnt.Units // maximum advance width value in 'hmtx' table
	XHeight, CapHeight  sfnt.Units // zero for OS/2 versions < 2
	NumberOfHMetrics    uint16
	HasHorizontalHeader bool
}

// Height returns the nominal vertical extent of the font, i.e. the distance
// between typographic ascender and descender.
func (m FontMetricsInfo) Height() sfnt.Units {
	return m.Ascent - m.Descent
}

// GlyphMetricsInfo contains horizontal metric information for a glyph.
type GlyphMetricsInfo struct {
	Advance sfnt.Units // advance width
	LSB     sfnt.Units // left side bearing
}
