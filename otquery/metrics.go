package otquery

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/outlinesvg/internal/fontload"
	"golang.org/x/image/font/sfnt"
)

// ErrMetrics is wrapped by errors concerning the font-wide metric tables.
var ErrMetrics = errors.New("font metrics unavailable")

// --- Font Information -------------------------------------------------

// FontType returns "TrueType" for fonts with glyf outlines and "CFF" for
// fonts with PostScript outlines.
func FontType(f *fontload.ScalableFont) string {
	if f == nil || len(f.Binary) < 4 {
		return "unknown"
	}
	switch binary.BigEndian.Uint32(f.Binary[:4]) {
	case 0x00010000, 0x74727565: // 'true'
		return "TrueType"
	case 0x4F54544F: // 'OTTO'
		return "CFF"
	}
	return "unknown"
}

// FontMetrics retrieves selected metrics of a font.
//
// Vertical metrics are the typographic values of table 'OS/2', regardless of
// the USE_TYPO_METRICS flag. Values from 'hhea' are informational. Tables 'head' and 'OS/2' are required; a font lacking either one (or
// carrying a truncated version) results in an error wrapping ErrMetrics.
func FontMetrics(f *fontload.ScalableFont) (FontMetricsInfo, error) {
	metrics := FontMetricsInfo{}
	head, ok := HeadInfo(f)
	if !ok {
		return metrics, fmt.Errorf("%w: table 'head' missing or invalid", ErrMetrics)
	}
	metrics.UnitsPerEm = sfnt.Units(head.UnitsPerEm)
	os2, ok := OS2Info(f)
	if !ok {
		return metrics, fmt.Errorf("%w: table 'OS/2' missing or truncated", ErrMetrics)
	}
	metrics.Ascent = sfnt.Units(os2.TypoAscender)
	metrics.Descent = sfnt.Units(os2.TypoDescender)
	metrics.LineGap = sfnt.Units(os2.TypoLineGap)
	metrics.XHeight = sfnt.Units(os2.XHeight)
	metrics.CapHeight = sfnt.Units(os2.CapHeight)
	if hhea, ok := HHeaInfo(f); ok {
		metrics.HasHorizontalHeader = true
		metrics.HheaAscent = sfnt.Units(hhea.Ascender)
		metrics.HheaDescent = sfnt.Units(hhea.Descender)
		metrics.MaxAdvance = sfnt.Units(hhea.AdvanceWidthMax)
		metrics.NumberOfHMetrics = hhea.NumberOfHMetrics
	}
	if metrics.Descent > 0 {
		tracer().Infof("font has positive typo descender %d", metrics.Descent)
	}
	tracer().Debugf("font metrics: upem=%d ascent=%d descent=%d", metrics.UnitsPerEm,
		metrics.Ascent, metrics.Descent)
	return metrics, nil
}

// --- Glyph Routines --------------------------------------------------------

// GlyphIndex returns the glyph index for a given code-point, using the best
// character map the font provides. If the code-point is not mapped, the
// second return value is false.
//
// Unlike a plain 'cmap' lookup, which maps unknown code-points to glyph 0
// ('.notdef'), the absence of a mapping is reported explicitly.
func GlyphIndex(f *fontload.ScalableFont, codepoint rune) (font.GID, bool) {
	gid, ok := f.Face.NominalGlyph(codepoint)
	if !ok || gid == 0 {
		return 0, false
	}
	return gid, true
}

// GlyphMetrics retrieves horizontal metrics for a given glyph from table
// 'hmtx'. Returns false if the glyph index is out of range or the tables are
// not present.
func GlyphMetrics(f *fontload.ScalableFont, gid font.GID) (GlyphMetricsInfo, bool) {
	metrics := GlyphMetricsInfo{}
	hhea, ok := HHeaInfo(f)
	if !ok {
		return metrics, false
	}
	hmtx, ok := f.Table("hmtx")
	if !ok {
		return metrics, false
	}
	aw, lsb, ok := hmetrics(hmtx, int(hhea.NumberOfHMetrics), int(gid))
	if !ok {
		return metrics, false
	}
	metrics.Advance = sfnt.Units(aw)
	metrics.LSB = sfnt.Units(lsb)
	return metrics, true
}

// hmetrics decodes an entry of table 'hmtx'. Glyphs beyond numberOfHMetrics
// share the last advance width and carry a left side bearing only.
func hmetrics(b []byte, numberOfHMetrics int, gid int) (uint16, int16, bool) {
	if numberOfHMetrics == 0 || len(b) < 4*numberOfHMetrics || gid < 0 {
		return 0, 0, false
	}
	if gid < numberOfHMetrics {
		return u16(b[4*gid:]), i16(b[4*gid+2:]), true
	}
	aw := u16(b[4*(numberOfHMetrics-1):])
	pos := 4*numberOfHMetrics + 2*(gid-numberOfHMetrics)
	if pos+2 > len(b) {
		return 0, 0, false
	}
	return aw, i16(b[pos:]), true
}
