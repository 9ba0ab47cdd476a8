/*
Package outline converts glyph outlines into SVG path data.

Outlines are taken from a go-text font face and stay in the font's design
units with the y-axis pointing upwards. Flipping the y-axis is left to the
document, which does it once for all glyphs with a single transform.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package outline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
)

// Outline is the extracted outline of a glyph, in design units.
type Outline struct {
	GID      font.GID
	Segments []opentype.Segment
	PathData string  // SVG path data; empty for glyphs without ink
	Advance  float64 // advance width
}

// IsEmpty reports whether the glyph has no ink.
func (o Outline) IsEmpty() bool {
	return o.PathData == ""
}

// UnsupportedGlyphError is returned for glyphs which are defined by bitmap
// or SVG data only and therefore have no outline to convert.
type UnsupportedGlyphError struct {
	GID  font.GID
	Kind string
}

func (e *UnsupportedGlyphError) Error() string {
	return fmt.Sprintf("glyph %d has no outline (glyph data of type %s)", e.GID, e.Kind)
}

// Extractor extracts glyph outlines from a font face. An Extractor must not
// be used concurrently, as go-text faces carry internal caches.
type Extractor struct {
	face *font.Face
}

// NewExtractor creates an outline extractor for a font face.
func NewExtractor(face *font.Face) *Extractor {
	return &Extractor{face: face}
}

// Extract returns the outline and advance width for glyph gid.
func (x *Extractor) Extract(gid font.GID) (Outline, error) {
	ol := Outline{
		GID:     gid,
		Advance: float64(x.face.HorizontalAdvance(gid)),
	}
	switch data := x.face.GlyphData(gid).(type) {
	case font.GlyphOutline:
		ol.Segments = data.Segments
	case nil:
		// no glyph data at all: treat like a glyph without contours
	default:
		return ol, &UnsupportedGlyphError{GID: gid, Kind: fmt.Sprintf("%T", data)}
	}
	ol.PathData = PathData(ol.Segments)
	return ol, nil
}

// PathData renders outline segments in the SVG path mini-language, using
// absolute commands. Every contour is closed with 'Z'. Axis-parallel lines
// are written as 'H' or 'V'. An empty segment list results in an empty
// string.
func PathData(segs []opentype.Segment) string {
	if len(segs) == 0 {
		return ""
	}
	w := pathWriter{}
	for _, seg := range segs {
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			w.closePath()
			w.command('M', seg.Args[0])
			w.start, w.open = seg.Args[0], true
		case opentype.SegmentOpLineTo:
			p := seg.Args[0]
			switch {
			case p.Y == w.current.Y && p.X != w.current.X:
				w.sb.WriteByte('H')
				w.number(p.X)
			case p.X == w.current.X && p.Y != w.current.Y:
				w.sb.WriteByte('V')
				w.number(p.Y)
			default:
				w.command('L', p)
			}
			w.current = p
		case opentype.SegmentOpQuadTo:
			w.command('Q', seg.Args[0], seg.Args[1])
		case opentype.SegmentOpCubeTo:
			w.command('C', seg.Args[0], seg.Args[1], seg.Args[2])
		}
	}
	w.closePath()
	return w.sb.String()
}

type pathWriter struct {
	sb      strings.Builder
	start   opentype.SegmentPoint
	current opentype.SegmentPoint
	open    bool
}

// command writes an op followed by its points; the last point becomes the
// current point.
func (w *pathWriter) command(op byte, pts ...opentype.SegmentPoint) {
	w.sb.WriteByte(op)
	for i, p := range pts {
		if i > 0 {
			w.sb.WriteByte(' ')
		}
		w.number(p.X)
		w.sb.WriteByte(' ')
		w.number(p.Y)
	}
	w.current = pts[len(pts)-1]
}

func (w *pathWriter) number(v float32) {
	w.sb.WriteString(FormatNumber(float64(v)))
}

func (w *pathWriter) closePath() {
	if !w.open {
		return
	}
	w.sb.WriteByte('Z')
	w.current, w.open = w.start, false
}

// FormatNumber formats a coordinate with the fewest digits that round-trip
// a float32 value. Integral values carry no decimal point.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0" // avoid "-0"
	}
	return strconv.FormatFloat(float64(float32(v)), 'f', -1, 32)
}
