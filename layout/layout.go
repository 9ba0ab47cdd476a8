/*
Package layout places glyphs along a single baseline.

The layout engine works in font design units. It advances a horizontal
cursor by each glyph's advance width plus a uniform tracking amount, which is
inserted between glyphs but not after the last one. The vertical extent of a
layout is taken from the font's nominal ascender and descender, never from
the ink of the glyphs actually set.

The engine does not know about font files. It consumes a Resolver for
mapping characters to glyphs and an Extractor for glyph outlines.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'outlinesvg.layout'
func tracer() tracing.Trace {
	return tracing.Select("outlinesvg.layout")
}

// GlyphID identifies a glyph within a font.
type GlyphID uint32

// Resolver maps a character to a glyph. A character without a mapping in
// the font yields ok == false.
type Resolver interface {
	LookupGlyph(r rune) (gid GlyphID, ok bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(rune) (GlyphID, bool)

// LookupGlyph calls f(r).
func (f ResolverFunc) LookupGlyph(r rune) (GlyphID, bool) {
	return f(r)
}

// Extractor provides the outline of a glyph as SVG path data together with
// its advance width, both in design units. Glyphs without ink have empty
// path data.
type Extractor interface {
	ExtractOutline(gid GlyphID) (pathData string, advance float64, err error)
}

// GlyphNotFoundError is returned if a character has no glyph in the font.
type GlyphNotFoundError struct {
	Char rune
}

func (e *GlyphNotFoundError) Error() string {
	return fmt.Sprintf("character %q (%U) not found in font", e.Char, e.Char)
}

// Resolve maps a character to a glyph, reporting a missing mapping as a
// *GlyphNotFoundError.
func Resolve(res Resolver, r rune) (GlyphID, error) {
	gid, ok := res.LookupGlyph(r)
	if !ok {
		return 0, &GlyphNotFoundError{Char: r}
	}
	return gid, nil
}

// VerticalMetrics are the font-wide nominal vertical metrics, in design
// units. Descender is negative (or zero) for fonts reaching below the baseline.
type VerticalMetrics struct {
	Ascender  float64
	Descender float64
}

// Height returns the nominal height of a line of text: ascender − descender.
func (vm VerticalMetrics) Height() float64 {
	return vm.Ascender - vm.Descender
}

// Glyph is a glyph placed on the baseline.
type Glyph struct {
	Char     rune
	GID      GlyphID
	PathData string  // empty for glyphs without ink
	Advance  float64 // advance width of the glyph
	X        float64 // horizontal offset of the glyph's origin
}

// HasInk reports whether the glyph contributes a path to a document.
func (g Glyph) HasInk() bool {
	return g.PathData != ""
}

// Result is a laid-out line of text.
type Result struct {
	Glyphs        []Glyph // in text order
	Width         float64 // total advance, without trailing tracking
	Height        float64 // ascender − descender
	Ascender      float64
	Descender     float64
	TrackingUnits float64 // tracking in design units
}

// InkCount returns the number of glyphs which have an outline.
func (r *Result) InkCount() int {
	n := 0
	for _, g := range r.Glyphs {
		if g.HasInk() {
			n++
		}
	}
	return n
}

// Engine lays out text on a single baseline.
type Engine struct {
	Resolver   Resolver
	Extractor  Extractor
	Metrics    VerticalMetrics
	UnitsPerEm float64
	Tracking   float64 // fraction of the em, added between glyphs
}

// ErrInvalidEngine is wrapped by errors for incompletely configured engines.
var ErrInvalidEngine = errors.New("invalid layout engine")

// TrackingUnits returns the tracking in design units.
func (e *Engine) TrackingUnits() float64 {
	return e.UnitsPerEm * e.Tracking
}

func (e *Engine) check() error {
	switch {
	case e.Resolver == nil || e.Extractor == nil:
		return fmt.Errorf("%w: resolver and extractor required", ErrInvalidEngine)
	case !(e.UnitsPerEm > 0) || math.IsInf(e.UnitsPerEm, 0):
		return fmt.Errorf("%w: units per em must be positive, is %g", ErrInvalidEngine, e.UnitsPerEm)
	case math.IsNaN(e.Tracking) || math.IsInf(e.Tracking, 0):
		return fmt.Errorf("%w: tracking must be finite, is %g", ErrInvalidEngine, e.Tracking)
	}
	return nil
}

// Layout resolves and places every character of text, in order. The first
// glyph is placed at x = 0 and each following glyph at the previous glyph's
// offset plus its advance plus tracking. An empty text results in an empty
// layout of width 0.
//
// A character without a glyph aborts the layout with a *GlyphNotFoundError;
// no placeholder glyph is substituted.
func (e *Engine) Layout(text string) (*Result, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	tracking := e.TrackingUnits()
	result := &Result{
		Glyphs:        make([]Glyph, 0, len(text)),
		Ascender:      e.Metrics.Ascender,
		Descender:     e.Metrics.Descender,
		Height:        e.Metrics.Height(),
		TrackingUnits: tracking,
	}
	cursor := 0.0
	for _, r := range text {
		gid, err := Resolve(e.Resolver, r)
		if err != nil {
			return nil, err
		}
		path, advance, err := e.Extractor.ExtractOutline(gid)
		if err != nil {
			return nil, fmt.Errorf("cannot extract outline for %q: %w", r, err)
		}
		tracer().Debugf("glyph %q: gid=%d x=%g advance=%g", r, gid, cursor, advance)
		result.Glyphs = append(result.Glyphs, Glyph{
			Char:     r,
			GID:      gid,
			PathData: path,
			Advance:  advance,
			X:        cursor,
		})
		cursor += advance + tracking
	}
	if len(result.Glyphs) > 0 {
		cursor -= tracking // spacing is between glyphs only
	}
	result.Width = cursor
	return result, nil
}
