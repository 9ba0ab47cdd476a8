/*
Package outlinesvg renders a line of text set in a given typeface as a
standalone SVG document made of glyph outlines.

The resulting document does not depend on any font being available to the
viewer: every character is converted into a <path> element, using the
outline of the font's glyph in design units. This is useful wherever
external fonts and style sheets are stripped from images, e.g. in README
files on code hosting sites.

The pipeline is:

▪︎ the font loader opens the font file (TTF or OTF);

▪︎ the glyph resolver maps each character to a glyph of the font;

▪︎ the outline extractor turns the glyph's contours into SVG path data;

▪︎ the layout engine places glyphs along a single baseline, with a uniform
tracking between characters;

▪︎ the bounding box is derived from the font's nominal typographic ascender
and descender;

▪︎ the document assembler writes the SVG.

Clients usually call Generate with a Config. Render does all of the work
except writing a file.

There is no shaping (no ligatures, no kerning, no complex scripts) and no
line breaking.

# Links

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package outlinesvg

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'outlinesvg'
func tracer() tracing.Trace {
	return tracing.Select("outlinesvg")
}
