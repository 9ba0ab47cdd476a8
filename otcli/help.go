package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "metrics", "bbox", "height":
		pterm.Info.Println("Metrics")
		pterm.Println(`
	The height of a rendering is taken from table OS/2:
	+-----------------+  <- sTypoAscender (top of the viewBox)
	|                 |
	|  A g            |  <- baseline at y = 0
	|    g            |
	+-----------------+  <- sTypoDescender (negative)
	height = sTypoAscender - sTypoDescender
	It does not depend on the text being rendered.
	`)
	case "layout", "tracking":
		pterm.Info.Println("Layout")
		pterm.Println(`
	Glyphs are placed on a single baseline, starting at x = 0:
	x[i+1] = x[i] + advance[i] + tracking
	tracking = fraction * unitsPerEm, inserted between glyphs only.
	width = sum of advances + (n-1) * tracking
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	metrics             print the font's vertical metrics
	glyph <c>           print glyph index, advance and path data for character c
	text <string>       set the text to lay out
	tracking <f>        set tracking as a fraction of the em
	layout [string]     lay out the text and print glyph positions
	svg [string]        print the SVG document for the text
	help [topic]        topics: metrics, layout
	quit
	`)
	}
}
