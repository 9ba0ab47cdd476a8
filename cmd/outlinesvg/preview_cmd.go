package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/outlinesvg"
	"github.com/npillmayer/outlinesvg/layout"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

func runPreviewCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	cfg := configFromFlags(flags)
	height := mustFlagInt(flags["height"], "height")
	margin := mustFlagInt(flags["margin"], "margin")
	if height <= 2*margin || margin < 0 {
		fatalf("--height must exceed twice the --margin")
	}
	fill, err := parseHexColor(cfg.Fill)
	if err != nil {
		fatalf("%v", err)
	}
	r, err := outlinesvg.Render(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	img, err := renderLayoutPNG(r.Font, r.Layout, fill, height, margin)
	if err != nil {
		fatalf("render failed: %v", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		fatalf("cannot encode png: %v", err)
	}
	if err := outlinesvg.WriteFile(cfg.Output, buf.Bytes()); err != nil {
		fatalf("%v", err)
	}
	b := img.Bounds()
	pterm.Printf("wrote %s (%d x %d pixels, glyphs=%d)\n", cfg.Output, b.Dx(), b.Dy(), len(r.Layout.Glyphs))
}

// renderLayoutPNG rasterizes a layout the same way an SVG viewer would
// render the generated document: the image spans the nominal height of the
// font and the full advance width of the text, plus a margin.
func renderLayoutPNG(f *outlinesvg.ScalableFont, result *layout.Result, fill color.Color,
	height int, margin int) (*image.RGBA, error) {
	//
	if result == nil || !(result.Height > 0) {
		return nil, errors.New("layout has no height")
	}
	upem := float64(f.UnitsPerEm())
	if upem <= 0 {
		return nil, errors.New("invalid units-per-em")
	}
	scale := float64(height-2*margin) / result.Height // pixels per design unit
	ppem := fixed.Int26_6(math.Round(scale * upem * 64))
	width := int(math.Ceil(math.Max(result.Width, 0)*scale)) + 2*margin
	if width <= 0 {
		width = 1
	}
	baseline := float32(float64(margin) + result.Ascender*scale)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{255, 255, 255, 255}), image.Point{}, draw.Src)

	rast := vector.NewRasterizer(width, height)
	rast.DrawOp = draw.Over
	var buf sfnt.Buffer
	for _, g := range result.Glyphs {
		if !g.HasInk() {
			continue
		}
		segs, err := f.SFNT.LoadGlyph(&buf, sfnt.GlyphIndex(g.GID), ppem, nil)
		if err != nil {
			return nil, fmt.Errorf("cannot load glyph %d for %q: %w", g.GID, g.Char, err)
		}
		dx := float32(float64(margin) + g.X*scale)
		pt := func(p fixed.Point26_6) (float32, float32) {
			return dx + float32(p.X)/64, baseline + float32(p.Y)/64
		}
		for _, seg := range segs {
			switch seg.Op {
			case sfnt.SegmentOpMoveTo:
				rast.MoveTo(pt(seg.Args[0]))
			case sfnt.SegmentOpLineTo:
				rast.LineTo(pt(seg.Args[0]))
			case sfnt.SegmentOpQuadTo:
				x1, y1 := pt(seg.Args[0])
				x2, y2 := pt(seg.Args[1])
				rast.QuadTo(x1, y1, x2, y2)
			case sfnt.SegmentOpCubeTo:
				x1, y1 := pt(seg.Args[0])
				x2, y2 := pt(seg.Args[1])
				x3, y3 := pt(seg.Args[2])
				rast.CubeTo(x1, y1, x2, y2, x3, y3)
			}
		}
		rast.ClosePath()
	}
	rast.Draw(img, img.Bounds(), image.NewUniform(fill), image.Point{})
	return img, nil
}

// parseHexColor parses colors of the form "#rgb" or "#rrggbb".
func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return c, fmt.Errorf("unsupported color %q (expected #rgb or #rrggbb)", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return c, fmt.Errorf("unsupported color %q: %w", s, err)
	}
	c.R, c.G, c.B = uint8(v>>16), uint8(v>>8), uint8(v)
	return c, nil
}
