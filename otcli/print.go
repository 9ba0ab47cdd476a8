package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/outlinesvg"
	"github.com/npillmayer/outlinesvg/otquery"
	"github.com/npillmayer/outlinesvg/outline"
	"github.com/pterm/pterm"
)

func metricsOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	m, err := otquery.FontMetrics(intp.font)
	if err != nil {
		return err, false
	}
	data := [][]string{
		{"Metric", "Value"},
		{"Units per em", fmt.Sprintf("%d", m.UnitsPerEm)},
		{"Typo ascender", fmt.Sprintf("%d", m.Ascent)},
		{"Typo descender", fmt.Sprintf("%d", m.Descent)},
		{"Typo line gap", fmt.Sprintf("%d", m.LineGap)},
		{"Height", fmt.Sprintf("%d", m.Height())},
		{"hhea ascender", fmt.Sprintf("%d", m.HheaAscent)},
		{"hhea descender", fmt.Sprintf("%d", m.HheaDescent)},
		{"x-height", fmt.Sprintf("%d", m.XHeight)},
		{"Cap height", fmt.Sprintf("%d", m.CapHeight)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func glyphOp(intp *Intp, op *Op) (err error, stop bool) {
	if err = intp.checkFont(); err != nil {
		return
	}
	runes := []rune(op.arg)
	if len(runes) != 1 {
		return errors.New("glyph requires a single character"), false
	}
	r := runes[0]
	gid, ok := otquery.GlyphIndex(intp.font, r)
	if !ok {
		return &outlinesvg.GlyphNotFoundError{Char: r}, false
	}
	ol, err := outline.NewExtractor(intp.font.Face).Extract(gid)
	if err != nil {
		return err, false
	}
	pterm.Printf("%q (%U) => glyph %d, advance %s\n", r, r, gid, outline.FormatNumber(ol.Advance))
	if gm, ok := otquery.GlyphMetrics(intp.font, gid); ok {
		pterm.Printf("hmtx: advance=%d lsb=%d\n", gm.Advance, gm.LSB)
	}
	if ol.IsEmpty() {
		pterm.Println("glyph has no outline")
	} else {
		pterm.Printf("%d segments\n%s\n", len(ol.Segments), ol.PathData)
	}
	return nil, false
}

func textOp(intp *Intp, op *Op) (error, bool) {
	intp.cfg.Text = op.arg
	tracer().Infof("text set to %q", op.arg)
	return nil, false
}

func trackingOp(intp *Intp, op *Op) (error, bool) {
	t, err := strconv.ParseFloat(op.arg, 64)
	if err != nil {
		return fmt.Errorf("tracking not numeric: %v", op.arg), false
	}
	cfg := intp.cfg
	cfg.Tracking = t
	if err = cfg.Validate(); err != nil {
		return err, false
	}
	intp.cfg = cfg
	return nil, false
}

// render renders the current text, or the argument of op if present.
func (intp *Intp) render(op *Op) (*outlinesvg.Rendering, error) {
	if err := intp.checkFont(); err != nil {
		return nil, err
	}
	cfg := intp.cfg
	if op.arg != "" {
		cfg.Text = op.arg
	}
	return outlinesvg.RenderWithFont(intp.font, cfg)
}

func layoutOp(intp *Intp, op *Op) (error, bool) {
	r, err := intp.render(op)
	if err != nil {
		return err, false
	}
	data := [][]string{
		{"Char", "Glyph", "Advance", "X", "Ink"},
	}
	for _, g := range r.Layout.Glyphs {
		data = append(data, []string{
			fmt.Sprintf("%q", g.Char),
			fmt.Sprintf("%d", g.GID),
			outline.FormatNumber(g.Advance),
			outline.FormatNumber(g.X),
			strconv.FormatBool(g.HasInk()),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pterm.Printf("Dimensions: %s x %s units, tracking %s units\n",
		outline.FormatNumber(r.Layout.Width), outline.FormatNumber(r.Layout.Height),
		outline.FormatNumber(r.Layout.TrackingUnits))
	return nil, false
}

func svgOp(intp *Intp, op *Op) (error, bool) {
	r, err := intp.render(op)
	if err != nil {
		return err, false
	}
	pterm.Println(string(r.SVG))
	return nil, false
}
