package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/outlinesvg"
	"github.com/npillmayer/outlinesvg/layout"
	"github.com/npillmayer/outlinesvg/outline"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	cfg := configFromFlags(flags)
	r, err := outlinesvg.Generate(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	for _, line := range renderReport(r, cfg.Output, verbose(flags)) {
		pterm.Println(line)
	}
}

// renderReport lists the summary lines printed after a document is written.
func renderReport(r *outlinesvg.Rendering, output string, detailed bool) []string {
	lines := []string{
		"Generated: " + output,
		fmt.Sprintf("Dimensions: %s x %s units", outline.FormatNumber(r.Layout.Width),
			outline.FormatNumber(r.Layout.Height)),
		fmt.Sprintf("Characters: %d", len(r.Layout.Glyphs)),
	}
	if detailed {
		lines = append(lines,
			fmt.Sprintf("Paths: %d", len(r.Document.Paths)),
			"Font: "+r.Font.Fontname)
	}
	return lines
}

func runGlyphsCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	cfg := configFromFlags(flags)
	r, err := outlinesvg.Render(cfg)
	if err != nil {
		fatalf("%v", err)
	}
	pterm.Printf("Font: %s (%d units per em)\n", r.Font.Fontname, r.Metrics.UnitsPerEm)
	pterm.Printf("Tracking: %s units\n", outline.FormatNumber(r.Layout.TrackingUnits))
	if err := pterm.DefaultTable.WithHasHeader().WithData(glyphTable(r.Layout)).Render(); err != nil {
		fatalf("%v", err)
	}
	pterm.Printf("Width: %s, height: %s (ascender %s, descender %s)\n",
		outline.FormatNumber(r.Layout.Width), outline.FormatNumber(r.Layout.Height),
		outline.FormatNumber(r.Layout.Ascender), outline.FormatNumber(r.Layout.Descender))
}

// glyphTable formats a layout as table data, with a header row.
func glyphTable(result *layout.Result) [][]string {
	data := [][]string{
		{"Char", "Code-Point", "Glyph", "Advance", "X", "Path Commands"},
	}
	for _, g := range result.Glyphs {
		data = append(data, []string{
			fmt.Sprintf("%q", g.Char),
			fmt.Sprintf("%U", g.Char),
			fmt.Sprintf("%d", g.GID),
			outline.FormatNumber(g.Advance),
			outline.FormatNumber(g.X),
			fmt.Sprintf("%d", countPathCommands(g.PathData)),
		})
	}
	return data
}

// countPathCommands counts the command letters of SVG path data.
func countPathCommands(d string) int {
	n := 0
	for _, r := range d {
		if strings.ContainsRune("MLHVQCZ", r) {
			n++
		}
	}
	return n
}
