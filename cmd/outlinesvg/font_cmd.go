package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/outlinesvg"
	"github.com/npillmayer/outlinesvg/otquery"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// knownTables are the tables reported by the font command.
var knownTables = []string{
	"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post",
	"glyf", "loca", "CFF ", "CFF2", "GDEF", "GSUB", "GPOS", "kern",
}

func runFontCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	setupTracing(flags["trace"])
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f, err := outlinesvg.LoadFont(fontPath)
	if err != nil {
		fatalf("%v", err)
	}
	metrics, err := otquery.FontMetrics(f)
	if err != nil {
		fatalf("%v", err)
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(fontTable(f, metrics)).Render(); err != nil {
		fatalf("%v", err)
	}
	present := make([]string, 0, len(knownTables))
	for _, tag := range knownTables {
		if _, ok := f.Table(tag); ok {
			present = append(present, strings.TrimSpace(tag))
		}
	}
	pterm.Printf("Tables: %s\n", strings.Join(present, " "))
	if len(args["tables"].Value) > 0 {
		printSelectedTables(f, args["tables"].Value)
	}
}

// fontTable formats font information as table data, with a header row.
func fontTable(f *outlinesvg.ScalableFont, m otquery.FontMetricsInfo) [][]string {
	names := otquery.NameInfo(f)
	data := [][]string{
		{"Property", "Value"},
		{"Path", f.Filepath},
		{"Name", f.Fontname},
		{"Family", names["family"]},
		{"Subfamily", names["subfamily"]},
		{"Version", names["version"]},
		{"Type", otquery.FontType(f)},
		{"Glyphs", fmt.Sprintf("%d", f.NumGlyphs())},
		{"Units per em", fmt.Sprintf("%d", m.UnitsPerEm)},
		{"Typo ascender", fmt.Sprintf("%d", m.Ascent)},
		{"Typo descender", fmt.Sprintf("%d", m.Descent)},
		{"Typo line gap", fmt.Sprintf("%d", m.LineGap)},
		{"Height", fmt.Sprintf("%d", m.Height())},
		{"x-height", fmt.Sprintf("%d", m.XHeight)},
		{"Cap height", fmt.Sprintf("%d", m.CapHeight)},
	}
	if m.HasHorizontalHeader {
		data = append(data,
			[]string{"hhea ascender", fmt.Sprintf("%d", m.HheaAscent)},
			[]string{"hhea descender", fmt.Sprintf("%d", m.HheaDescent)},
			[]string{"Max advance", fmt.Sprintf("%d", m.MaxAdvance)},
		)
	}
	if maxp, ok := otquery.MaxPInfo(f); ok {
		data = append(data, []string{"maxp glyphs", fmt.Sprintf("%d", maxp.NumGlyphs)})
	}
	return data
}

func printSelectedTables(f *outlinesvg.ScalableFont, raw string) {
	requested := splitCSVSpace(raw)
	for _, t := range requested {
		tagName := strings.TrimSpace(t)
		if tagName == "" {
			continue
		}
		if len(tagName) < 4 {
			tagName += strings.Repeat(" ", 4-len(tagName))
		}
		b, ok := f.Table(tagName)
		if !ok {
			fmt.Printf("table %s: missing\n", tagName)
			continue
		}
		fmt.Printf("table %s: size=%d\n", tagName, len(b))
	}
}
