package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/outlinesvg"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

// tracer traces with key 'outlinesvg'
func tracer() tracing.Trace {
	return tracing.Select("outlinesvg")
}

func main() {
	initDisplay()
	defaults := outlinesvg.DefaultConfig()
	tracking := strconv.FormatFloat(defaults.Tracking, 'f', -1, 64)

	commando.
		SetExecutableName("outlinesvg").
		SetVersion("v0.1.0").
		SetDescription("Render text set in an OpenType font as an SVG document made of glyph outlines.")

	commando.
		Register("render").
		SetDescription("Render text to an SVG file, converting every glyph to a path element.").
		SetShortDescription("render text to SVG").
		AddFlag("font,f", "font file path or name of an installed font", commando.String, defaults.FontPath).
		AddFlag("output,o", "output SVG file", commando.String, defaults.Output).
		AddFlag("text,t", "text to render", commando.String, defaults.Text).
		AddFlag("fill,c", "fill color", commando.String, defaults.Fill).
		AddFlag("tracking,k", "letter spacing as a fraction of the em", commando.String, tracking).
		AddFlag("nfc,n", "normalize text to Unicode NFC", commando.Bool, nil).
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runRenderCommand)

	commando.
		Register("glyphs").
		SetDescription("Lay out text and print glyph placement, without writing a file.").
		SetShortDescription("print glyph layout").
		AddFlag("font,f", "font file path or name of an installed font", commando.String, defaults.FontPath).
		AddFlag("text,t", "text to lay out", commando.String, defaults.Text).
		AddFlag("tracking,k", "letter spacing as a fraction of the em", commando.String, tracking).
		AddFlag("nfc,n", "normalize text to Unicode NFC", commando.Bool, nil).
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runGlyphsCommand)

	commando.
		Register("preview").
		SetDescription("Rasterize the laid-out text to a PNG image, for a visual check of the SVG geometry.").
		SetShortDescription("text to PNG image").
		AddFlag("font,f", "font file path or name of an installed font", commando.String, defaults.FontPath).
		AddFlag("text,t", "text to render", commando.String, defaults.Text).
		AddFlag("fill,c", "fill color (#rgb or #rrggbb)", commando.String, defaults.Fill).
		AddFlag("tracking,k", "letter spacing as a fraction of the em", commando.String, tracking).
		AddFlag("output,o", "output PNG file", commando.String, "outlinesvg-preview.png").
		AddFlag("height,H", "image height in pixels", commando.Int, 96).
		AddFlag("margin,m", "margin in pixels", commando.Int, 8).
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runPreviewCommand)

	commando.
		Register("font").
		SetDescription("Print names, metrics and table information for an OpenType font.").
		SetShortDescription("font diagnostics").
		AddArgument("font", "font file path or name of an installed font", "").
		AddArgument("tables...", "optional list of table tags (e.g. head,OS/2,cmap)", "").
		AddFlag("trace,T", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runFontCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// setupTracing configures all tracers of the module to log to stderr with
// the given level.
func setupTracing(flag commando.FlagValue) {
	level, err := flag.GetString()
	if err != nil {
		fatalf("invalid --trace flag: %v", err)
	}
	level = strings.TrimSpace(level)
	switch level {
	case "Debug", "Info", "Error":
	case "":
		level = "Error"
	default:
		fatalf("invalid trace level: %s", level)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.outlinesvg":        level,
		"trace.outlinesvg.font":   level,
		"trace.outlinesvg.layout": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracer().Debugf("trace level is %s", level)
}

// configFromFlags fills a configuration from the flags a command defines.
func configFromFlags(flags map[string]commando.FlagValue) outlinesvg.Config {
	cfg := outlinesvg.DefaultConfig()
	if f, ok := flags["font"]; ok {
		cfg.FontPath = mustFlagString(f, "font")
	}
	if f, ok := flags["output"]; ok {
		cfg.Output = mustFlagString(f, "output")
	}
	if f, ok := flags["text"]; ok {
		cfg.Text = mustFlagString(f, "text")
	}
	if f, ok := flags["fill"]; ok {
		cfg.Fill = mustFlagString(f, "fill")
	}
	if f, ok := flags["tracking"]; ok {
		s := strings.TrimSpace(mustFlagString(f, "tracking"))
		t, err := strconv.ParseFloat(s, 64)
		if err != nil {
			fatalf("invalid --tracking flag %q: %v", s, err)
		}
		cfg.Tracking = t
	}
	if f, ok := flags["nfc"]; ok {
		cfg.Normalize = mustFlagBool(f, "nfc")
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}
	return cfg
}

func verbose(flags map[string]commando.FlagValue) bool {
	f, ok := flags["verbose"]
	if !ok {
		return false
	}
	v, err := f.GetBool()
	return err == nil && v
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func splitCSVSpace(spec string) []string {
	return strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
	os.Exit(1)
}
