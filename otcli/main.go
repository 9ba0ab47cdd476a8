package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/outlinesvg"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'outlinesvg'
func tracer() tracing.Trace {
	return tracing.Select("outlinesvg")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.outlinesvg":        "Info",
		"trace.outlinesvg.font":   "Error",
		"trace.outlinesvg.layout": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", outlinesvg.DefaultFontPath, "Font to load")
	tracking := flag.Float64("tracking", outlinesvg.DefaultTracking, "Tracking as a fraction of the em")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError)       // will set the correct level later
	pterm.Info.Println("Welcome to the Outline CLI") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("svg > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, cfg: outlinesvg.DefaultConfig()}
	intp.cfg.Tracking = *tracking
	//
	// load font to use
	if err := intp.loadFont(*fontname); err != nil { // font name provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
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

// Intp is our interpreter object
type Intp struct {
	font *outlinesvg.ScalableFont
	repl *readline.Instance
	cfg  outlinesvg.Config
}

func (intp *Intp) String() string {
	if intp == nil || intp.font == nil {
		return "()"
	}
	return fmt.Sprintf("( font=%s tracking=%g text=%q )", intp.font.Fontname, intp.cfg.Tracking,
		intp.cfg.Text)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		pterm.Println(intp.String())
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single operation with an optional argument.
type Op struct {
	code int
	arg  string
}

const NOOP = -1
const (
	// op-code QUIT will not have arguments
	QUIT int = iota
	// op-codes below may have arguments
	HELP
	METRICS
	GLYPH
	TEXT
	TRACKING
	LAYOUT
	SVG
)

var opMap = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"metrics":  METRICS,
	"glyph":    GLYPH,
	"text":     TEXT,
	"tracking": TRACKING,
	"layout":   LAYOUT,
	"svg":      SVG,
}

var opNames = []string{
	"quit",
	"help",
	"metrics",
	"glyph",
	"text",
	"tracking",
	"layout",
	"svg",
}

// parseCommand splits a line into an op-code and the rest of the line as its
// argument, e.g. "glyph A" or "text Hello World". Unknown commands show help.
func (intp *Intp) parseCommand(line string) (*Op, error) {
	word, arg, _ := strings.Cut(line, " ")
	code, ok := opMap[strings.ToLower(word)]
	if !ok {
		pterm.Error.Printf("unknown command: %s\n", word)
		code, arg = HELP, ""
	}
	op := &Op{code: code, arg: strings.TrimSpace(arg)}
	if op.arg == "" {
		tracer().Debugf("%s", opNames[op.code])
	} else {
		tracer().Debugf("%s: '%s'", opNames[op.code], op.arg)
	}
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:     quitOp,
	HELP:     helpOp,
	METRICS:  metricsOp,
	GLYPH:    glyphOp,
	TEXT:     textOp,
	TRACKING: trackingOp,
	LAYOUT:   layoutOp,
	SVG:      svgOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	if op == nil || op.code == NOOP {
		return nil, false
	}
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	err, stop = f(intp, op)
	if err != nil {
		pterm.Error.Println(err)
	}
	return
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Goodbye!")
	return nil, true
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontname string) (err error) {
	if intp.font, err = outlinesvg.LoadFont(fontname); err != nil {
		tracer().Errorf("cannot load font %s: %s", fontname, err)
		return
	}
	tracer().Infof("loaded SFNT font = %s", intp.font.Fontname)
	return
}

var ErrNoFont = errors.New("no font loaded")

func (intp *Intp) checkFont() error {
	if intp.font == nil {
		return ErrNoFont
	}
	return nil
}
