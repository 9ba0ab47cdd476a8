package outlinesvg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/go-text/typesetting/font"
	"github.com/npillmayer/outlinesvg/internal/fontload"
	"github.com/npillmayer/outlinesvg/layout"
	"github.com/npillmayer/outlinesvg/otquery"
	"github.com/npillmayer/outlinesvg/outline"
	"github.com/npillmayer/outlinesvg/svgdoc"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/norm"
)

// ScalableFont is a loaded font, ready for outline extraction.
type ScalableFont = fontload.ScalableFont

// LoadFont locates and loads a font. fontref is either a path to a font file
// or the file name of an installed font, e.g. "Arial.ttf".
func LoadFont(fontref string) (*ScalableFont, error) {
	path, err := fontload.Locate(fontref)
	if err != nil {
		return nil, err
	}
	return fontload.LoadOpenTypeFont(path)
}

// FamilyName extracts family and subfamily names from a font's `name` table.
//
// Returned values are empty if no matching records exist or if records cannot be
// decoded.
func FamilyName(f *ScalableFont) (family, subfamily string) {
	for nameId, stringValue := range otquery.NamesRange(f) {
		switch nameId {
		case sfnt.NameIDFamily:
			family = stringValue
		case sfnt.NameIDSubfamily:
			subfamily = stringValue
		}
	}
	return
}

// Rendering is the outcome of a rendering run.
type Rendering struct {
	Font     *ScalableFont
	Metrics  otquery.FontMetricsInfo
	Text     string // the text actually rendered, after normalization
	Layout   *layout.Result
	Document *svgdoc.Document
	SVG      []byte
}

// Render loads the configured font and renders the configured text to an SVG
// document, without writing it.
func Render(cfg Config) (*Rendering, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f, err := LoadFont(cfg.FontPath)
	if err != nil {
		return nil, err
	}
	return RenderWithFont(f, cfg)
}

// RenderWithFont renders the configured text with an already loaded font.
// cfg.FontPath is ignored.
func RenderWithFont(f *ScalableFont, cfg Config) (*Rendering, error) {
	if !utf8.ValidString(cfg.Text) {
		return nil, fmt.Errorf("%w: text is not valid UTF-8", ErrConfig)
	}
	engine, metrics, err := NewEngine(f, cfg.Tracking)
	if err != nil {
		return nil, err
	}
	text := cfg.Text
	if cfg.Normalize {
		text = norm.NFC.String(text)
	}
	result, err := engine.Layout(text)
	if err != nil {
		return nil, err
	}
	doc := svgdoc.Assemble(result, svgdoc.Options{Fill: cfg.Fill, Label: text})
	tracer().Infof("rendered %d characters, %d paths, %s x %s units", len(result.Glyphs),
		len(doc.Paths), outline.FormatNumber(result.Width), outline.FormatNumber(result.Height))
	return &Rendering{
		Font:     f,
		Metrics:  metrics,
		Text:     text,
		Layout:   result,
		Document: doc,
		SVG:      doc.Bytes(),
	}, nil
}

// NewEngine creates a layout engine for a font. Missing or malformed metric
// tables are reported as a *FontLoadError.
func NewEngine(f *ScalableFont, tracking float64) (*layout.Engine, otquery.FontMetricsInfo, error) {
	metrics, err := otquery.FontMetrics(f)
	if err != nil {
		path := ""
		if f != nil {
			path = f.Filepath
		}
		return nil, metrics, &FontLoadError{Path: path, Err: err}
	}
	glyphs := newGlyphSource(f)
	engine := &layout.Engine{
		Resolver:  glyphs,
		Extractor: glyphs,
		Metrics: layout.VerticalMetrics{
			Ascender:  float64(metrics.Ascent),
			Descender: float64(metrics.Descent),
		},
		UnitsPerEm: float64(metrics.UnitsPerEm),
		Tracking:   tracking,
	}
	return engine, metrics, nil
}

// Generate renders the configured text and writes the document to
// cfg.Output. Parent directories are created as needed. If any step fails,
// no output file is created and an existing file is left untouched.
func Generate(cfg Config) (*Rendering, error) {
	if cfg.Output == "" {
		return nil, &OutputWriteError{Err: errors.New("no output path configured")}
	}
	r, err := Render(cfg)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(cfg.Output, r.SVG); err != nil {
		return nil, err
	}
	tracer().Infof("generated %s", cfg.Output)
	return r, nil
}

// WriteFile writes data to a temporary file next to path, then renames it to
// path. Parent directories are created as needed. Errors are of type
// *OutputWriteError.
func WriteFile(path string, data []byte) error {
	if err := writeFileAtomic(path, data); err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpname := tmp.Name()
	defer func() {
		if tmpname != "" {
			_ = os.Remove(tmpname)
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpname, 0o644); err != nil {
		return err
	}
	if err = os.Rename(tmpname, path); err != nil {
		return err
	}
	tmpname = ""
	return nil
}

// --- Glyph source ----------------------------------------------------------

// glyphSource connects a font to the layout engine. Outlines are cached per
// glyph, as text often repeats characters.
type glyphSource struct {
	font      *ScalableFont
	extractor *outline.Extractor
	cache     map[font.GID]outline.Outline
}

func newGlyphSource(f *ScalableFont) *glyphSource {
	return &glyphSource{
		font:      f,
		extractor: outline.NewExtractor(f.Face),
		cache:     make(map[font.GID]outline.Outline),
	}
}

func (gs *glyphSource) LookupGlyph(r rune) (layout.GlyphID, bool) {
	gid, ok := otquery.GlyphIndex(gs.font, r)
	return layout.GlyphID(gid), ok
}

func (gs *glyphSource) ExtractOutline(gid layout.GlyphID) (string, float64, error) {
	g := font.GID(gid)
	if ol, ok := gs.cache[g]; ok {
		return ol.PathData, ol.Advance, nil
	}
	ol, err := gs.extractor.Extract(g)
	if err != nil {
		return "", 0, err
	}
	gs.cache[g] = ol
	return ol.PathData, ol.Advance, nil
}
