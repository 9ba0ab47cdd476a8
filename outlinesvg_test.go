package outlinesvg

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/outlinesvg/otquery"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type RenderTestEnviron struct {
	suite.Suite
	dir      string
	fontPath string
}

// listen for 'go test' command --> run test methods
func TestRenderFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "outlinesvg")
	defer teardown()
	suite.Run(t, new(RenderTestEnviron))
}

// run once, before test suite methods
func (env *RenderTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("outlinesvg").SetTraceLevel(tracing.LevelInfo)
	env.dir = env.T().TempDir()
	env.fontPath = filepath.Join(env.dir, "Go-Regular.ttf")
	env.Require().NoError(os.WriteFile(env.fontPath, goregular.TTF, 0o644))
}

func (env *RenderTestEnviron) config(text string) Config {
	cfg := DefaultConfig()
	cfg.FontPath = env.fontPath
	cfg.Output = filepath.Join(env.T().TempDir(), "assets", "text.svg")
	cfg.Text = text
	return cfg
}

// --- Tests -----------------------------------------------------------------

func (env *RenderTestEnviron) TestGenerateWritesDocument() {
	cfg := env.config("Steinsiek")
	r, err := Generate(cfg)
	env.Require().NoError(err)
	data, err := os.ReadFile(cfg.Output)
	env.Require().NoError(err, "expected output file to be created with its parent directory")
	env.Equal(r.SVG, data)
	env.Len(r.Layout.Glyphs, 9)
	env.Equal(9, strings.Count(string(data), "<path "))
	env.Contains(string(data), `fill="#212529"`)
	env.Contains(string(data), `aria-label="Steinsiek"`)
	entries, err := os.ReadDir(filepath.Dir(cfg.Output))
	env.Require().NoError(err)
	env.Len(entries, 1, "no temporary files may be left behind")
}

func (env *RenderTestEnviron) TestGenerateIsDeterministic() {
	cfg := env.config("Steinsiek")
	_, err := Generate(cfg)
	env.Require().NoError(err)
	first, err := os.ReadFile(cfg.Output)
	env.Require().NoError(err)
	_, err = Generate(cfg)
	env.Require().NoError(err)
	second, err := os.ReadFile(cfg.Output)
	env.Require().NoError(err)
	env.True(bytes.Equal(first, second), "expected byte-identical documents")
}

func (env *RenderTestEnviron) TestWidthIsSumOfAdvancesAndTracking() {
	cfg := env.config("Steinsiek")
	r, err := Render(cfg)
	env.Require().NoError(err)
	sum := 0.0
	for _, ch := range cfg.Text {
		gid, ok := otquery.GlyphIndex(r.Font, ch)
		env.Require().True(ok)
		gm, ok := otquery.GlyphMetrics(r.Font, gid)
		env.Require().True(ok)
		sum += float64(gm.Advance)
	}
	tracking := 0.15 * 2048
	env.InDelta(sum+8*tracking, r.Layout.Width, 1e-6)
	env.InDelta(tracking, r.Layout.TrackingUnits, 1e-9)
	last := r.Layout.Glyphs[len(r.Layout.Glyphs)-1]
	env.InDelta(r.Layout.Width, last.X+last.Advance, 1e-6, "no trailing tracking")
}

func (env *RenderTestEnviron) TestHeightIsIndependentOfText() {
	a, err := Render(env.config("x"))
	env.Require().NoError(err)
	b, err := Render(env.config("Steinsiek ÅÖ gjpq"))
	env.Require().NoError(err)
	env.Equal(a.Layout.Height, b.Layout.Height)
	env.Equal(float64(a.Metrics.Height()), a.Layout.Height)
	env.Greater(a.Layout.Height, 0.0)
}

func (env *RenderTestEnviron) TestSpaceHasNoPath() {
	r, err := Render(env.config("A B"))
	env.Require().NoError(err)
	env.Len(r.Layout.Glyphs, 3)
	env.Equal(2, r.Layout.InkCount())
	env.Len(r.Document.Paths, 2)
	env.Greater(r.Layout.Glyphs[1].Advance, 0.0)
}

func (env *RenderTestEnviron) TestEmptyText() {
	r, err := Render(env.config(""))
	env.Require().NoError(err)
	env.Equal(0.0, r.Layout.Width)
	env.Empty(r.Document.Paths)
	env.Contains(string(r.SVG), `viewBox="0 0 0 `)
}

func (env *RenderTestEnviron) TestMissingGlyphWritesNothing() {
	cfg := env.config("Stein中")
	_, err := Generate(cfg)
	var gerr *GlyphNotFoundError
	env.Require().True(errors.As(err, &gerr), "expected GlyphNotFoundError, got %v", err)
	env.Equal('中', gerr.Char)
	_, err = os.Stat(cfg.Output)
	env.True(os.IsNotExist(err), "expected no output file")
}

func (env *RenderTestEnviron) TestFailureKeepsExistingOutput() {
	cfg := env.config("Stein中")
	env.Require().NoError(os.MkdirAll(filepath.Dir(cfg.Output), 0o755))
	env.Require().NoError(os.WriteFile(cfg.Output, []byte("previous"), 0o644))
	_, err := Generate(cfg)
	env.Require().Error(err)
	data, err := os.ReadFile(cfg.Output)
	env.Require().NoError(err)
	env.Equal("previous", string(data))
}

func (env *RenderTestEnviron) TestFontLoadErrors() {
	garbage := filepath.Join(env.T().TempDir(), "garbage.otf")
	env.Require().NoError(os.WriteFile(garbage, []byte("this is not a font"), 0o644))
	for _, path := range []string{
		filepath.Join(env.dir, "missing", "font.otf"),
		garbage,
		"",
	} {
		cfg := env.config("A")
		cfg.FontPath = path
		_, err := Generate(cfg)
		if path == "" {
			env.ErrorIs(err, ErrConfig)
			continue
		}
		var lerr *FontLoadError
		env.Require().True(errors.As(err, &lerr), "expected FontLoadError for %q, got %v", path, err)
		env.Contains(err.Error(), path)
		_, err = os.Stat(cfg.Output)
		env.True(os.IsNotExist(err))
	}
}

func (env *RenderTestEnviron) TestOutputWriteError() {
	blocker := filepath.Join(env.T().TempDir(), "file")
	env.Require().NoError(os.WriteFile(blocker, nil, 0o644))
	cfg := env.config("A")
	cfg.Output = filepath.Join(blocker, "text.svg") // parent is a regular file
	_, err := Generate(cfg)
	var werr *OutputWriteError
	env.Require().True(errors.As(err, &werr), "expected OutputWriteError, got %v", err)
	env.Equal(cfg.Output, werr.Path)
	//
	cfg.Output = ""
	_, err = Generate(cfg)
	env.True(errors.As(err, &werr))
}

func (env *RenderTestEnviron) TestInvalidUTF8() {
	cfg := env.config("Stein\xffsiek")
	_, err := Render(cfg)
	env.ErrorIs(err, ErrConfig)
	_, err = Generate(cfg)
	env.ErrorIs(err, ErrConfig)
	_, err = os.Stat(cfg.Output)
	env.True(os.IsNotExist(err), "no document must be written for invalid text")
	//
	f, err := LoadFont(env.fontPath)
	env.Require().NoError(err)
	_, err = RenderWithFont(f, cfg)
	env.ErrorIs(err, ErrConfig)
}

func (env *RenderTestEnviron) TestNormalization() {
	cfg := env.config("e\u0301")
	cfg.Normalize = true
	r, err := Render(cfg)
	env.Require().NoError(err)
	env.Len(r.Layout.Glyphs, 1, "expected NFC to compose e + combining acute")
	env.Equal('é', r.Layout.Glyphs[0].Char)
	env.Equal("é", r.Text)
}

func (env *RenderTestEnviron) TestFamilyName() {
	f, err := LoadFont(env.fontPath)
	env.Require().NoError(err)
	family, subfamily := FamilyName(f)
	env.Equal("Go", family)
	env.Equal("Regular", subfamily)
}

// --- Configuration ---------------------------------------------------------

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default configuration to be valid, got %v", err)
	}
	if cfg.Text != "Steinsiek" || cfg.Fill != "#212529" || cfg.Tracking != 0.15 {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"no font", func(c *Config) { c.FontPath = " " }},
		{"NaN tracking", func(c *Config) { c.Tracking = math.NaN() }},
		{"infinite tracking", func(c *Config) { c.Tracking = math.Inf(1) }},
		{"multi-line text", func(c *Config) { c.Text = "Stein\nsiek" }},
		{"invalid UTF-8", func(c *Config) { c.Text = "Stein\xffsiek" }},
	}
	for _, tt := range tests {
		c := DefaultConfig()
		tt.modify(&c)
		if err := c.Validate(); !errors.Is(err, ErrConfig) {
			t.Errorf("%s: expected ErrConfig, got %v", tt.name, err)
		}
	}
}
