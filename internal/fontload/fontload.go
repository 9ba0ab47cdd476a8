/*
Package fontload opens OpenType fonts (TTF or OTF) for outline extraction.

A ScalableFont keeps the raw font bytes together with two parsed views: an
x/image SFNT container, used for naming and structural validation, and a
go-text face, which provides the character map, glyph outlines and advances.
Both views are read-only once loading has finished.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontload

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'outlinesvg.font'
func tracer() tracing.Trace {
	return tracing.Select("outlinesvg.font")
}

// RequiredTables lists the tables a font must carry to be usable for outline
// extraction with nominal vertical metrics.
var RequiredTables = []string{"head", "OS/2", "cmap"}

// ScalableFont is a parsed scalable font with original bytes and two views
// onto it.
type ScalableFont struct {
	Fontname string     // full font name, if present in table 'name'
	Filepath string     // empty for fonts parsed from memory
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // x/image view
	Face     *font.Face // go-text view
	loader   *opentype.Loader
}

// FontLoadError is returned if a font file is missing, unreadable or not a
// valid font container.
type FontLoadError struct {
	Path string // font file path; empty if parsed from memory
	Err  error
}

func (e *FontLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("cannot load font: %v", e.Err)
	}
	return fmt.Sprintf("cannot load font %q: %v", e.Path, e.Err)
}

func (e *FontLoadError) Unwrap() error {
	return e.Err
}

// Locate resolves a font reference to a file path. A reference which names an
// existing file is returned unchanged. A bare file name (without directory
// part) is searched for in the platform's user and system font directories.
func Locate(fontref string) (string, error) {
	if fontref == "" {
		return "", &FontLoadError{Err: errors.New("no font configured")}
	}
	_, err := os.Stat(fontref)
	if err == nil {
		return fontref, nil
	}
	if filepath.Base(fontref) != fontref {
		return "", &FontLoadError{Path: fontref, Err: err}
	}
	path, ferr := findfont.Find(fontref)
	if ferr != nil {
		return "", &FontLoadError{Path: fontref, Err: ferr}
	}
	tracer().Debugf("font %s located as system font %s", fontref, path)
	return path, nil
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, &FontLoadError{Path: fontfile, Err: err}
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		var lerr *FontLoadError
		if errors.As(err, &lerr) {
			lerr.Path = fontfile
		}
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
// The byte slice must not change after parsing.
func ParseOpenTypeFont(fbytes []byte) (*ScalableFont, error) {
	f := &ScalableFont{Binary: fbytes}
	var err error
	if f.SFNT, err = sfnt.Parse(f.Binary); err != nil {
		return nil, &FontLoadError{Err: err}
	}
	if f.loader, err = opentype.NewLoader(bytes.NewReader(f.Binary)); err != nil {
		return nil, &FontLoadError{Err: err}
	}
	for _, tag := range RequiredTables {
		if _, ok := f.Table(tag); !ok {
			return nil, &FontLoadError{Err: fmt.Errorf("missing required table %q", tag)}
		}
	}
	ft, err := font.NewFont(f.loader)
	if err != nil {
		return nil, &FontLoadError{Err: err}
	}
	f.Face = font.NewFace(ft)
	if f.Fontname, err = f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		tracer().Debugf("loaded and parsed SFNT %s", f.Fontname)
	}
	return f, nil
}

// Table returns the raw bytes of the table with the given tag.
func (f *ScalableFont) Table(tag string) ([]byte, bool) {
	if f == nil || f.loader == nil || len(tag) != 4 {
		return nil, false
	}
	b, err := f.loader.RawTable(opentype.MustNewTag(tag))
	if err != nil || len(b) == 0 {
		return nil, false
	}
	return b, true
}

// UnitsPerEm returns the size of the em-square in design units.
func (f *ScalableFont) UnitsPerEm() uint16 {
	return f.Face.Upem()
}

// NumGlyphs returns the number of glyphs in the font.
func (f *ScalableFont) NumGlyphs() int {
	return f.SFNT.NumGlyphs()
}
