package outlinesvg

import (
	"fmt"

	"github.com/npillmayer/outlinesvg/internal/fontload"
	"github.com/npillmayer/outlinesvg/layout"
)

// FontLoadError is returned if the font file is missing, unreadable, not a
// valid font, or lacks the tables needed for rendering.
type FontLoadError = fontload.FontLoadError

// GlyphNotFoundError is returned if a character of the text has no glyph in
// the font. No output is written in this case.
type GlyphNotFoundError = layout.GlyphNotFoundError

// OutputWriteError is returned if the output document cannot be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("cannot write %q: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
