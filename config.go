package outlinesvg

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// Config holds every parameter of a rendering run. There is no global
// configuration; a Config is passed to Render or Generate.
type Config struct {
	FontPath  string  // font file, or the file name of an installed font
	Output    string  // path of the SVG file to write
	Text      string  // text to render, on a single line
	Fill      string  // fill color, set on the root element
	Tracking  float64 // letter spacing as a fraction of the em
	Normalize bool    // apply Unicode NFC normalization to Text
}

// Defaults of the project the tool was built for.
const (
	DefaultText     = "Steinsiek"
	DefaultFill     = "#212529"
	DefaultTracking = 0.15
	DefaultFontPath = "assets/fonts/norse.bold.otf"
	DefaultOutput   = "assets/steinsiek-text.svg"
)

// DefaultConfig returns a configuration with the default values.
func DefaultConfig() Config {
	return Config{
		FontPath: DefaultFontPath,
		Output:   DefaultOutput,
		Text:     DefaultText,
		Fill:     DefaultFill,
		Tracking: DefaultTracking,
	}
}

// ErrConfig is wrapped by configuration errors.
var ErrConfig = errors.New("invalid configuration")

// Validate checks the configuration for values which would result in an
// invalid document. An empty text is valid. The output path is only checked
// by Generate.
func (c Config) Validate() error {
	if strings.TrimSpace(c.FontPath) == "" {
		return fmt.Errorf("%w: font path is empty", ErrConfig)
	}
	if math.IsNaN(c.Tracking) || math.IsInf(c.Tracking, 0) {
		return fmt.Errorf("%w: tracking must be a finite number, is %v", ErrConfig, c.Tracking)
	}
	if strings.ContainsAny(c.Text, "\n\r") {
		return fmt.Errorf("%w: text must be a single line", ErrConfig)
	}
	if !utf8.ValidString(c.Text) {
		return fmt.Errorf("%w: text is not valid UTF-8", ErrConfig)
	}
	return nil
}
