// Package export turns a generated palette into the formats designers
// paste into code or design tools: CSS custom properties, JSON, plain
// text, an SVG strip for Figma and a PNG swatch image.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jpfaraco/colorguru/internal/palette"
)

// ErrUnknownFormat is returned by ParseFormat for names it does not know.
var ErrUnknownFormat = errors.New("unknown export format")

// Format names an export target.
type Format string

const (
	FormatCSS  Format = "css"
	FormatJSON Format = "json"
	FormatText Format = "text"
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
)

// Formats lists every format in menu order.
func Formats() []Format {
	return []Format{FormatCSS, FormatJSON, FormatText, FormatSVG, FormatPNG}
}

// ParseFormat accepts a format name case-insensitively. "txt" is an alias
// for text.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSS, FormatJSON, FormatText, FormatSVG, FormatPNG:
		return f, nil
	case "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext is the file extension used for downloads.
func (f Format) Ext() string { return string(f) }

// DefaultFilename is the name a palette is saved under when no output
// path is given.
func (f Format) DefaultFilename() string { return "color-palette." + f.Ext() }

// Binary reports whether the format must be written to a file rather
// than printed.
func (f Format) Binary() bool { return f == FormatPNG }

// Options collects the knobs of every format.
type Options struct {
	Text TextOptions
	PNG  PNGOptions
	// Now stamps the SVG id. Zero means time.Now().
	Now time.Time
}

// Write renders res in format f to w.
func Write(w io.Writer, f Format, res palette.Result, cfg palette.Config, opts Options) error {
	var s string
	switch f {
	case FormatCSS:
		s = CSS(res)
	case FormatJSON:
		out, err := JSON(res, cfg)
		if err != nil {
			return err
		}
		s = out
	case FormatText:
		s = PlainText(res, opts.Text)
	case FormatSVG:
		now := opts.Now
		if now.IsZero() {
			now = time.Now()
		}
		s = SVG(res, now)
	case FormatPNG:
		return PNG(w, res, opts.PNG)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}

	if _, err := io.WriteString(w, s); err != nil {
		return fmt.Errorf("write %s: %w", f, err)
	}
	return nil
}
