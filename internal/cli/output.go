// Package cli renders palettes in the terminal: swatches, channel graphs,
// an accessibility report, inline images and an interactive picker.
package cli

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Output writes styled text. With color off every escape sequence is
// stripped, so piped output stays plain.
type Output struct {
	w     io.Writer
	color bool
	width int
	tty   bool
}

// NewOutput wraps w. Color is enabled only when requested and w is a
// terminal.
func NewOutput(w io.Writer, color bool) *Output {
	o := &Output{w: w, width: DefaultWidth}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		o.tty = true
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			o.width = width
		}
	}
	o.color = color && o.tty
	return o
}

// NewPlainOutput returns an uncolored Output of the given width, for
// tests and non-terminal writers.
func NewPlainOutput(w io.Writer, width int) *Output {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Output{w: w, width: width}
}

// Color reports whether escape sequences are kept.
func (o *Output) Color() bool { return o.color }

// TTY reports whether the writer is a terminal.
func (o *Output) TTY() bool { return o.tty }

// Width is the usable terminal width in cells.
func (o *Output) Width() int { return o.width }

// Writer returns the underlying writer.
func (o *Output) Writer() io.Writer { return o.w }

// Print writes s, stripping styles when color is off.
func (o *Output) Print(s string) error {
	if !o.color {
		_, err := io.WriteString(o.w, ansi.Strip(s))
		return err
	}
	_, err := lipgloss.Fprint(o.w, s)
	return err
}

// Println writes s and a newline.
func (o *Output) Println(s string) error {
	return o.Print(s + "\n")
}
