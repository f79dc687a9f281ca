package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jpfaraco/colorguru/internal/colormath"
	"github.com/jpfaraco/colorguru/internal/palette"
)

// CSS renders the palette as custom properties on :root, numbered from 0.
func CSS(res palette.Result) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range res.Colors {
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i, c.Hex)
	}
	b.WriteString("}")
	return b.String()
}

type jsonColor struct {
	Index         int           `json:"index"`
	Hex           string        `json:"hex"`
	HSL           colormath.HSL `json:"hsl"`
	RGB           colormath.RGB `json:"rgb"`
	Accessibility accessibility `json:"accessibility"`
}

type accessibility struct {
	ContrastRatioWhite float64         `json:"contrastRatioWhite"`
	ContrastRatioBlack float64         `json:"contrastRatioBlack"`
	WCAGWhite          colormath.Level `json:"wcagWhite"`
	WCAGBlack          colormath.Level `json:"wcagBlack"`
}

type jsonDocument struct {
	Settings palette.Config `json:"settings"`
	Colors   []jsonColor    `json:"colors"`
}

// JSON renders the settings that produced res together with every color
// and its accessibility scores, indented by two spaces.
func JSON(res palette.Result, cfg palette.Config) (string, error) {
	doc := jsonDocument{
		Settings: cfg,
		Colors:   make([]jsonColor, len(res.Colors)),
	}
	for i, c := range res.Colors {
		doc.Colors[i] = jsonColor{
			Index: c.Index,
			Hex:   c.Hex,
			HSL:   c.HSL,
			RGB:   c.RGB,
			Accessibility: accessibility{
				ContrastRatioWhite: c.ContrastRatioWhite,
				ContrastRatioBlack: c.ContrastRatioBlack,
				WCAGWhite:          c.WCAGWhite,
				WCAGBlack:          c.WCAGBlack,
			},
		}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal palette: %w", err)
	}
	return string(data), nil
}

// TextOptions controls plain text output. The zero value numbers each
// line and keeps the leading '#'.
type TextOptions struct {
	NoNumbers bool `toml:"no_numbers" json:"noNumbers"`
	NoHash    bool `toml:"no_hash" json:"noHash"`
}

// PlainText renders one color per line.
func PlainText(res palette.Result, opts TextOptions) string {
	lines := make([]string, len(res.Colors))
	for i, c := range res.Colors {
		hex := c.Hex
		if opts.NoHash {
			hex = strings.TrimPrefix(hex, "#")
		}
		if opts.NoNumbers {
			lines[i] = hex
		} else {
			lines[i] = strconv.Itoa(i+1) + ". " + hex
		}
	}
	return strings.Join(lines, "\n")
}

const (
	svgSwatch = 40
	svgGap    = 8
)

// SVG renders a single row of square swatches that Figma imports as
// separate layers named after their hex values. The root id is the
// timestamp of the export.
func SVG(res palette.Result, now time.Time) string {
	width := 0
	if n := len(res.Colors); n > 0 {
		width = n*svgSwatch + (n-1)*svgGap
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg id="%s" width="%d" height="%d" viewBox="0 0 %d %d" fill="none" xmlns="http://www.w3.org/2000/svg">`,
		now.Format("20060102-150405"), width, svgSwatch, width, svgSwatch)
	b.WriteByte('\n')
	for i, c := range res.Colors {
		fmt.Fprintf(&b, `  <rect id="%s" x="%d" y="0" width="%d" height="%d" fill="%s"/>`,
			strings.TrimPrefix(c.Hex, "#"), i*(svgSwatch+svgGap), svgSwatch, svgSwatch, c.Hex)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")
	return b.String()
}
