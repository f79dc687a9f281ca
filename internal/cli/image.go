package cli

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/ansi/sixel"
	"golang.org/x/image/draw"

	"github.com/jpfaraco/colorguru/internal/applog"
	"github.com/jpfaraco/colorguru/internal/export"
	"github.com/jpfaraco/colorguru/internal/palette"
)

// Graphics is a terminal inline image protocol.
type Graphics string

const (
	GraphicsNone  Graphics = "none"
	GraphicsKitty Graphics = "kitty"
	GraphicsSixel Graphics = "sixel"
	GraphicsAuto  Graphics = "auto"
)

// ParseGraphics reads a --protocol value.
func ParseGraphics(s string) (Graphics, error) {
	switch g := Graphics(strings.ToLower(strings.TrimSpace(s))); g {
	case "", GraphicsAuto:
		return GraphicsAuto, nil
	case GraphicsNone, GraphicsKitty, GraphicsSixel:
		return g, nil
	}
	return "", fmt.Errorf("unknown graphics protocol %q (want auto, kitty, sixel or none)", s)
}

// DetectGraphics picks a protocol from TERM and TERM_PROGRAM.
func DetectGraphics(getenv func(string) string) Graphics {
	term := getenv("TERM")
	program := getenv("TERM_PROGRAM")

	if strings.Contains(term, "kitty") || program == "kitty" {
		return GraphicsKitty
	}
	switch program {
	case "ghostty", "WezTerm":
		return GraphicsKitty
	case "iTerm.app", "foot", "mlterm", "contour":
		return GraphicsSixel
	}
	if strings.Contains(term, "xterm") {
		return GraphicsSixel
	}
	return GraphicsNone
}

// cellWidthPx approximates one terminal cell in pixels.
const cellWidthPx = 8

// kittyChunk is the largest payload per kitty APC sequence.
const kittyChunk = 4096

// InlineImage renders the palette PNG as an escape sequence for g, scaled
// down to fit maxCells columns.
func InlineImage(res palette.Result, opts export.PNGOptions, g Graphics, maxCells int) (string, error) {
	if len(res.Colors) == 0 {
		return "", nil
	}
	img := fitWidth(export.Image(res, opts), maxCells*cellWidthPx)

	switch g {
	case GraphicsKitty:
		return kittyImage(img)
	case GraphicsSixel:
		return sixelImage(img)
	}
	return "", fmt.Errorf("no graphics protocol available")
}

func fitWidth(img image.Image, maxPx int) image.Image {
	bounds := img.Bounds()
	if maxPx <= 0 || bounds.Dx() <= maxPx {
		return img
	}
	ratio := float64(maxPx) / float64(bounds.Dx())
	h := max(1, int(float64(bounds.Dy())*ratio))
	applog.Log.Debug("scaling inline image", "from", bounds.Dx(), "to", maxPx)
	resized := image.NewNRGBA(image.Rect(0, 0, maxPx, h))
	draw.BiLinear.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
	return resized
}

// kittyImage transmits PNG data in base64 chunks.
func kittyImage(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("png encode: %w", err)
	}
	data := base64.StdEncoding.EncodeToString(buf.Bytes())

	var out strings.Builder
	for i := 0; i < len(data); i += kittyChunk {
		end := min(i+kittyChunk, len(data))
		var opts []string
		if i == 0 {
			// transmit and display a PNG sent inline
			opts = append(opts, "a=T", "f=100", "t=d")
		}
		if end >= len(data) {
			opts = append(opts, "m=0")
		} else {
			opts = append(opts, "m=1")
		}
		out.WriteString(ansi.KittyGraphics([]byte(data[i:end]), opts...))
	}
	return out.String(), nil
}

func sixelImage(img image.Image) (string, error) {
	var buf bytes.Buffer
	enc := sixel.Encoder{}
	if err := enc.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("sixel encode: %w", err)
	}
	return ansi.SixelGraphics(0, 1, 0, buf.Bytes()), nil
}
