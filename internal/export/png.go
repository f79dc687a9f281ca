package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jpfaraco/colorguru/internal/colormath"
	"github.com/jpfaraco/colorguru/internal/palette"
)

// PNGOptions sizes the swatch image. Zero values use the SVG geometry at
// scale 1. A negative Gap places swatches edge to edge.
type PNGOptions struct {
	Swatch int  `toml:"swatch" json:"swatch"`
	Gap    int  `toml:"gap" json:"gap"`
	Scale  int  `toml:"scale" json:"scale"`
	Labels bool `toml:"labels" json:"labels"`
}

// labeledSwatch fits six 7px glyphs with some margin.
const labeledSwatch = 56

func (o PNGOptions) withDefaults() PNGOptions {
	if o.Swatch <= 0 {
		o.Swatch = svgSwatch
		if o.Labels {
			o.Swatch = labeledSwatch
		}
	}
	switch {
	case o.Gap < 0:
		o.Gap = 0
	case o.Gap == 0:
		o.Gap = svgGap
	}
	if o.Scale <= 0 {
		o.Scale = 1
	}
	return o
}

// Image draws the swatch strip. Gaps are transparent. Labels print the
// hex digits in the swatch's best text color.
func Image(res palette.Result, opts PNGOptions) *image.NRGBA {
	opts = opts.withDefaults()

	n := len(res.Colors)
	width := 1
	if n > 0 {
		width = n*opts.Swatch + (n-1)*opts.Gap
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, opts.Swatch))

	face := basicfont.Face7x13
	for i, c := range res.Colors {
		x0 := i * (opts.Swatch + opts.Gap)
		r := image.Rect(x0, 0, x0+opts.Swatch, opts.Swatch)
		draw.Draw(img, r, image.NewUniform(nrgba(c.RGB)), image.Point{}, draw.Src)

		if !opts.Labels {
			continue
		}
		label := c.Hex[1:]
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(nrgba(colormath.BestTextColor(c.RGB))),
			Face: face,
		}
		adv := d.MeasureString(label).Ceil()
		if adv > opts.Swatch {
			continue
		}
		d.Dot = fixed.P(x0+(opts.Swatch-adv)/2, opts.Swatch-face.Descent-2)
		d.DrawString(label)
	}

	if opts.Scale == 1 {
		return img
	}
	b := img.Bounds()
	scaled := image.NewNRGBA(image.Rect(0, 0, b.Dx()*opts.Scale, b.Dy()*opts.Scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, b, draw.Src, nil)
	return scaled
}

// PNG encodes Image(res, opts) to w.
func PNG(w io.Writer, res palette.Result, opts PNGOptions) error {
	if err := png.Encode(w, Image(res, opts)); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

func nrgba(c colormath.RGB) color.NRGBA {
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff}
}
