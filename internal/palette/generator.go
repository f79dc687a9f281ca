// Package palette generates color sequences by easing hue, saturation and
// brightness between two endpoints, with optional pinning of one color.
package palette

import (
	"github.com/jpfaraco/colorguru/internal/applog"
	"github.com/jpfaraco/colorguru/internal/colormath"
)

// ColorStep is one generated color with its accessibility scores.
type ColorStep struct {
	Index              int             `json:"index"`
	HSL                colormath.HSL   `json:"hsl"`
	RGB                colormath.RGB   `json:"rgb"`
	Hex                string          `json:"hex"`
	ContrastRatioWhite float64         `json:"contrastRatioWhite"`
	ContrastRatioBlack float64         `json:"contrastRatioBlack"`
	WCAGWhite          colormath.Level `json:"wcagWhite"`
	WCAGBlack          colormath.Level `json:"wcagBlack"`
	IsPinned           bool            `json:"isPinned,omitempty"`
}

// Result holds the generated steps and the per-channel series used for
// graphs. All slices share the same length and index.
type Result struct {
	Colors           []ColorStep `json:"colors"`
	HueValues        []float64   `json:"hueValues"`
	SaturationValues []float64   `json:"saturationValues"`
	BrightnessValues []float64   `json:"brightnessValues"`
	// LuminanceValues are relative luminance as a percentage.
	LuminanceValues []float64 `json:"luminanceValues"`
}

// Generate builds the palette described by cfg. It never fails: unknown
// curves fall back to the default and an unparsable pin is ignored.
func Generate(cfg Config) Result {
	defer applog.Log.Timed("palette.Generate")()

	if cfg.Steps <= 0 {
		return Result{}
	}

	hueEase := cfg.Hue.Easing()
	satEase := cfg.Saturation.Easing()
	briEase := cfg.Brightness.Easing()

	res := Result{
		Colors:           make([]ColorStep, 0, cfg.Steps),
		HueValues:        make([]float64, 0, cfg.Steps),
		SaturationValues: make([]float64, 0, cfg.Steps),
		BrightnessValues: make([]float64, 0, cfg.Steps),
		LuminanceValues:  make([]float64, 0, cfg.Steps),
	}

	for i := 0; i < cfg.Steps; i++ {
		progress := 0.0
		if cfg.Steps > 1 {
			progress = float64(i) / float64(cfg.Steps-1)
		}

		h := colormath.InterpolateHue(cfg.Hue.Start, cfg.Hue.End, hueEase(progress), cfg.Hue.LongPath)
		s := colormath.InterpolateLinear(cfg.Saturation.Start, cfg.Saturation.End, satEase(progress)) * cfg.Saturation.Rate
		l := colormath.InterpolateLinear(cfg.Brightness.Start, cfg.Brightness.End, briEase(progress))

		hsl := colormath.HSL{
			H: h,
			S: colormath.Clamp(s, 0, 100),
			L: colormath.Clamp(l, 0, 100),
		}
		step := newStep(i, hsl)
		res.Colors = append(res.Colors, step)
		res.HueValues = append(res.HueValues, hsl.H)
		res.SaturationValues = append(res.SaturationValues, hsl.S)
		res.BrightnessValues = append(res.BrightnessValues, hsl.L)
		res.LuminanceValues = append(res.LuminanceValues, colormath.Luminance(step.RGB)*100)
	}

	if cfg.PinnedColor != "" {
		res.pin(cfg.PinnedColor, cfg.PinnedIndex)
	}
	return res
}

func newStep(index int, hsl colormath.HSL) ColorStep {
	rgb := colormath.HSLToRGB(hsl)
	white := colormath.ContrastRatio(rgb, colormath.White)
	black := colormath.ContrastRatio(rgb, colormath.Black)
	return ColorStep{
		Index:              index,
		HSL:                hsl,
		RGB:                rgb,
		Hex:                colormath.RGBToHex(rgb),
		ContrastRatioWhite: white,
		ContrastRatioBlack: black,
		WCAGWhite:          colormath.WCAGLevel(white, false),
		WCAGBlack:          colormath.WCAGLevel(black, false),
	}
}

// pin overwrites one step with hex. The pinned step keeps the HSL parsed
// from hex and derives RGB from it, so Hex and RGB stay consistent.
func (r *Result) pin(hex string, index *int) {
	hsl, err := colormath.HexToHSL(hex)
	if err != nil {
		applog.Log.Debug("pin skipped", "color", hex, "error", err)
		return
	}

	var target int
	if index != nil {
		target = min(max(*index, 0), len(r.Colors)-1)
	} else {
		hsls := make([]colormath.HSL, len(r.Colors))
		for i, c := range r.Colors {
			hsls[i] = c.HSL
		}
		target = PinIndex(hsls, hsl)
	}

	step := newStep(target, hsl)
	step.IsPinned = true
	r.Colors[target] = step
	r.HueValues[target] = hsl.H
	r.SaturationValues[target] = hsl.S
	r.BrightnessValues[target] = hsl.L
	r.LuminanceValues[target] = colormath.Luminance(step.RGB) * 100
	applog.Log.Debug("pinned color", "color", step.Hex, "index", target)
}

// Hexes returns the hex string of every step.
func (r Result) Hexes() []string {
	out := make([]string, len(r.Colors))
	for i, c := range r.Colors {
		out[i] = c.Hex
	}
	return out
}

// Pinned returns the pinned step, if any.
func (r Result) Pinned() (ColorStep, bool) {
	for _, c := range r.Colors {
		if c.IsPinned {
			return c, true
		}
	}
	return ColorStep{}, false
}
