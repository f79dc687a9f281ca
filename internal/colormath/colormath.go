// Package colormath provides the color-space math used by the palette
// generator: HSL, RGB and hex conversions, WCAG relative luminance and
// contrast scoring, and circular hue interpolation.
//
// Everything here is a pure function of its arguments.
package colormath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a hex color string is malformed.
var ErrInvalidFormat = errors.New("invalid hex color format")

// HSL is a Hue-Saturation-Lightness color.
type HSL struct {
	H float64 `json:"h" toml:"h"` // Hue: 0-360
	S float64 `json:"s" toml:"s"` // Saturation: 0-100
	L float64 `json:"l" toml:"l"` // Lightness: 0-100
}

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R int `json:"r" toml:"r"`
	G int `json:"g" toml:"g"`
	B int `json:"b" toml:"b"`
}

// Level is a WCAG conformance level for a contrast ratio.
type Level string

const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelA    Level = "A"
	LevelFail Level = "Fail"
)

var (
	White = RGB{R: 255, G: 255, B: 255}
	Black = RGB{R: 0, G: 0, B: 0}
)

// HSLToRGB converts using the CSS Color algorithm. Channels are rounded
// half-up and clamped to 0..255.
func HSLToRGB(hsl HSL) RGB {
	hue := hsl.H / 360
	sat := hsl.S / 100
	light := hsl.L / 100

	c := (1 - math.Abs(2*light-1)) * sat
	x := c * (1 - math.Abs(math.Mod(hue*6, 2)-1))
	m := light - c/2

	var r, g, b float64
	switch {
	case 0 <= hue && hue < 1.0/6:
		r, g, b = c, x, 0
	case 1.0/6 <= hue && hue < 2.0/6:
		r, g, b = x, c, 0
	case 2.0/6 <= hue && hue < 3.0/6:
		r, g, b = 0, c, x
	case 3.0/6 <= hue && hue < 4.0/6:
		r, g, b = 0, x, c
	case 4.0/6 <= hue && hue < 5.0/6:
		r, g, b = x, 0, c
	case 5.0/6 <= hue && hue < 1:
		r, g, b = c, 0, x
	}

	return RGB{
		R: toByte(r + m),
		G: toByte(g + m),
		B: toByte(b + m),
	}
}

func toByte(v float64) int {
	n := int(math.Floor(v*255 + 0.5))
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

// RGBToHex formats an RGB color as "#RRGGBB" in uppercase.
func RGBToHex(rgb RGB) string {
	return fmt.Sprintf("#%02X%02X%02X", rgb.R&0xff, rgb.G&0xff, rgb.B&0xff)
}

// HSLToHex converts an HSL color straight to its hex string.
func HSLToHex(hsl HSL) string {
	return RGBToHex(HSLToRGB(hsl))
}

// HexToRGB parses "#RGB", "#RRGGBB" or the same without the leading '#'.
func HexToRGB(hex string) (RGB, error) {
	s := strings.TrimPrefix(hex, "#")
	if !isHexDigits(s) || (len(s) != 3 && len(s) != 6) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	return RGB{
		R: int(v >> 16 & 0xff),
		G: int(v >> 8 & 0xff),
		B: int(v & 0xff),
	}, nil
}

// HexToHSL parses a hex string and converts it to HSL.
func HexToHSL(hex string) (HSL, error) {
	rgb, err := HexToRGB(hex)
	if err != nil {
		return HSL{}, err
	}
	return RGBToHSL(rgb), nil
}

// IsValidHex reports whether HexToRGB would accept s.
func IsValidHex(s string) bool {
	_, err := HexToRGB(s)
	return err == nil
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// RGBToHSL converts an RGB color to HSL. Grays (max == min) get hue 0 and
// saturation 0.
func RGBToHSL(rgb RGB) HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{H: NormalizeHue(h * 60), S: s * 100, L: l * 100}
}

// Luminance returns the WCAG relative luminance of a color in [0,1].
func Luminance(rgb RGB) float64 {
	return 0.2126*linearize(rgb.R) + 0.7152*linearize(rgb.G) + 0.0722*linearize(rgb.B)
}

func linearize(channel int) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors, from
// 1 (identical luminance) to 21 (black on white).
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)
	lighter := math.Max(l1, l2)
	darker := math.Min(l1, l2)
	return (lighter + 0.05) / (darker + 0.05)
}

// WCAGLevel classifies a contrast ratio. The largeText flag is accepted for
// API compatibility; both text sizes currently use the 7 / 4.5 / 3
// thresholds.
func WCAGLevel(ratio float64, largeText bool) Level {
	switch {
	case ratio >= 7:
		return LevelAAA
	case ratio >= 4.5:
		return LevelAA
	case ratio >= 3:
		return LevelA
	}
	return LevelFail
}

// BestTextColor picks white or black text for a swatch, whichever
// contrasts more. Ties go to black.
func BestTextColor(bg RGB) RGB {
	if ContrastRatio(bg, White) > ContrastRatio(bg, Black) {
		return White
	}
	return Black
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
