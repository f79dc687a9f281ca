package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jpfaraco/colorguru/internal/colormath"
	"github.com/jpfaraco/colorguru/internal/easing"
)

// Ranges accepted by Validate. Generate itself accepts anything.
const (
	MinSteps = 3
	MaxSteps = 21
	MaxRate  = 2
)

// Channel describes how one HSL component moves from Start to End.
// Custom, when set, takes precedence over Curve.
type Channel struct {
	Start  float64        `json:"start" toml:"start"`
	End    float64        `json:"end" toml:"end"`
	Curve  string         `json:"curve" toml:"curve"`
	Custom *easing.Bezier `json:"custom,omitempty" toml:"custom,omitempty"`
}

// HueChannel is a Channel on the hue circle.
type HueChannel struct {
	Channel
	LongPath bool `json:"longPath" toml:"longPath"`
}

// SaturationChannel scales interpolated saturation by Rate before clamping.
type SaturationChannel struct {
	Channel
	Rate float64 `json:"rate" toml:"rate"`
}

// Config is the full input to Generate.
type Config struct {
	Steps       int               `json:"steps" toml:"steps"`
	Hue         HueChannel        `json:"hue" toml:"hue"`
	Saturation  SaturationChannel `json:"saturation" toml:"saturation"`
	Brightness  Channel           `json:"brightness" toml:"brightness"`
	PinnedColor string            `json:"pinnedColor,omitempty" toml:"pinnedColor,omitempty"`
	PinnedIndex *int              `json:"pinnedIndex,omitempty" toml:"pinnedIndex,omitempty"`
}

// DefaultConfig returns the starting palette: eleven steps from teal to
// violet, darkening as saturation rises.
func DefaultConfig() Config {
	return Config{
		Steps: 11,
		Hue: HueChannel{
			Channel: Channel{Start: 180, End: 270, Curve: easing.Default},
		},
		Saturation: SaturationChannel{
			Channel: Channel{Start: 50, End: 80, Curve: easing.Default},
			Rate:    1,
		},
		Brightness: Channel{Start: 80, End: 20, Curve: easing.Default},
	}
}

// Easing resolves the channel's curve. Unknown names fall back to
// easing.Default.
func (c Channel) Easing() easing.Func {
	if c.Custom != nil {
		return c.Custom.Func()
	}
	return easing.Get(c.Curve)
}

// ApplyPresets replaces every named curve by its cubic-bezier preset.
// Channels that already carry a custom curve are left alone.
func (c *Config) ApplyPresets() {
	for _, ch := range []*Channel{&c.Hue.Channel, &c.Saturation.Channel, &c.Brightness} {
		if ch.Custom != nil {
			continue
		}
		b, ok := easing.Preset(ch.Curve)
		if !ok {
			b, _ = easing.Preset(easing.Default)
		}
		ch.Custom = &b
	}
}

// TogglePin pins hex, or clears the pin when hex matches the current one.
// Any explicit index is dropped so placement starts fresh.
func (c *Config) TogglePin(hex string) {
	c.PinnedIndex = nil
	if c.PinnedColor != "" && strings.EqualFold(c.PinnedColor, hex) {
		c.PinnedColor = ""
		return
	}
	c.PinnedColor = strings.ToLower(hex)
}

// Clone returns a copy of c that shares no pointers with it.
func (c Config) Clone() Config {
	out := c
	out.Hue.Custom = cloneBezier(c.Hue.Custom)
	out.Saturation.Custom = cloneBezier(c.Saturation.Custom)
	out.Brightness.Custom = cloneBezier(c.Brightness.Custom)
	if c.PinnedIndex != nil {
		idx := *c.PinnedIndex
		out.PinnedIndex = &idx
	}
	return out
}

func cloneBezier(b *easing.Bezier) *easing.Bezier {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// Validate reports every value outside the ranges the editor allows.
// The CLI runs it for --strict; Generate never does.
func (c Config) Validate() error {
	var errs []error
	if c.Steps < MinSteps || c.Steps > MaxSteps {
		errs = append(errs, fmt.Errorf("steps %d outside [%d,%d]", c.Steps, MinSteps, MaxSteps))
	}
	errs = append(errs, c.Hue.validate("hue", 360)...)
	errs = append(errs, c.Saturation.validate("saturation", 100)...)
	errs = append(errs, c.Brightness.validate("brightness", 100)...)
	if c.Saturation.Rate < 0 || c.Saturation.Rate > MaxRate {
		errs = append(errs, fmt.Errorf("saturation rate %g outside [0,%d]", c.Saturation.Rate, MaxRate))
	}
	if c.PinnedColor != "" && !colormath.IsValidHex(c.PinnedColor) {
		errs = append(errs, fmt.Errorf("pinned color: %w: %q", colormath.ErrInvalidFormat, c.PinnedColor))
	}
	if c.PinnedIndex != nil && (*c.PinnedIndex < 0 || *c.PinnedIndex >= c.Steps) {
		errs = append(errs, fmt.Errorf("pinned index %d outside [0,%d]", *c.PinnedIndex, c.Steps-1))
	}
	return errors.Join(errs...)
}

func (c Channel) validate(name string, limit float64) []error {
	var errs []error
	if c.Start < 0 || c.Start > limit {
		errs = append(errs, fmt.Errorf("%s start %g outside [0,%g]", name, c.Start, limit))
	}
	if c.End < 0 || c.End > limit {
		errs = append(errs, fmt.Errorf("%s end %g outside [0,%g]", name, c.End, limit))
	}
	if c.Custom != nil {
		if c.Custom.X1 < 0 || c.Custom.X1 > 1 || c.Custom.X2 < 0 || c.Custom.X2 > 1 {
			errs = append(errs, fmt.Errorf("%s bezier %s: x values must be in [0,1]", name, c.Custom))
		}
	} else if _, ok := easing.Lookup(c.Curve); !ok {
		errs = append(errs, fmt.Errorf("%s curve %q not in catalog", name, c.Curve))
	}
	return errs
}
