package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jpfaraco/colorguru/internal/applog"
	"github.com/jpfaraco/colorguru/internal/colormath"
	"github.com/jpfaraco/colorguru/internal/config"
	"github.com/jpfaraco/colorguru/internal/easing"
	"github.com/jpfaraco/colorguru/internal/palette"
)

// paletteFlags are shared by every command that generates a palette.
// Only flags the user sets override the config and palette file.
type paletteFlags struct {
	file    string
	steps   int
	presets bool
	strict  bool

	hueStart, hueEnd float64
	hueCurve, hueBez string
	longPath         bool
	satStart, satEnd float64
	satRate          float64
	satCurve, satBez string
	briStart, briEnd float64
	briCurve, briBez string
	pin              string
	pinAt            int
}

var pf paletteFlags

func addPaletteFlags(c *cobra.Command) {
	def := palette.DefaultConfig()
	f := c.Flags()
	f.StringVarP(&pf.file, "palette", "p", "", "palette file (TOML) applied on top of the config")
	f.IntVarP(&pf.steps, "steps", "n", def.Steps, fmt.Sprintf("number of colors (%d-%d)", palette.MinSteps, palette.MaxSteps))
	f.BoolVar(&pf.presets, "presets", false, "replace named curves with their cubic-bezier presets")
	f.BoolVar(&pf.strict, "strict", false, "fail when values are outside the editor ranges")

	f.Float64Var(&pf.hueStart, "hue-start", def.Hue.Start, "start hue (0-360)")
	f.Float64Var(&pf.hueEnd, "hue-end", def.Hue.End, "end hue (0-360)")
	f.StringVar(&pf.hueCurve, "hue-curve", def.Hue.Curve, "hue easing curve")
	f.StringVar(&pf.hueBez, "hue-bezier", "", "hue cubic-bezier x1,y1,x2,y2 (overrides --hue-curve)")
	f.BoolVar(&pf.longPath, "long-path", false, "interpolate hue the long way around the circle")

	f.Float64Var(&pf.satStart, "sat-start", def.Saturation.Start, "start saturation (0-100)")
	f.Float64Var(&pf.satEnd, "sat-end", def.Saturation.End, "end saturation (0-100)")
	f.Float64Var(&pf.satRate, "sat-rate", def.Saturation.Rate, "saturation multiplier (0-2)")
	f.StringVar(&pf.satCurve, "sat-curve", def.Saturation.Curve, "saturation easing curve")
	f.StringVar(&pf.satBez, "sat-bezier", "", "saturation cubic-bezier x1,y1,x2,y2")

	f.Float64Var(&pf.briStart, "bri-start", def.Brightness.Start, "start brightness (0-100)")
	f.Float64Var(&pf.briEnd, "bri-end", def.Brightness.End, "end brightness (0-100)")
	f.StringVar(&pf.briCurve, "bri-curve", def.Brightness.Curve, "brightness easing curve")
	f.StringVar(&pf.briBez, "bri-bezier", "", "brightness cubic-bezier x1,y1,x2,y2")

	f.StringVar(&pf.pin, "pin", "", "hex color to place in the palette")
	f.IntVar(&pf.pinAt, "pin-at", 0, "1-based position for --pin (default: closest step)")
}

// resolvePalette layers defaults, the config's [palette] table, the
// --palette file and explicit flags, in that order.
func resolvePalette(cmd *cobra.Command) (palette.Config, error) {
	cfg := appConfig.Palette.Clone()
	if pf.file != "" {
		var err error
		if cfg, err = config.LoadPalette(pf.file, cfg); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("steps") {
		cfg.Steps = pf.steps
	}
	setFloat(f, "hue-start", &cfg.Hue.Start, pf.hueStart)
	setFloat(f, "hue-end", &cfg.Hue.End, pf.hueEnd)
	if f.Changed("long-path") {
		cfg.Hue.LongPath = pf.longPath
	}
	setFloat(f, "sat-start", &cfg.Saturation.Start, pf.satStart)
	setFloat(f, "sat-end", &cfg.Saturation.End, pf.satEnd)
	setFloat(f, "sat-rate", &cfg.Saturation.Rate, pf.satRate)
	setFloat(f, "bri-start", &cfg.Brightness.Start, pf.briStart)
	setFloat(f, "bri-end", &cfg.Brightness.End, pf.briEnd)

	for _, c := range []struct {
		curve, bezier string
		ch            *palette.Channel
		name, bez     string
	}{
		{"hue-curve", "hue-bezier", &cfg.Hue.Channel, pf.hueCurve, pf.hueBez},
		{"sat-curve", "sat-bezier", &cfg.Saturation.Channel, pf.satCurve, pf.satBez},
		{"bri-curve", "bri-bezier", &cfg.Brightness, pf.briCurve, pf.briBez},
	} {
		if err := setCurve(f, c.curve, c.bezier, c.ch, c.name, c.bez); err != nil {
			return cfg, err
		}
	}

	if f.Changed("pin") {
		cfg.PinnedColor = pf.pin
		cfg.PinnedIndex = nil
		if pf.pin != "" && !colormath.IsValidHex(pf.pin) {
			return cfg, fmt.Errorf("--pin %q: %w", pf.pin, colormath.ErrInvalidFormat)
		}
	}
	if f.Changed("pin-at") {
		if cfg.PinnedColor == "" {
			return cfg, fmt.Errorf("--pin-at needs a pinned color")
		}
		idx := pf.pinAt - 1
		cfg.PinnedIndex = &idx
	}

	if pf.presets {
		cfg.ApplyPresets()
	}

	if err := cfg.Validate(); err != nil {
		if pf.strict {
			return cfg, fmt.Errorf("invalid palette: %w", err)
		}
		applog.Log.Warn("palette outside editor ranges", "error", err)
	}
	return cfg, nil
}

func setFloat(f *pflag.FlagSet, name string, dst *float64, v float64) {
	if f.Changed(name) {
		*dst = v
	}
}

func setCurve(f *pflag.FlagSet, curveFlag, bezierFlag string, ch *palette.Channel, name, bez string) error {
	if f.Changed(curveFlag) {
		if _, ok := easing.Lookup(name); !ok {
			return fmt.Errorf("--%s: unknown curve %q (see colorguru curves)", curveFlag, name)
		}
		ch.Curve = name
		ch.Custom = nil
	}
	if f.Changed(bezierFlag) {
		b, err := easing.ParseBezier(bez)
		if err != nil {
			return fmt.Errorf("--%s: %w", bezierFlag, err)
		}
		ch.Custom = &b
	}
	return nil
}
