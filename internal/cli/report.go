package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/glamour"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/jpfaraco/colorguru/internal/colormath"
	"github.com/jpfaraco/colorguru/internal/i18n"
	"github.com/jpfaraco/colorguru/internal/palette"
)

func toColorful(c colormath.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// DeltaE is the CIEDE2000 difference between two colors on the usual
// 0-100 scale.
func DeltaE(a, b colormath.RGB) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b)) * 100
}

// Lightness is the CIELAB L* of c, 0-100.
func Lightness(c colormath.RGB) float64 {
	l, _, _ := toColorful(c).Lab()
	return colormath.Clamp(l*100, 0, 100)
}

// Stats summarizes a palette for the report.
type Stats struct {
	Total       int
	PassWhite   int // AA or better against white
	PassBlack   int // AA or better against black
	MinDeltaE   float64
	MaxDeltaE   float64
	MeanDeltaE  float64
	DeltaE      []float64 // DeltaE[i] is between step i and i+1
	PinnedIndex int       // -1 when nothing is pinned
}

func passes(l colormath.Level) bool {
	return l == colormath.LevelAA || l == colormath.LevelAAA
}

// Summarize computes Stats for res.
func Summarize(res palette.Result) Stats {
	s := Stats{Total: len(res.Colors), PinnedIndex: -1}
	for i, c := range res.Colors {
		if passes(c.WCAGWhite) {
			s.PassWhite++
		}
		if passes(c.WCAGBlack) {
			s.PassBlack++
		}
		if c.IsPinned {
			s.PinnedIndex = i
		}
		if i > 0 {
			s.DeltaE = append(s.DeltaE, DeltaE(res.Colors[i-1].RGB, c.RGB))
		}
	}
	if len(s.DeltaE) == 0 {
		return s
	}
	s.MinDeltaE = math.Inf(1)
	sum := 0.0
	for _, d := range s.DeltaE {
		s.MinDeltaE = math.Min(s.MinDeltaE, d)
		s.MaxDeltaE = math.Max(s.MaxDeltaE, d)
		sum += d
	}
	s.MeanDeltaE = sum / float64(len(s.DeltaE))
	return s
}

// ReportMarkdown builds the accessibility report as Markdown.
func ReportMarkdown(res palette.Result, cfg palette.Config) string {
	s := Summarize(res)
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", i18n.T("report.title", "Palette report"))
	fmt.Fprintf(&b, "- **%s:** %d\n", i18n.T("palette.totalColors", "Total Colors"), s.Total)
	fmt.Fprintf(&b, "- **%s:** %g° → %g° (%s)", i18n.T("palette.hue", "Hue"), cfg.Hue.Start, cfg.Hue.End, curveLabel(cfg.Hue.Channel))
	if cfg.Hue.LongPath {
		fmt.Fprintf(&b, ", %s", i18n.T("palette.longPath", "Long path interpolation"))
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "- **%s:** %g%% → %g%% (%s, %s %g)\n", i18n.T("palette.saturation", "Saturation"),
		cfg.Saturation.Start, cfg.Saturation.End, curveLabel(cfg.Saturation.Channel), i18n.T("palette.rate", "Rate"), cfg.Saturation.Rate)
	fmt.Fprintf(&b, "- **%s:** %g%% → %g%% (%s)\n", i18n.T("palette.brightness", "Brightness"),
		cfg.Brightness.Start, cfg.Brightness.End, curveLabel(cfg.Brightness))
	fmt.Fprintf(&b, "- **%s:** %d/%d\n", i18n.T("report.passWhite", "AA or better on white"), s.PassWhite, s.Total)
	fmt.Fprintf(&b, "- **%s:** %d/%d\n", i18n.T("report.passBlack", "AA or better on black"), s.PassBlack, s.Total)
	if len(s.DeltaE) > 0 {
		fmt.Fprintf(&b, "- **%s:** %.1f / %.1f / %.1f\n", i18n.T("report.deltaE", "ΔE2000 between neighbours (min / mean / max)"),
			s.MinDeltaE, s.MeanDeltaE, s.MaxDeltaE)
	}
	b.WriteByte('\n')

	fmt.Fprintf(&b, "| # | Hex | HSL | L* | %s | WCAG | %s | WCAG | ΔE |\n",
		i18n.T("contrast.onWhite", "white"), i18n.T("contrast.onBlack", "black"))
	b.WriteString("|---:|---|---|---:|---:|---|---:|---|---:|\n")
	for i, c := range res.Colors {
		hex := "`" + c.Hex + "`"
		if c.IsPinned {
			hex += " *"
		}
		delta := "-"
		if i > 0 {
			delta = fmt.Sprintf("%.1f", s.DeltaE[i-1])
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %.1f | %.2f | %s | %.2f | %s | %s |\n",
			i+1, hex, FormatHSL(c.HSL), Lightness(c.RGB),
			c.ContrastRatioWhite, c.WCAGWhite, c.ContrastRatioBlack, c.WCAGBlack, delta)
	}
	if s.PinnedIndex >= 0 {
		fmt.Fprintf(&b, "\n\\* %s\n", i18n.T("palette.pinned", "pinned"))
	}

	b.WriteString("\n## WCAG\n\n")
	for _, l := range []colormath.Level{colormath.LevelAAA, colormath.LevelAA, colormath.LevelA, colormath.LevelFail} {
		fmt.Fprintf(&b, "- %s\n", wcagDescription(l))
	}
	return b.String()
}

func curveLabel(c palette.Channel) string {
	if c.Custom != nil {
		return "cubic-bezier(" + c.Custom.String() + ")"
	}
	return c.Curve
}

// RenderMarkdown renders md for the terminal. Without color the "notty"
// style is used so the output stays plain.
func RenderMarkdown(md string, width int, color bool) (string, error) {
	style := "dark"
	if !color {
		style = "notty"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(max(20, width-4)),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	return r.Render(md)
}
