package cli

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jpfaraco/colorguru/internal/colormath"
	"github.com/jpfaraco/colorguru/internal/i18n"
	"github.com/jpfaraco/colorguru/internal/palette"
)

const swatchWidth = 11

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	pinStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f59e0b"))
)

// levelColor maps a WCAG level to a traffic-light color.
func levelColor(l colormath.Level) string {
	switch l {
	case colormath.LevelAAA, colormath.LevelAA:
		return "#22c55e"
	case colormath.LevelA:
		return "#eab308"
	}
	return "#ef4444"
}

func levelText(l colormath.Level) string {
	return lipgloss.NewStyle().Width(4).Foreground(lipgloss.Color(levelColor(l))).Render(string(l))
}

// Swatch renders hex as a colored block labelled in its best text color.
func Swatch(c palette.ColorStep, width int) string {
	text := colormath.RGBToHex(colormath.BestTextColor(c.RGB))
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex)).
		Foreground(lipgloss.Color(text)).
		Width(width).
		Align(lipgloss.Center).
		Render(c.Hex)
}

// FormatHSL formats h as CSS hsl() with whole-number components.
func FormatHSL(h colormath.HSL) string {
	return fmt.Sprintf("hsl(%.0f, %.0f%%, %.0f%%)", h.H, h.S, h.L)
}

// Swatches renders one row per step: index, swatch, HSL and the contrast
// against white and black text.
func Swatches(res palette.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d\n\n", headerStyle.Render(i18n.T("palette.totalColors", "Total Colors")), len(res.Colors))

	onWhite := i18n.T("contrast.onWhite", "white")
	onBlack := i18n.T("contrast.onBlack", "black")
	for i, c := range res.Colors {
		row := []string{
			mutedStyle.Render(fmt.Sprintf("%3d", i+1)),
			Swatch(c, swatchWidth),
			lipgloss.NewStyle().Width(22).Render(FormatHSL(c.HSL)),
			fmt.Sprintf("%s %5.2f %s", onWhite, c.ContrastRatioWhite, levelText(c.WCAGWhite)),
			fmt.Sprintf("%s %5.2f %s", onBlack, c.ContrastRatioBlack, levelText(c.WCAGBlack)),
		}
		if c.IsPinned {
			row = append(row, pinStyle.Render(i18n.T("palette.pinned", "pinned")))
		}
		b.WriteString(strings.TrimRight(strings.Join(row, " "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Strip renders the palette as a single line of colored cells.
func Strip(res palette.Result, cell int) string {
	if cell <= 0 {
		cell = 2
	}
	var b strings.Builder
	for _, c := range res.Colors {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(c.Hex)).Render(strings.Repeat(" ", cell)))
	}
	return b.String()
}

// ColorDetails renders a single color the way convert and contrast show it.
func ColorDetails(hex string) (string, error) {
	rgb, err := colormath.HexToRGB(hex)
	if err != nil {
		return "", err
	}
	hsl := colormath.RGBToHSL(rgb)
	step := palette.ColorStep{HSL: hsl, RGB: rgb, Hex: colormath.RGBToHex(rgb)}
	white := colormath.ContrastRatio(rgb, colormath.White)
	black := colormath.ContrastRatio(rgb, colormath.Black)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", Swatch(step, swatchWidth))
	fmt.Fprintf(&b, "%-10s %s\n", "hex", step.Hex)
	fmt.Fprintf(&b, "%-10s rgb(%d, %d, %d)\n", "rgb", rgb.R, rgb.G, rgb.B)
	fmt.Fprintf(&b, "%-10s %s\n", "hsl", FormatHSL(hsl))
	fmt.Fprintf(&b, "%-10s %.2f%%\n", i18n.T("palette.luminance", "Luminance"), colormath.Luminance(rgb)*100)
	fmt.Fprintf(&b, "%-10s %5.2f %s\n", i18n.T("contrast.onWhite", "white"), white, levelText(colormath.WCAGLevel(white, false)))
	fmt.Fprintf(&b, "%-10s %5.2f %s\n", i18n.T("contrast.onBlack", "black"), black, levelText(colormath.WCAGLevel(black, false)))
	return b.String(), nil
}

// Contrast renders the ratio between two colors with its WCAG level for
// normal and large text.
func Contrast(fg, bg string) (string, error) {
	a, err := colormath.HexToRGB(fg)
	if err != nil {
		return "", err
	}
	c, err := colormath.HexToRGB(bg)
	if err != nil {
		return "", err
	}
	ratio := colormath.ContrastRatio(a, c)
	sample := lipgloss.NewStyle().
		Foreground(lipgloss.Color(colormath.RGBToHex(a))).
		Background(lipgloss.Color(colormath.RGBToHex(c))).
		Padding(0, 2).
		Render("Aa")

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s / %s\n", sample, colormath.RGBToHex(a), colormath.RGBToHex(c))
	fmt.Fprintf(&b, "%s: %.2f:1\n", i18n.T("contrast.ratio", "Contrast ratio"), ratio)
	fmt.Fprintf(&b, "%s\n", wcagDescription(colormath.WCAGLevel(ratio, false)))
	return b.String(), nil
}

// wcagDescription is the localized explanation of a level.
func wcagDescription(l colormath.Level) string {
	switch l {
	case colormath.LevelAAA:
		return i18n.T("wcag.aaa", "AAA: Enhanced contrast (7:1+ ratio)")
	case colormath.LevelAA:
		return i18n.T("wcag.aa", "AA: Standard contrast (4.5:1+ ratio)")
	case colormath.LevelA:
		return i18n.T("wcag.a", "A: Minimum contrast (3:1+ ratio)")
	}
	return i18n.T("wcag.fail", "Fail: Below minimum contrast (<3:1)")
}
