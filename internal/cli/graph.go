package cli

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/jpfaraco/colorguru/internal/i18n"
	"github.com/jpfaraco/colorguru/internal/palette"
)

// Channel names a per-step series that can be graphed.
type Channel string

const (
	ChannelHue        Channel = "hue"
	ChannelSaturation Channel = "saturation"
	ChannelBrightness Channel = "brightness"
	ChannelLuminance  Channel = "luminance"
	ChannelSatBri     Channel = "satbri"
)

// Channels lists the graphable series in display order.
func Channels() []Channel {
	return []Channel{ChannelHue, ChannelSaturation, ChannelBrightness, ChannelLuminance, ChannelSatBri}
}

// ParseChannel accepts a channel name or its first letter.
func ParseChannel(s string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hue", "h":
		return ChannelHue, nil
	case "saturation", "sat", "s":
		return ChannelSaturation, nil
	case "brightness", "lightness", "b", "l":
		return ChannelBrightness, nil
	case "luminance", "lum":
		return ChannelLuminance, nil
	case "satbri", "sat-bri", "sb":
		return ChannelSatBri, nil
	}
	return "", fmt.Errorf("unknown channel %q (want hue, saturation, brightness, luminance or satbri)", s)
}

// Title is the localized graph heading.
func (c Channel) Title() string {
	switch c {
	case ChannelHue:
		return i18n.T("graph.hue", "Hue")
	case ChannelSaturation:
		return i18n.T("graph.saturation", "Saturation")
	case ChannelBrightness:
		return i18n.T("graph.brightness", "Brightness")
	case ChannelLuminance:
		return i18n.T("graph.luminance", "Luminance")
	case ChannelSatBri:
		return i18n.T("graph.satBri", "Saturation × Brightness")
	}
	return string(c)
}

// limit is the full-scale value of the channel.
func (c Channel) limit() float64 {
	if c == ChannelHue {
		return 360
	}
	return 100
}

func (c Channel) values(res palette.Result) []float64 {
	switch c {
	case ChannelHue:
		return res.HueValues
	case ChannelSaturation:
		return res.SaturationValues
	case ChannelBrightness:
		return res.BrightnessValues
	case ChannelLuminance:
		return res.LuminanceValues
	}
	return nil
}

const (
	graphLabelWidth = 4
	graphValueWidth = 7
	minBarWidth     = 10
	barRune         = "█"
)

// Graph renders one horizontal bar per step, colored with the step's own
// color. width is the total line width in cells.
func Graph(res palette.Result, ch Channel, width int) string {
	bar := width - graphLabelWidth - graphValueWidth - 2
	if bar < minBarWidth {
		bar = minBarWidth
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(ch.Title()))
	b.WriteByte('\n')

	if ch == ChannelSatBri {
		for i, c := range res.Colors {
			graphRow(&b, fmt.Sprintf("%3dS", i+1), c.Hex, res.SaturationValues[i], 100, bar)
			graphRow(&b, "   B", c.Hex, res.BrightnessValues[i], 100, bar)
		}
		return b.String()
	}

	values := ch.values(res)
	for i, c := range res.Colors {
		graphRow(&b, fmt.Sprintf("%3d ", i+1), c.Hex, values[i], ch.limit(), bar)
	}
	return b.String()
}

func graphRow(b *strings.Builder, label, hex string, v, limit float64, width int) {
	n := BarLength(v, limit, width)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	fmt.Fprintf(b, "%s %*.1f %s\n", mutedStyle.Render(label), graphValueWidth-1, v, style.Render(strings.Repeat(barRune, n)))
}

// BarLength scales v against limit into [0,width] cells.
func BarLength(v, limit float64, width int) int {
	if limit <= 0 || math.IsNaN(v) {
		return 0
	}
	n := int(math.Round(v / limit * float64(width)))
	return max(0, min(n, width))
}
