package palette

import (
	"testing"

	"github.com/jpfaraco/colorguru/internal/colormath"
)

func grays(ls ...float64) []colormath.HSL {
	out := make([]colormath.HSL, len(ls))
	for i, l := range ls {
		out[i] = colormath.HSL{L: l}
	}
	return out
}

func TestBestPosition(t *testing.T) {
	ramp := grays(10, 30, 50, 70, 90)

	tests := []struct {
		name   string
		colors []colormath.HSL
		pinned float64
		want   int
	}{
		{"empty", nil, 50, 0},
		{"single similar goes after", grays(50), 60, 1},
		{"single distinct goes before", grays(0), 100, 0},
		{"interior gap", ramp, 40, 2},
		{"gap above middle", ramp, 60, 3},
		{"first minimum wins", grays(40, 60, 40, 60), 50, 1},
		{"start edge", ramp, 0, 0},
		{"end edge", ramp, 95, 5},
		{"two colors between", grays(20, 80), 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestPosition(tt.colors, colormath.HSL{L: tt.pinned})
			if got != tt.want {
				t.Errorf("BestPosition(L=%v) = %d, want %d", tt.pinned, got, tt.want)
			}
		})
	}
}

func TestBestPositionHueWraps(t *testing.T) {
	colors := []colormath.HSL{
		{H: 60, S: 80, L: 50},
		{H: 180, S: 80, L: 50},
		{H: 300, S: 80, L: 50},
		{H: 350, S: 80, L: 50},
	}
	// 5 degrees is next to 350, not far from it.
	if got := BestPosition(colors, colormath.HSL{H: 5, S: 80, L: 50}); got != 4 {
		t.Errorf("BestPosition(H=5) = %d, want 4", got)
	}
}

func TestPinIndex(t *testing.T) {
	ramp := grays(10, 30, 50, 70, 90)

	tests := []struct {
		pinned float64
		want   int
	}{
		{0, 0},
		{95, 4},
		{40, 1}, // equidistant: left neighbour
		{68, 3},
		{32, 1},
	}
	for _, tt := range tests {
		if got := PinIndex(ramp, colormath.HSL{L: tt.pinned}); got != tt.want {
			t.Errorf("PinIndex(L=%v) = %d, want %d", tt.pinned, got, tt.want)
		}
	}

	if got := PinIndex(nil, colormath.HSL{}); got != 0 {
		t.Errorf("PinIndex(nil) = %d, want 0", got)
	}
}
