package colormath

import "math"

// NormalizeHue wraps h into [0,360). Non-finite input maps to 0.
func NormalizeHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360.
	if h >= 360 {
		h -= 360
	}
	return h
}

// InterpolateHue moves from start to end around the hue circle.
//
// The short arc is taken by default. A difference of exactly 180 degrees
// keeps the direction of end-start. With longPath the complementary arc is
// used instead; equal endpoints never move.
func InterpolateHue(start, end, progress float64, longPath bool) float64 {
	start = NormalizeHue(start)
	end = NormalizeHue(end)

	diff := end - start
	if math.Abs(diff) > 180 {
		if diff > 0 {
			diff -= 360
		} else {
			diff += 360
		}
	}

	if longPath {
		switch {
		case diff > 0:
			diff -= 360
		case diff < 0:
			diff += 360
		}
	}

	return NormalizeHue(start + diff*progress)
}

// InterpolateLinear returns start + (end-start)*progress without clamping.
func InterpolateLinear(start, end, progress float64) float64 {
	return start + (end-start)*progress
}

// HueDistance is the circular distance between two hues, in [0,180].
func HueDistance(a, b float64) float64 {
	d := math.Abs(NormalizeHue(a) - NormalizeHue(b))
	return math.Min(d, 360-d)
}

// Distance is a normalized Euclidean distance between two HSL colors. Each
// axis is scaled to [0,1] (hue by 180, saturation and lightness by 100).
func Distance(a, b HSL) float64 {
	dh := HueDistance(a.H, b.H) / 180
	ds := (a.S - b.S) / 100
	dl := (a.L - b.L) / 100
	return math.Sqrt(dh*dh + ds*ds + dl*dl)
}
