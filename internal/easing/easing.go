// Package easing provides the named easing curves used to redistribute
// interpolation progress, plus a CSS cubic-bezier() evaluator.
//
// Usage:
//
//	f := easing.Get("Sine - EaseInOut")     // unknown names fall back to Default
//	y := f(0.25)
//	g := easing.CubicBezier(0.42, 0, 0.58, 1)
package easing

import "math"

// Func maps progress in [0,1] to eased progress. Back and Expo variants
// may leave [0,1] between the endpoints.
type Func func(t float64) float64

// Default is the curve used when a name is not in the catalog.
const Default = "Quad - EaseIn"

// Curve is a named catalog entry.
type Curve struct {
	Name string
	Func Func
}

const (
	backC1 = 1.70158
	backC2 = backC1 * 1.525
	backC3 = backC1 + 1
)

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

func QuadEaseIn(t float64) float64  { return t * t }
func QuadEaseOut(t float64) float64 { return 1 - (1-t)*(1-t) }
func QuadEaseInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func CubicEaseIn(t float64) float64  { return t * t * t }
func CubicEaseOut(t float64) float64 { return 1 - math.Pow(1-t, 3) }
func CubicEaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func QuartEaseIn(t float64) float64  { return t * t * t * t }
func QuartEaseOut(t float64) float64 { return 1 - math.Pow(1-t, 4) }
func QuartEaseInOut(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

func QuintEaseIn(t float64) float64  { return t * t * t * t * t }
func QuintEaseOut(t float64) float64 { return 1 - math.Pow(1-t, 5) }
func QuintEaseInOut(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

func SineEaseIn(t float64) float64    { return 1 - math.Cos(t*math.Pi/2) }
func SineEaseOut(t float64) float64   { return math.Sin(t * math.Pi / 2) }
func SineEaseInOut(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

func ExpoEaseIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*(t-1))
}

func ExpoEaseOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

func ExpoEaseInOut(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

func CircEaseIn(t float64) float64  { return 1 - math.Sqrt(1-t*t) }
func CircEaseOut(t float64) float64 { return math.Sqrt(1 - (t-1)*(t-1)) }
func CircEaseInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-math.Pow(2*t, 2))) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

func BackEaseIn(t float64) float64 {
	return backC3*t*t*t - backC1*t*t
}

func BackEaseOut(t float64) float64 {
	return 1 + backC3*math.Pow(t-1, 3) + backC1*math.Pow(t-1, 2)
}

func BackEaseInOut(t float64) float64 {
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((backC2+1)*2*t - backC2)) / 2
	}
	return (math.Pow(2*t-2, 2)*((backC2+1)*(t*2-2)+backC2) + 2) / 2
}

// catalog is built once and never modified.
var (
	catalog = []Curve{
		{"Linear", Linear},
		{"Quad - EaseIn", QuadEaseIn},
		{"Quad - EaseOut", QuadEaseOut},
		{"Quad - EaseInOut", QuadEaseInOut},
		{"Quart - EaseIn", QuartEaseIn},
		{"Quart - EaseOut", QuartEaseOut},
		{"Quart - EaseInOut", QuartEaseInOut},
		{"Sine - EaseIn", SineEaseIn},
		{"Sine - EaseOut", SineEaseOut},
		{"Sine - EaseInOut", SineEaseInOut},
		{"Cubic - EaseIn", CubicEaseIn},
		{"Cubic - EaseOut", CubicEaseOut},
		{"Cubic - EaseInOut", CubicEaseInOut},
		{"Expo - EaseIn", ExpoEaseIn},
		{"Expo - EaseOut", ExpoEaseOut},
		{"Expo - EaseInOut", ExpoEaseInOut},
		{"Quint - EaseIn", QuintEaseIn},
		{"Quint - EaseOut", QuintEaseOut},
		{"Quint - EaseInOut", QuintEaseInOut},
		{"Circ - EaseIn", CircEaseIn},
		{"Circ - EaseOut", CircEaseOut},
		{"Circ - EaseInOut", CircEaseInOut},
		{"Back - EaseIn", BackEaseIn},
		{"Back - EaseOut", BackEaseOut},
		{"Back - EaseInOut", BackEaseInOut},
	}
	byName = indexCatalog(catalog)
)

func indexCatalog(curves []Curve) map[string]Func {
	m := make(map[string]Func, len(curves))
	for _, c := range curves {
		m[c.Name] = c.Func
	}
	return m
}

// Lookup returns the named curve and whether it exists.
func Lookup(name string) (Func, bool) {
	f, ok := byName[name]
	return f, ok
}

// Get returns the named curve, or the Default curve when the name is
// unknown. It never fails.
func Get(name string) Func {
	if f, ok := byName[name]; ok {
		return f
	}
	return byName[Default]
}

// Names returns the catalog names in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, c := range catalog {
		names[i] = c.Name
	}
	return names
}

// Curves returns a copy of the catalog.
func Curves() []Curve {
	out := make([]Curve, len(catalog))
	copy(out, catalog)
	return out
}
