package easing

// presets approximates each catalog curve with cubic-bezier() control
// points (easings.net values). Back curves leave [0,1] on the y axis.
var presets = map[string]Bezier{
	"Linear": {0.25, 0.25, 0.75, 0.75},

	"Sine - EaseIn":    {0.12, 0, 0.39, 0},
	"Sine - EaseOut":   {0.61, 1, 0.88, 1},
	"Sine - EaseInOut": {0.37, 0, 0.63, 1},

	"Quad - EaseIn":    {0.11, 0, 0.5, 0},
	"Quad - EaseOut":   {0.5, 1, 0.89, 1},
	"Quad - EaseInOut": {0.45, 0, 0.55, 1},

	"Cubic - EaseIn":    {0.32, 0, 0.67, 0},
	"Cubic - EaseOut":   {0.33, 1, 0.68, 1},
	"Cubic - EaseInOut": {0.65, 0, 0.35, 1},

	"Quart - EaseIn":    {0.5, 0, 0.75, 0},
	"Quart - EaseOut":   {0.25, 1, 0.5, 1},
	"Quart - EaseInOut": {0.76, 0, 0.24, 1},

	"Quint - EaseIn":    {0.64, 0, 0.78, 0},
	"Quint - EaseOut":   {0.22, 1, 0.36, 1},
	"Quint - EaseInOut": {0.83, 0, 0.17, 1},

	"Expo - EaseIn":    {0.7, 0, 0.84, 0},
	"Expo - EaseOut":   {0.16, 1, 0.3, 1},
	"Expo - EaseInOut": {0.87, 0, 0.13, 1},

	"Circ - EaseIn":    {0.55, 0, 1, 0.45},
	"Circ - EaseOut":   {0, 0.55, 0.45, 1},
	"Circ - EaseInOut": {0.85, 0, 0.15, 1},

	"Back - EaseIn":    {0.36, 0, 0.66, -0.56},
	"Back - EaseOut":   {0.34, 1.56, 0.64, 1},
	"Back - EaseInOut": {0.68, -0.6, 0.32, 1.6},
}

// FallbackBezier is shown in editors for curves without a preset.
var FallbackBezier = Bezier{X1: 0.25, Y1: 0, X2: 0.75, Y2: 1}

// Preset returns the cubic-bezier() approximation of a catalog curve.
func Preset(name string) (Bezier, bool) {
	b, ok := presets[name]
	return b, ok
}
