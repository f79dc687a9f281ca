package easing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidBezier is returned by ParseBezier for malformed input.
var ErrInvalidBezier = errors.New("invalid bezier control points")

const (
	newtonIterations  = 8
	bisectIterations  = 64
	solveEpsilon      = 1e-6
	derivativeEpsilon = 1e-6
)

// Bezier holds the two interior control points of a cubic-bezier() timing
// function. The end points are fixed at (0,0) and (1,1).
type Bezier struct {
	X1 float64 `json:"x1" toml:"x1"`
	Y1 float64 `json:"y1" toml:"y1"`
	X2 float64 `json:"x2" toml:"x2"`
	Y2 float64 `json:"y2" toml:"y2"`
}

// Func returns the easing function for b.
func (b Bezier) Func() Func {
	return CubicBezier(b.X1, b.Y1, b.X2, b.Y2)
}

// String formats b the way ParseBezier reads it.
func (b Bezier) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", b.X1, b.Y1, b.X2, b.Y2)
}

// ParseBezier reads "x1,y1,x2,y2". An optional "cubic-bezier(...)" wrapper
// is accepted so values can be pasted from CSS.
func ParseBezier(s string) (Bezier, error) {
	in := strings.TrimSpace(s)
	in = strings.TrimPrefix(in, "cubic-bezier(")
	in = strings.TrimSuffix(in, ")")

	parts := strings.Split(in, ",")
	if len(parts) != 4 {
		return Bezier{}, fmt.Errorf("%w: %q: want 4 comma-separated numbers", ErrInvalidBezier, s)
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return Bezier{}, fmt.Errorf("%w: %q: bad number %q", ErrInvalidBezier, s, p)
		}
		v[i] = f
	}
	return Bezier{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}, nil
}

// CubicBezier returns a CSS cubic-bezier() easing for the given control
// points. x1 and x2 are clamped to [0,1] so X(t) stays monotonic; y1 and y2
// are free, which allows overshooting curves.
func CubicBezier(x1, y1, x2, y2 float64) Func {
	x1 = math.Min(math.Max(x1, 0), 1)
	x2 = math.Min(math.Max(x2, 0), 1)

	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx

	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solveX := func(x float64) float64 {
		t := x
		for i := 0; i < newtonIterations; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < solveEpsilon {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < derivativeEpsilon {
				break
			}
			t -= dx / d
		}

		lo, hi := 0.0, 1.0
		t = x
		for i := 0; i < bisectIterations && lo < hi; i++ {
			sx := sampleX(t)
			if math.Abs(sx-x) < solveEpsilon {
				return t
			}
			if x > sx {
				lo = t
			} else {
				hi = t
			}
			t = (hi-lo)*0.5 + lo
		}
		return t
	}

	return func(x float64) float64 {
		if x <= 0 {
			return sampleY(0)
		}
		if x >= 1 {
			return sampleY(1)
		}
		return sampleY(solveX(x))
	}
}
