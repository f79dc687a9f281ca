package palette

import "github.com/jpfaraco/colorguru/internal/colormath"

// edgeBias weights the single-neighbour distance at either end of the
// palette so it is comparable to the two-neighbour interior scores.
const edgeBias = 2

// singleMatch is the distance under which a lone color counts as similar
// enough to put the pin after it.
const singleMatch = 0.5

// BestPosition returns the insertion position in [0, len(colors)] where
// pinned fits best among its neighbours.
func BestPosition(colors []colormath.HSL, pinned colormath.HSL) int {
	switch len(colors) {
	case 0:
		return 0
	case 1:
		if colormath.Distance(colors[0], pinned) < singleMatch {
			return 1
		}
		return 0
	}

	best := 1
	bestScore := colormath.Distance(colors[0], pinned) + colormath.Distance(colors[1], pinned)
	for i := 1; i < len(colors)-1; i++ {
		score := colormath.Distance(colors[i], pinned) + colormath.Distance(colors[i+1], pinned)
		if score < bestScore {
			best, bestScore = i+1, score
		}
	}

	start := edgeBias * colormath.Distance(colors[0], pinned)
	end := edgeBias * colormath.Distance(colors[len(colors)-1], pinned)
	if start < bestScore {
		best, bestScore = 0, start
	}
	if end < bestScore {
		best = len(colors)
	}
	return best
}

// PinIndex maps BestPosition onto the index of the step to replace.
func PinIndex(colors []colormath.HSL, pinned colormath.HSL) int {
	if len(colors) == 0 {
		return 0
	}
	pos := BestPosition(colors, pinned)
	switch {
	case pos <= 0:
		return 0
	case pos >= len(colors):
		return len(colors) - 1
	}
	left, right := pos-1, pos
	if colormath.Distance(colors[right], pinned) < colormath.Distance(colors[left], pinned) {
		return right
	}
	return left
}
