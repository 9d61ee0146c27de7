package internal

// Ramer-Douglas-Peucker: find the interior point that deviates most from the
// chord between a span's endpoints. If it deviates more than epsilon, keep it
// and recurse into the two spans it splits off; otherwise everything strictly
// inside the span is discarded at once.
//
// The recursion runs on an explicit stack of index spans. Splits can shave a
// single point off at a time, so the depth grows linearly on adversarial
// input, and pushing two ints is much cheaper than growing a goroutine stack
// to match.

// RDP reduces points to a subsequence whose discarded points all sit within
// epsilon of the chords that replaced them. Epsilon is a distance. The first
// and last points always survive, and polylines with fewer than three points
// come back unchanged.
func RDP(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		return points
	}

	keep := make([]bool, len(points))
	keep[0] = true
	keep[len(points)-1] = true
	found := 2

	stack := make([]int, 0, 64)
	stack = append(stack, 0, len(points)-1)
	for len(stack) > 0 {
		first, last := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		if last-first < 2 {
			// No interior points left in this span.
			continue
		}

		// Farthest interior point from the chord. The comparison is strictly
		// greater, so an exact tie always settles on the lowest index.
		index := first + 1
		var dmax float64
		for i := first + 1; i < last; i++ {
			if d := PerpendicularDistance(points[i], points[first], points[last]); d > dmax {
				index = i
				dmax = d
			}
		}

		if dmax > epsilon {
			keep[index] = true
			found++
			stack = append(stack, first, index, index, last)
		}
	}

	result := make([]Point, 0, found)
	for i, kept := range keep {
		if kept {
			result = append(result, points[i])
		}
	}
	return result
}
