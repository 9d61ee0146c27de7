// Polyline simplification for Go.
//
// This package reduces the number of points in a 2-D polyline while keeping
// the result within a caller-chosen tolerance of the original. Two reducers
// are provided: Ramer-Douglas-Peucker, which recursively splits at the most
// deviant point, and Visvalingam-Whyatt, which repeatedly flattens the point
// spanning the smallest triangle. Both return a subsequence of the input:
// endpoints survive, point order is preserved, and no coordinate is ever
// invented or rounded.
package simplify

import "github.com/osuushi/simplify/internal"

type Point = internal.Point

// RDP simplifies a polyline with Ramer-Douglas-Peucker. A point survives if
// it sits farther than epsilon from the chord between its span's endpoints,
// so epsilon is a distance. The worst-case deviation of the result from the
// original is bounded, which makes this the usual choice when accuracy
// matters more than speed; pathological input costs O(n²).
func RDP(points []Point, epsilon float64) []Point {
	return internal.RDP(points, epsilon)
}

// Visvalingam simplifies a polyline with Visvalingam-Whyatt. A point is
// discarded while the triangle it forms with its current neighbors has area
// at most epsilon, so epsilon is an area, not a distance. Favors removing
// visual noise and runs in O(n log n).
func Visvalingam(points []Point, epsilon float64) []Point {
	return internal.Visvalingam(points, epsilon)
}
