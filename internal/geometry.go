package internal

import "math"

// Plane geometry for the reducers. There is deliberately no tolerance
// constant in here. Both reducers compare deviations against the caller's
// epsilon and nothing else, so collinear points must come out as an exact
// zero rather than a small number some arbitrary fudge factor would have to
// absorb.

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

// Cross treats both points as vectors in the z=0 plane and returns the z
// component of their cross product.
func (p Point) Cross(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) Magnitude() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Magnitude()
}

// PerpendicularDistance is the distance from p to the infinite line through a
// and b, not to the finite segment between them. A degenerate segment gives
// no line to measure against, so that case degrades to plain point-to-point
// distance. The equality check is exact on purpose: only a truly zero-length
// segment makes the quotient below meaningless.
func PerpendicularDistance(p, a, b Point) float64 {
	if a == b {
		return p.Distance(a)
	}
	ab := b.Sub(a)
	return math.Abs(ab.Cross(p.Sub(a))) / ab.Magnitude()
}

// TriangleArea is the unsigned area of the triangle abc: half the cross
// product of two of its edges. Collinear points give exactly zero.
func TriangleArea(a, b, c Point) float64 {
	return math.Abs(b.Sub(a).Cross(c.Sub(a))) / 2
}
