package internal

// Flat coordinates are the interchange form used across the C boundary and
// by coordinate-list formats: pairs packed as [x0, y0, x1, y1, ...], so a
// flat slice always holds twice as many values as there are points.

// FromFlatCoords pairs flat coordinates up into a fresh point slice.
func FromFlatCoords(coords []float64) []Point {
	points := make([]Point, len(coords)/2)
	for i := range points {
		points[i] = Point{X: coords[2*i], Y: coords[2*i+1]}
	}
	return points
}

// FlatCoords flattens points back out into pair order.
func FlatCoords(points []Point) []float64 {
	coords := make([]float64, 2*len(points))
	for i, p := range points {
		coords[2*i] = p.X
		coords[2*i+1] = p.Y
	}
	return coords
}
