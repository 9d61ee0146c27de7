package internal

// A Point is a plain value. The reducers never mutate one and track position
// by index rather than pointer identity, so copying is always safe. Exact
// field equality is meaningful: coordinates are carried through unchanged
// from input to output, and the degenerate-segment check relies on it.
type Point struct {
	X float64
	Y float64
}
