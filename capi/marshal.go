package main

import (
	"unsafe"

	"github.com/osuushi/simplify/internal"
)

// The pure Go halves of the boundary. Kept free of cgo so the package's own
// tests can drive the whole copy-in/reduce/copy-out path over Go memory,
// without needing a C caller.

// readBuffer copies count doubles at data into a fresh point slice. count is
// in doubles, so the result holds count/2 points. Nothing retains the view
// of data after return.
func readBuffer(data unsafe.Pointer, count int) []internal.Point {
	return internal.FromFlatCoords(unsafe.Slice((*float64)(data), count))
}

// writeBuffer copies the flattened points into the 2*len(points) doubles at
// data. The flattening scratch never leaves Go; only the copy crosses.
func writeBuffer(data unsafe.Pointer, points []internal.Point) {
	copy(unsafe.Slice((*float64)(data), 2*len(points)), internal.FlatCoords(points))
}
