package main

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/simplify/internal"
)

// Value marshaling is pinned here over plain Go memory. The exported entry
// points and the allocation ownership contract get their own end-to-end
// coverage in ownership_test.go.

func TestBufferRoundTripRDP(t *testing.T) {
	// len counts doubles: ten values, five points.
	input := []float64{0, 0, 5, 4, 11, 5.5, 17.3, 3.2, 27.8, 0.1}
	points := readBuffer(unsafe.Pointer(&input[0]), len(input))
	require.Len(t, points, 5)

	simplified := internal.RDP(points, 1.0)
	require.Equal(t, []internal.Point{{X: 0, Y: 0}, {X: 5, Y: 4}, {X: 11, Y: 5.5}, {X: 27.8, Y: 0.1}}, simplified)

	out := make([]float64, 2*len(simplified))
	writeBuffer(unsafe.Pointer(&out[0]), simplified)
	assert.Equal(t, []float64{0, 0, 5, 4, 11, 5.5, 27.8, 0.1}, out)

	// The copy-in really copied: the input buffer is untouched throughout.
	assert.Equal(t, []float64{0, 0, 5, 4, 11, 5.5, 17.3, 3.2, 27.8, 0.1}, input)
}

func TestBufferRoundTripVisvalingam(t *testing.T) {
	input := []float64{0, 0, 5, 4, 11, 5.5, 17.3, 3.2, 27.8, 0.1}
	points := readBuffer(unsafe.Pointer(&input[0]), len(input))

	// Every triangle here spans more than one unit of area, so nothing goes.
	simplified := internal.Visvalingam(points, 1.0)
	out := make([]float64, 2*len(simplified))
	writeBuffer(unsafe.Pointer(&out[0]), simplified)
	assert.Equal(t, input, out)
}

func TestReadBufferEmpty(t *testing.T) {
	assert.Empty(t, readBuffer(nil, 0))
}

func TestWriteBufferOrder(t *testing.T) {
	out := make([]float64, 4)
	writeBuffer(unsafe.Pointer(&out[0]), []internal.Point{{X: 1, Y: 2}, {X: 3, Y: 4}})
	assert.Equal(t, []float64{1, 2, 3, 4}, out, "pairs are packed x then y")
}
