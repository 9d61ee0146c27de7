package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This contains no actual tests. It is the shared helper for checking that a
// reducer's output is a valid reduction of its input, whatever the tolerance:
//
//  1. The original first and last points survive.
//  2. The output is a subsequence of the input: every output point matches an
//     input point, at strictly increasing input positions.
//  3. It never grows.
//
// Matching is by exact coordinate value, which doubles as a check that no
// reducer ever rounds or recomputes a coordinate.

func AssertValidReduction(t *testing.T, input, output []Point) {
	require.NotEmpty(t, output)
	require.LessOrEqual(t, len(output), len(input), "a reduction must not grow")
	assert.Equal(t, input[0], output[0], "first point must survive")
	assert.Equal(t, input[len(input)-1], output[len(output)-1], "last point must survive")

	i := 0
	for _, p := range output {
		for i < len(input) && input[i] != p {
			i++
		}
		require.Less(t, i, len(input), "output point %v does not continue an in-order subsequence of the input", p)
		i++
	}
}
