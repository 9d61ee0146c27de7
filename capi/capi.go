package main

/*
#include <stdlib.h>
#include "simplify.h"
*/
import "C"

import (
	"github.com/osuushi/simplify/internal"
)

// C entry points for the reducers. Build as a shared library:
//
//	go build -buildmode=c-shared -o libsimplify.so ./capi
//
// and link against simplify.h. Each call copies the input out of C memory,
// reduces it, and copies the result into a fresh C allocation, so the caller
// side never sees Go memory and the Go side never retains C memory.

//export simplify_rdp
func simplify_rdp(buf C.simplify_buffer, epsilon C.double) C.simplify_buffer {
	points := readBuffer(buf.data, int(buf.len))
	return intoBuffer(internal.RDP(points, float64(epsilon)))
}

//export simplify_visvalingam
func simplify_visvalingam(buf C.simplify_buffer, epsilon C.double) C.simplify_buffer {
	points := readBuffer(buf.data, int(buf.len))
	return intoBuffer(internal.Visvalingam(points, float64(epsilon)))
}

// Pairs with the malloc in intoBuffer. free(NULL) is a no-op, so releasing
// the empty buffer is fine.
//
//export release_buffer
func release_buffer(buf C.simplify_buffer) {
	C.free(buf.data)
}

// intoBuffer flattens points into a malloc'd buffer the caller must release.
// Always a fresh allocation, never a view of the input, so the two sides can
// be freed independently.
func intoBuffer(points []internal.Point) C.simplify_buffer {
	count := 2 * len(points)
	if count == 0 {
		return C.simplify_buffer{}
	}
	data := C.malloc(C.size_t(count) * C.sizeof_double)
	writeBuffer(data, points)
	return C.simplify_buffer{data: data, len: C.size_t(count)}
}

func main() {}
