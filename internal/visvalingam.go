package internal

import "container/heap"

// Visvalingam-Whyatt: every interior point is scored by the area of the
// triangle it forms with its two surviving neighbors, and the smallest
// triangle is flattened out of the line until even the smallest survivor
// spans more area than epsilon.
//
// Removing a point changes the triangles of both neighbors, so their scores
// have to be recomputed at the moment of removal. A ranking computed up front
// would keep acting on triangles that no longer exist.

// Visvalingam reduces points to a subsequence, discarding each point whose
// triangle with its current neighbors had area at most epsilon when it was
// removed. Epsilon is an area. The first and last points always survive, and
// polylines with fewer than three points come back unchanged.
func Visvalingam(points []Point, epsilon float64) []Point {
	if len(points) < 3 {
		return points
	}
	ws := newWorkingSet(points)
	ws.eliminate(epsilon)
	return ws.survivors()
}

type vwNode struct {
	point      Point
	index      int // position in the input, which also settles area ties
	area       float64
	prev, next *vwNode
	heapIndex  int // slot in the working set heap, -1 once extracted
}

// A working set is two views of the same nodes: the surviving points as a
// doubly linked list in input order, and the interior candidates in a heap
// ordered by removal priority. Each node records its own heap slot so a
// neighbor's entry can be re-sorted in place the instant its area changes,
// which keeps every extracted minimum current.
type vwWorkingSet struct {
	nodes []vwNode
	heap  vwHeap
	live  int
}

func newWorkingSet(points []Point) *vwWorkingSet {
	ws := &vwWorkingSet{
		nodes: make([]vwNode, len(points)),
		heap:  make(vwHeap, 0, len(points)-2),
		live:  len(points),
	}
	for i, p := range points {
		node := &ws.nodes[i]
		node.point = p
		node.index = i
		node.heapIndex = -1
		if i > 0 {
			node.prev = &ws.nodes[i-1]
			ws.nodes[i-1].next = node
		}
	}
	for i := 1; i < len(points)-1; i++ {
		node := &ws.nodes[i]
		node.area = TriangleArea(node.prev.point, node.point, node.next.point)
		node.heapIndex = len(ws.heap)
		ws.heap = append(ws.heap, node)
	}
	heap.Init(&ws.heap)
	return ws
}

// eliminate flattens minimum-area points until the smallest surviving area
// exceeds epsilon or only the endpoints remain.
func (ws *vwWorkingSet) eliminate(epsilon float64) {
	for ws.heap.Len() > 0 {
		node := heap.Pop(&ws.heap).(*vwNode)
		if node.area > epsilon {
			// Everything still in the heap is at least this big. Popping only
			// took the node out of the heap; it stays in the line.
			return
		}
		if node.prev == nil || node.next == nil {
			panic("endpoint in the working set heap")
		}

		// Splice the point out of the line.
		node.prev.next = node.next
		node.next.prev = node.prev
		ws.live--

		// Both neighbors now span different triangles, so their recorded
		// areas are stale. Rescore them before the next extraction.
		for _, neighbor := range [2]*vwNode{node.prev, node.next} {
			if neighbor.prev == nil || neighbor.next == nil {
				continue
			}
			neighbor.area = TriangleArea(neighbor.prev.point, neighbor.point, neighbor.next.point)
			heap.Fix(&ws.heap, neighbor.heapIndex)
		}
	}
}

// survivors reads the remaining points off the list in input order.
func (ws *vwWorkingSet) survivors() []Point {
	result := make([]Point, 0, ws.live)
	for node := &ws.nodes[0]; node != nil; node = node.next {
		result = append(result, node.point)
	}
	return result
}

// Interior points ordered by (area, input index). Endpoints never enter:
// they span no triangle and are never candidates for removal.
type vwHeap []*vwNode

func (h vwHeap) Len() int { return len(h) }

func (h vwHeap) Less(i, j int) bool {
	if h[i].area != h[j].area {
		return h[i].area < h[j].area
	}
	// Exact area ties are eliminated in input order, the same convention as
	// the RDP tie break.
	return h[i].index < h[j].index
}

func (h vwHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

func (h *vwHeap) Push(x interface{}) {
	node := x.(*vwNode)
	node.heapIndex = len(*h)
	*h = append(*h, node)
}

func (h *vwHeap) Pop() interface{} {
	old := *h
	node := old[len(old)-1]
	old[len(old)-1] = nil
	node.heapIndex = -1
	*h = old[:len(old)-1]
	return node
}
