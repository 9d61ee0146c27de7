package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/simplify/dbg"
)

// Debug output for watching a working set evolve. Nodes get random but
// stable names, which makes splices far easier to follow than raw pointers.

func (n *vwNode) DbgName() string {
	name := dbg.Name(n)
	if n == nil {
		return name
	}
	switch {
	case n.prev == nil || n.next == nil: // endpoint, never removable
		name = aurora.Cyan(name).String()
	case n.area == 0: // zero area, gone at any epsilon
		name = aurora.Red(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}

func (n *vwNode) String() string {
	// Endpoints are never scored, so show them as unremovable.
	area := "∞"
	if n.prev != nil && n.next != nil {
		area = fmt.Sprintf("%g", n.area)
	}
	return fmt.Sprintf("%s #%d (%g, %g) area %s <prev: %s, next: %s>",
		n.DbgName(), n.index, n.point.X, n.point.Y, area,
		n.prev.DbgName(), n.next.DbgName())
}

func (ws *vwWorkingSet) dump() string {
	parts := make([]string, 0, ws.live)
	for node := &ws.nodes[0]; node != nil; node = node.next {
		parts = append(parts, node.String())
	}
	return strings.Join(parts, "\n")
}
