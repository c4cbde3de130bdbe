// File: path.go
// Role: Path result shared by the path engines and its reconstruction.

package core

import (
	"fmt"
	"strconv"
	"strings"
)

// NoPredecessor marks a node without a predecessor in a shortest-path tree.
const NoPredecessor = -1

// Path is the answer to a shortest-path query.
type Path struct {
	// Distance is the total weight from start to end.
	Distance int64

	// Nodes lists node ids from start to end inclusive.
	Nodes []int

	// Hops lists the arcs taken, one fewer than Nodes.
	Hops []Hop
}

// String renders the path as "0 -> 1 -> 2 (7)".
func (p Path) String() string {
	var sb strings.Builder
	for i, id := range p.Nodes {
		if i > 0 {
			sb.WriteString(" -> ")
		}
		sb.WriteString(strconv.Itoa(id))
	}
	fmt.Fprintf(&sb, " (%d)", p.Distance)

	return sb.String()
}

// TracePath rebuilds the start→end path from predecessor links.
//
// prev[v] is v's predecessor (NoPredecessor for none) and weight[v] the
// weight of the arc prev[v]→v that set dist[v]. The walk is bounded by
// len(prev) steps; a chain that loops or stops before start yields
// ErrBrokenPath.
//
// Complexity: O(V).
func TracePath(prev []int, weight []int64, dist []int64, start, end int) (Path, error) {
	if dist[end] == Infinity {
		return Path{}, fmt.Errorf("%w: %d→%d", ErrUnreachable, start, end)
	}

	nodes := []int{end}
	hops := []Hop{}
	cur := end
	for steps := 0; cur != start; steps++ {
		p := prev[cur]
		if p == NoPredecessor || steps >= len(prev) {
			return Path{}, fmt.Errorf("%w: %d→%d", ErrBrokenPath, start, end)
		}
		hops = append(hops, Hop{From: p, To: cur, Weight: weight[cur]})
		nodes = append(nodes, p)
		cur = p
	}

	// reverse to get start → end
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(hops)-1; i < j; i, j = i+1, j-1 {
		hops[i], hops[j] = hops[j], hops[i]
	}

	return Path{Distance: dist[end], Nodes: nodes, Hops: hops}, nil
}
