package traverse

import (
	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// HasCycle reports whether g contains a cycle.
//
// A directed graph has a cycle iff depth-first traversal ever examines an
// edge into a Gray vertex (a back edge). On undirected graphs the edge
// used to reach a vertex is excluded by edge id, so the immediate
// back-edge to the parent is not a false positive while a parallel edge
// between the same endpoints still is a genuine 2-cycle.
func HasCycle[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E]) bool {
	_, found := FindCycle(g)

	return found
}

// FindCycle returns one cycle of g as a closed vertex sequence
// (first id repeated at the end), or found=false when g is acyclic.
// A nil or empty graph is acyclic. Self-loops count as cycles.
//
// Complexity: O(V + E) time, O(V) memory.
func FindCycle[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E]) ([]int, bool) {
	if g == nil {
		return nil, false
	}
	f := &cycleFinder[W, E]{
		g:     g,
		color: make(map[int]Color, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if f.color[v] == White && f.visit(v, -1) {
			return f.cycle, true
		}
	}

	return nil, false
}

// cycleFinder tracks DFS state and the path stack for reconstruction.
type cycleFinder[W magnitude.Number, E core.Edge[W]] struct {
	g     core.Graph[W, E]
	color map[int]Color
	path  []int
	cycle []int
}

// visit explores id; viaEdgeID is the edge used to arrive (-1 for roots).
// It returns true once a cycle has been recorded.
func (f *cycleFinder[W, E]) visit(id, viaEdgeID int) bool {
	f.color[id] = Gray
	f.path = append(f.path, id)

	for _, adj := range f.g.EdgesFrom(id) {
		// On undirected graphs, do not walk back over the arrival edge.
		if !f.g.Directed() && adj.Edge.ID() == viaEdgeID {
			continue
		}
		switch f.color[adj.DstID] {
		case White:
			if f.visit(adj.DstID, adj.Edge.ID()) {
				return true
			}
		case Gray:
			f.record(adj.DstID)

			return true
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.color[id] = Black

	return false
}

// record copies the path segment from the first occurrence of start to
// the stack top and closes it.
func (f *cycleFinder[W, E]) record(start int) {
	idx := 0
	for i, v := range f.path {
		if v == start {
			idx = i
			break
		}
	}
	f.cycle = append([]int(nil), f.path[idx:]...)
	f.cycle = append(f.cycle, start)
}
