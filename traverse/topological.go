package traverse

import (
	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// TopologicalSort computes a linear ordering of the vertices of a
// directed acyclic graph such that for every edge u→v, u appears before
// v. The order is the reverse of the DFS finish order, driving the search
// from every unvisited vertex in ascending id order for determinism.
//
// Returns ErrGraphNil for a nil graph, ErrUndirectedGraph for undirected
// input, and ErrCycle when the graph contains a cycle — a cyclic graph
// has no topological order, and the failure is explicit rather than a
// plausible-looking partial order.
//
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E]) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	s := &topoSorter[W, E]{
		g:     g,
		color: make(map[int]Color, g.VertexCount()),
		order: make([]int, 0, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if s.color[v] == White {
			if err := s.visit(v); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order is a valid topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// topoSorter holds DFS state for one sort.
type topoSorter[W magnitude.Number, E core.Edge[W]] struct {
	g     core.Graph[W, E]
	color map[int]Color
	order []int
}

// visit explores id, failing on a back edge into a Gray vertex.
func (s *topoSorter[W, E]) visit(id int) error {
	s.color[id] = Gray
	for _, adj := range s.g.EdgesFrom(id) {
		switch s.color[adj.DstID] {
		case Gray:
			return ErrCycle
		case White:
			if err := s.visit(adj.DstID); err != nil {
				return err
			}
		}
	}
	s.color[id] = Black
	s.order = append(s.order, id)

	return nil
}
