package subgraph

import (
	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// MultiRootSubgraph is a Subgraph recording multiple designated root
// vertices, one per tree of a forest. BFS and DFS forests over
// disconnected graphs produce one.
type MultiRootSubgraph[W magnitude.Number, E core.Edge[W]] struct {
	Subgraph[W, E]

	roots []int
}

// NewMultiRoot builds a forest view over parent with the given arcs,
// vertices and roots.
func NewMultiRoot[W magnitude.Number, E core.Edge[W]](
	parent core.Graph[W, E],
	arcs []core.Arc[W, E],
	vertices []int,
	roots []int,
) *MultiRootSubgraph[W, E] {
	return &MultiRootSubgraph[W, E]{
		Subgraph: Subgraph[W, E]{parent: parent, arcs: arcs, vertices: vertices},
		roots:    roots,
	}
}

// Roots returns the designated root vertices in discovery order.
func (s *MultiRootSubgraph[W, E]) Roots() []int {
	return append([]int(nil), s.roots...)
}

// IsRoot reports whether vertexID is one of the designated roots.
func (s *MultiRootSubgraph[W, E]) IsRoot(vertexID int) bool {
	for _, r := range s.roots {
		if r == vertexID {
			return true
		}
	}

	return false
}
