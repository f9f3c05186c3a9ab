package subgraph

import (
	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// ShortestPathSubgraph is a Subgraph additionally recording the computed
// distance from the source for every vertex in the view. Shortest-path
// algorithms return one as the tree of relaxed edges.
type ShortestPathSubgraph[W magnitude.Number, E core.Edge[W]] struct {
	Subgraph[W, E]

	dist map[int]magnitude.Magnitude[W]
}

// NewShortestPath builds a shortest-path tree view over parent. dist maps
// every vertex in the view to its distance from the source.
func NewShortestPath[W magnitude.Number, E core.Edge[W]](
	parent core.Graph[W, E],
	arcs []core.Arc[W, E],
	vertices []int,
	dist map[int]magnitude.Magnitude[W],
) *ShortestPathSubgraph[W, E] {
	return &ShortestPathSubgraph[W, E]{
		Subgraph: Subgraph[W, E]{parent: parent, arcs: arcs, vertices: vertices},
		dist:     dist,
	}
}

// DistanceTo returns the recorded distance to vertexID. Vertices outside
// the view report ok=false.
func (s *ShortestPathSubgraph[W, E]) DistanceTo(vertexID int) (magnitude.Magnitude[W], bool) {
	d, ok := s.dist[vertexID]

	return d, ok
}
