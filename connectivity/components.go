package connectivity

import (
	"errors"
	"sort"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// Sentinel errors for connectivity analysis.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrDirectedGraph is returned by ConnectedComponents for directed
	// input; use TarjanSCC instead.
	ErrDirectedGraph = errors.New("connectivity: undirected graph required")

	// ErrUndirectedGraph is returned by TarjanSCC for undirected input;
	// use ConnectedComponents instead.
	ErrUndirectedGraph = errors.New("connectivity: directed graph required")
)

// ConnectedComponents partitions the vertices of the undirected graph g
// into disjoint reachability classes. Each component's ids are sorted
// ascending and components are ordered by smallest member.
func ConnectedComponents[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E]) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	seen := make(map[int]bool, g.VertexCount())
	var comps [][]int
	for _, root := range g.Vertices() {
		if seen[root] {
			continue
		}
		// BFS collecting one component.
		seen[root] = true
		queue := []int{root}
		var comp []int
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
