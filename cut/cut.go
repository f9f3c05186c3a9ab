package cut

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("cut: graph is nil")
	// ErrVertexNotFound is returned when src or dst is not in the graph.
	ErrVertexNotFound = errors.New("cut: vertex not found")
	// ErrSameVertex is returned when src and dst coincide.
	ErrSameVertex = errors.New("cut: source and destination are the same vertex")
	// ErrAdjacentVertices is returned by VertexCut when src and dst
	// share an edge; no vertex set can separate adjacent endpoints.
	ErrAdjacentVertices = errors.New("cut: vertices are adjacent, no vertex cut exists")
)

// EdgeCut returns the ids of a minimum set of edges whose removal
// leaves dst unreachable from src. The result is sorted and empty when
// dst is already unreachable. Self-loops never participate.
func EdgeCut[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E], src, dst int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	index, err := checkEndpoints[W, E](g, src, dst)
	if err != nil {
		return nil, err
	}

	nw := newNetwork(g.VertexCount())
	for _, e := range g.Edges() {
		if e.SrcID == e.DstID {
			continue
		}
		u, v := index[e.SrcID], index[e.DstID]
		if g.Directed() {
			nw.addArc(u, v, 1, e.Edge.ID())
		} else {
			nw.addBiArc(u, v, 1, e.Edge.ID())
		}
	}

	nw.maxFlow(index[src], index[dst])
	return nw.crossingTags(nw.residualReachable(index[src])), nil
}

// VertexCut returns a minimum set of vertices, excluding src and dst
// themselves, whose removal leaves dst unreachable from src. The result
// is sorted and empty when dst is already unreachable.
//
// VertexCut fails with ErrAdjacentVertices when an edge joins src and
// dst directly.
func VertexCut[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E], src, dst int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	index, err := checkEndpoints[W, E](g, src, dst)
	if err != nil {
		return nil, err
	}
	if g.HasAnyEdge(src, dst) {
		return nil, fmt.Errorf("%w: %d and %d", ErrAdjacentVertices, src, dst)
	}

	// Split every vertex v into an in-half 2v and an out-half 2v+1.
	// Interior vertices get a unit internal arc; the endpoints get an
	// unbounded one so only intermediate vertices are spendable.
	vertices := g.Vertices()
	unbounded := g.EdgeCount() + g.VertexCount() + 1
	nw := newNetwork(2 * len(vertices))
	for _, v := range vertices {
		capacity := 1
		if v == src || v == dst {
			capacity = unbounded
		}
		nw.addArc(2*index[v], 2*index[v]+1, capacity, v)
	}
	for _, e := range g.Edges() {
		if e.SrcID == e.DstID {
			continue
		}
		u, v := index[e.SrcID], index[e.DstID]
		nw.addArc(2*u+1, 2*v, unbounded, -1)
		if !g.Directed() {
			nw.addArc(2*v+1, 2*u, unbounded, -1)
		}
	}

	nw.maxFlow(2*index[src]+1, 2*index[dst])
	return nw.crossingTags(nw.residualReachable(2*index[src] + 1)), nil
}

// checkEndpoints validates src and dst and returns the dense index of
// every vertex id, in sorted id order.
func checkEndpoints[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E], src, dst int) (map[int]int, error) {
	if src == dst {
		return nil, fmt.Errorf("%w: %d", ErrSameVertex, src)
	}
	index := make(map[int]int, g.VertexCount())
	for i, v := range g.Vertices() {
		index[v] = i
	}
	if _, ok := index[src]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, src)
	}
	if _, ok := index[dst]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, dst)
	}
	return index, nil
}
