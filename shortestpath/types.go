// This file declares the sentinel errors and result types shared by
// Dijkstra, BellmanFord and FloydWarshall.

package shortestpath

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
	"github.com/katalvlaran/grava/subgraph"
)

// Sentinel errors shared by the shortest-path entry points.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("shortestpath: graph is nil")

	// ErrVertexNotFound is returned when the source vertex id is absent.
	ErrVertexNotFound = errors.New("shortestpath: source vertex not found")

	// ErrNegativeWeight is returned by Dijkstra when any edge carries a
	// negative weight; distances would be undefined, never approximated.
	ErrNegativeWeight = errors.New("shortestpath: negative edge weight encountered")

	// ErrNegativeCycle is returned by BellmanFord and FloydWarshall when a
	// cycle of negative total weight is reachable; it is a distinct
	// condition from unreachability.
	ErrNegativeCycle = errors.New("shortestpath: negative cycle detected")
)

// Result is the outcome of a single-source shortest-path run.
type Result[W magnitude.Number, E core.Edge[W]] struct {
	// Source is the vertex the distances are measured from.
	Source int

	// Dist maps every vertex id to its distance from Source; unreachable
	// vertices report PosInf.
	Dist map[int]magnitude.Magnitude[W]

	// Prev maps each reached vertex to its predecessor on one shortest
	// path. The source and unreachable vertices do not appear as keys.
	Prev map[int]int

	g        core.Graph[W, E]
	prevEdge map[int]E
}

// PathTo reconstructs one shortest path from Source to dest along the
// predecessor links. It fails if dest is unreachable or unknown.
func (r *Result[W, E]) PathTo(dest int) ([]int, error) {
	d, ok := r.Dist[dest]
	if !ok || d.IsPosInf() {
		return nil, fmt.Errorf("shortestpath: no path to %d", dest)
	}
	path := []int{dest}
	for cur := dest; cur != r.Source; {
		p, ok := r.Prev[cur]
		if !ok {
			return nil, fmt.Errorf("shortestpath: no path to %d", dest)
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Tree returns the shortest-path tree as a ShortestPathSubgraph view over
// the input graph: the reached vertices, the predecessor edges, and the
// computed distance per vertex.
func (r *Result[W, E]) Tree() *subgraph.ShortestPathSubgraph[W, E] {
	var vertices []int
	dist := make(map[int]magnitude.Magnitude[W], len(r.Dist))
	for v, d := range r.Dist {
		if d.IsPosInf() {
			continue
		}
		vertices = append(vertices, v)
		dist[v] = d
	}
	sort.Ints(vertices)

	arcs := make([]core.Arc[W, E], 0, len(r.prevEdge))
	for _, v := range vertices {
		if e, ok := r.prevEdge[v]; ok {
			arcs = append(arcs, core.Arc[W, E]{SrcID: r.Prev[v], DstID: v, Edge: e})
		}
	}

	return subgraph.NewShortestPath(r.g, arcs, vertices, dist)
}

// newResult allocates a Result with every distance set to PosInf except
// the source at zero.
func newResult[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E], sourceID int) *Result[W, E] {
	n := g.VertexCount()
	r := &Result[W, E]{
		Source:   sourceID,
		Dist:     make(map[int]magnitude.Magnitude[W], n),
		Prev:     make(map[int]int, n),
		g:        g,
		prevEdge: make(map[int]E, n),
	}
	for _, v := range g.Vertices() {
		r.Dist[v] = magnitude.PosInf[W]()
	}
	var zero W
	r.Dist[sourceID] = magnitude.Finite(zero)

	return r
}

// hasVertex scans the vertex set for id.
func hasVertex(g core.Vertices, id int) bool {
	for _, v := range g.Vertices() {
		if v == id {
			return true
		}
	}

	return false
}
