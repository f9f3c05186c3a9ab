package mst

import (
	"errors"
	"sort"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
	"github.com/katalvlaran/grava/subgraph"
)

// Sentinel errors for MST computation.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("mst: graph is nil")

	// ErrDirectedGraph is returned for directed input; spanning trees are
	// defined on undirected graphs.
	ErrDirectedGraph = errors.New("mst: undirected graph required")
)

// Result is the outcome of a Kruskal run.
type Result[W magnitude.Number, E core.Edge[W]] struct {
	// Edges lists the selected forest edges in acceptance order.
	Edges []core.Arc[W, E]

	// TotalWeight is the sum of the selected edges' finite weights.
	TotalWeight W

	// Components is the number of trees in the forest; 1 means the input
	// was connected and the forest is a true spanning tree.
	Components int

	g core.Graph[W, E]
}

// Spanning reports whether the forest is a single spanning tree.
func (r *Result[W, E]) Spanning() bool { return r.Components == 1 }

// Forest returns the selected edges and all vertices as a Subgraph view
// over the input graph.
func (r *Result[W, E]) Forest() *subgraph.Subgraph[W, E] {
	return subgraph.New(r.g, append([]core.Arc[W, E](nil), r.Edges...), r.g.Vertices())
}

// Kruskal computes a minimum spanning forest of the undirected graph g.
//
// Steps:
//  1. Collect edges, skipping self-loops (never part of a spanning tree)
//     and PosInf weights (absent edges).
//  2. Sort by (weight, edge id) ascending for deterministic tie-breaking.
//  3. Union-find with path compression and union by rank: accept an edge
//     only when its endpoints lie in different components; stop once
//     |V|-1 edges are selected or edges are exhausted.
//
// A disconnected graph yields a forest, not an error; inspect
// Result.Spanning or Result.Components.
func Kruskal[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E]) (*Result[W, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	vertices := g.Vertices()

	all := g.Edges()
	edges := make([]core.Arc[W, E], 0, len(all))
	for _, a := range all {
		if a.SrcID == a.DstID || a.Edge.Weight().IsPosInf() {
			continue
		}
		edges = append(edges, a)
	}
	sort.Slice(edges, func(i, j int) bool {
		if c := edges[i].Edge.Weight().Cmp(edges[j].Edge.Weight()); c != 0 {
			return c < 0
		}

		return edges[i].Edge.ID() < edges[j].Edge.ID()
	})

	// Disjoint-set over vertex ids, path compression + union by rank.
	parent := make(map[int]int, len(vertices))
	rank := make(map[int]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	res := &Result[W, E]{Components: len(vertices), g: g}
	for _, a := range edges {
		rootU, rootV := find(a.SrcID), find(a.DstID)
		if rootU == rootV {
			continue
		}
		if rank[rootU] < rank[rootV] {
			rootU, rootV = rootV, rootU
		}
		parent[rootV] = rootU
		if rank[rootU] == rank[rootV] {
			rank[rootU]++
		}

		res.Edges = append(res.Edges, a)
		if w, ok := a.Edge.Weight().Value(); ok {
			res.TotalWeight += w
		}
		res.Components--
		if len(res.Edges) == len(vertices)-1 {
			break
		}
	}

	return res, nil
}
