// This file implements AdjacencyList, the reference mutable storage
// satisfying the Graph capability interfaces.
//
// Determinism:
//   - Vertices() returns ids sorted ascending.
//   - Edges(), AsDirectedEdges() and EdgesFrom() sort by edge id ascending.
//   - Neighbors() returns ids sorted ascending, one entry per edge.

package core

import (
	"sort"

	"github.com/katalvlaran/grava/magnitude"
)

// AdjacencyList is an in-memory graph keyed by integer vertex ids.
//
// It assigns vertex and edge ids itself: AddVertex returns the new vertex
// id, AddEdge stamps the edge with its id via Edge.SetID. Parallel edges
// and self-loops are permitted. Not safe for concurrent use.
type AdjacencyList[W magnitude.Number, E Edge[W]] struct {
	cfg          config
	nextVertexID int
	nextEdgeID   int

	vertices map[int]struct{}
	edges    map[int]E // edge id → edge

	// adj[src][dst] holds edge ids; undirected edges are mirrored under
	// both endpoint orders (self-loops stored once).
	adj map[int]map[int][]int
}

// NewAdjacencyList creates an empty graph. By default it is undirected;
// pass WithDirected() for a directed graph.
func NewAdjacencyList[W magnitude.Number, E Edge[W]](opts ...Option) *AdjacencyList[W, E] {
	g := &AdjacencyList[W, E]{
		vertices: make(map[int]struct{}),
		edges:    make(map[int]E),
		adj:      make(map[int]map[int][]int),
	}
	for _, opt := range opts {
		opt(&g.cfg)
	}

	return g
}

// Directed reports whether edges are one-way only.
func (g *AdjacencyList[W, E]) Directed() bool { return g.cfg.directed }

// AddVertex adds a fresh vertex and returns its id.
func (g *AdjacencyList[W, E]) AddVertex() int {
	id := g.nextVertexID
	g.nextVertexID++
	g.vertices[id] = struct{}{}

	return id
}

// HasVertex reports whether the vertex id exists.
func (g *AdjacencyList[W, E]) HasVertex(vertexID int) bool {
	_, ok := g.vertices[vertexID]

	return ok
}

// AddEdge stores e between its construction-time endpoints, assigns the
// next edge id via e.SetID, and returns that id.
// Both endpoints must already exist (ErrVertexNotFound).
func (g *AdjacencyList[W, E]) AddEdge(e E) (int, error) {
	var zero E
	if any(e) == any(zero) {
		return 0, ErrNilEdge
	}
	src, dst := e.SrcID(), e.DstID()
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return 0, ErrVertexNotFound
	}

	id := g.nextEdgeID
	g.nextEdgeID++
	e.SetID(id)
	g.edges[id] = e

	g.link(src, dst, id)
	if !g.cfg.directed && src != dst {
		g.link(dst, src, id)
	}

	return id, nil
}

// RemoveEdge deletes the edge with edgeID between srcID and dstID.
func (g *AdjacencyList[W, E]) RemoveEdge(srcID, dstID, edgeID int) error {
	e, ok := g.edges[edgeID]
	if !ok || !sameEndpoints(e, srcID, dstID, g.cfg.directed) {
		return ErrEdgeNotFound
	}
	delete(g.edges, edgeID)
	g.unlink(e.SrcID(), e.DstID(), edgeID)
	if !g.cfg.directed && e.SrcID() != e.DstID() {
		g.unlink(e.DstID(), e.SrcID(), edgeID)
	}

	return nil
}

// RemoveVertex deletes the vertex and every edge touching it.
func (g *AdjacencyList[W, E]) RemoveVertex(vertexID int) error {
	if !g.HasVertex(vertexID) {
		return ErrVertexNotFound
	}
	for id, e := range g.edges {
		if e.SrcID() == vertexID || e.DstID() == vertexID {
			delete(g.edges, id)
			g.unlink(e.SrcID(), e.DstID(), id)
			if !g.cfg.directed && e.SrcID() != e.DstID() {
				g.unlink(e.DstID(), e.SrcID(), id)
			}
		}
	}
	delete(g.adj, vertexID)
	delete(g.vertices, vertexID)

	return nil
}

// Vertices returns every vertex id, sorted ascending.
func (g *AdjacencyList[W, E]) Vertices() []int {
	ids := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *AdjacencyList[W, E]) VertexCount() int { return len(g.vertices) }

// Neighbors returns adjacent vertex ids from vertexID, sorted ascending,
// one entry per connecting edge. Unknown ids yield an empty slice.
func (g *AdjacencyList[W, E]) Neighbors(vertexID int) []int {
	var out []int
	for dst, edgeIDs := range g.adj[vertexID] {
		for range edgeIDs {
			out = append(out, dst)
		}
	}
	sort.Ints(out)

	return out
}

// EdgesFrom returns (neighbor id, edge) pairs for every edge traversable
// from srcID, sorted by edge id.
func (g *AdjacencyList[W, E]) EdgesFrom(srcID int) []Adjacent[W, E] {
	var out []Adjacent[W, E]
	for dst, edgeIDs := range g.adj[srcID] {
		for _, id := range edgeIDs {
			out = append(out, Adjacent[W, E]{DstID: dst, Edge: g.edges[id]})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Edge.ID() < out[j].Edge.ID() })

	return out
}

// EdgesBetween returns every edge between srcID and dstID, sorted by edge
// id. Parallel edges all appear; for undirected graphs endpoint order is
// irrelevant.
func (g *AdjacencyList[W, E]) EdgesBetween(srcID, dstID int) []E {
	ids := g.adj[srcID][dstID]
	out := make([]E, 0, len(ids))
	for _, id := range ids {
		out = append(out, g.edges[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}

// EdgeBetween returns the edge with edgeID between srcID and dstID.
func (g *AdjacencyList[W, E]) EdgeBetween(srcID, dstID, edgeID int) (E, bool) {
	for _, id := range g.adj[srcID][dstID] {
		if id == edgeID {
			return g.edges[id], true
		}
	}
	var zero E

	return zero, false
}

// EdgeByID looks an edge up directly by its id.
func (g *AdjacencyList[W, E]) EdgeByID(edgeID int) (E, bool) {
	e, ok := g.edges[edgeID]

	return e, ok
}

// HasAnyEdge reports whether at least one edge connects srcID to dstID.
func (g *AdjacencyList[W, E]) HasAnyEdge(srcID, dstID int) bool {
	return len(g.adj[srcID][dstID]) > 0
}

// Edges returns every stored edge exactly once, sorted by edge id.
func (g *AdjacencyList[W, E]) Edges() []Arc[W, E] {
	out := make([]Arc[W, E], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, Arc[W, E]{SrcID: e.SrcID(), DstID: e.DstID(), Edge: e})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Edge.ID() < out[j].Edge.ID() })

	return out
}

// AsDirectedEdges materializes the directed view: undirected edges appear
// once per direction (self-loops once), directed edges once. Sorted by
// edge id, the mirrored arc directly after its original.
func (g *AdjacencyList[W, E]) AsDirectedEdges() []Arc[W, E] {
	base := g.Edges()
	if g.cfg.directed {
		return base
	}
	out := make([]Arc[W, E], 0, 2*len(base))
	for _, a := range base {
		out = append(out, a)
		if a.SrcID != a.DstID {
			out = append(out, Arc[W, E]{SrcID: a.DstID, DstID: a.SrcID, Edge: a.Edge})
		}
	}

	return out
}

// EdgeCount returns the number of stored edges.
func (g *AdjacencyList[W, E]) EdgeCount() int { return len(g.edges) }

// link appends edgeID under adj[src][dst].
func (g *AdjacencyList[W, E]) link(src, dst, edgeID int) {
	if g.adj[src] == nil {
		g.adj[src] = make(map[int][]int)
	}
	g.adj[src][dst] = append(g.adj[src][dst], edgeID)
}

// unlink removes edgeID from adj[src][dst], dropping empty buckets.
func (g *AdjacencyList[W, E]) unlink(src, dst, edgeID int) {
	ids := g.adj[src][dst]
	for i, id := range ids {
		if id == edgeID {
			g.adj[src][dst] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(g.adj[src][dst]) == 0 {
		delete(g.adj[src], dst)
	}
}

// sameEndpoints reports whether e connects srcID and dstID, respecting
// endpoint order only for directed graphs.
func sameEndpoints[W magnitude.Number, E Edge[W]](e E, srcID, dstID int, directed bool) bool {
	if e.SrcID() == srcID && e.DstID() == dstID {
		return true
	}
	if !directed && e.SrcID() == dstID && e.DstID() == srcID {
		return true
	}

	return false
}

// Interface conformance checks.
var (
	_ Graph[int, *DefaultEdge[int]]      = (*AdjacencyList[int, *DefaultEdge[int]])(nil)
	_ Graph[float64, *FlowEdge[float64]] = (*AdjacencyList[float64, *FlowEdge[float64]])(nil)
	_ Edge[int]                          = (*DefaultEdge[int])(nil)
	_ Edge[int]                          = (*FlowEdge[int])(nil)
)
