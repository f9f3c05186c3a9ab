// This file declares the composable read capabilities any graph
// representation may provide: Vertices, Neighbors, Edges, and the Graph
// interface composing them. Algorithms depend only on these contracts.

package core

import "github.com/katalvlaran/grava/magnitude"

// Adjacent pairs a neighbor vertex id with the edge leading to it.
type Adjacent[W magnitude.Number, E Edge[W]] struct {
	DstID int
	Edge  E
}

// Arc is an edge together with the endpoint pair it is seen from.
// For undirected graphs the same edge may appear as two mirrored Arcs.
type Arc[W magnitude.Number, E Edge[W]] struct {
	SrcID int
	DstID int
	Edge  E
}

// Vertices is the capability to enumerate vertex ids.
//
// Vertices returns each id exactly once; implementations in this module
// return ids sorted ascending for determinism, but algorithms must not
// rely on any particular order.
type Vertices interface {
	Vertices() []int
	VertexCount() int
}

// Neighbors is the capability to enumerate adjacent vertex ids.
//
// For directed graphs only destinations of outgoing edges are returned;
// for undirected graphs all incident endpoints. A vertex with parallel
// edges to the same neighbor reports that neighbor once per edge.
// An unknown vertex id yields an empty slice, not an error.
type Neighbors interface {
	Neighbors(vertexID int) []int
}

// Edges is the capability to enumerate and query edges.
//
// Lookup misses are absences: EdgeByID and EdgeBetween report ok=false,
// EdgesFrom and EdgesBetween return empty slices.
type Edges[W magnitude.Number, E Edge[W]] interface {
	// EdgesFrom returns (neighbor id, edge) pairs for every edge
	// traversable from srcID, under the same policy as Neighbors.
	EdgesFrom(srcID int) []Adjacent[W, E]

	// EdgesBetween returns every edge between srcID and dstID,
	// supporting parallel edges. For undirected graphs the endpoint
	// order of the query does not matter.
	EdgesBetween(srcID, dstID int) []E

	// EdgeBetween returns the edge with edgeID between srcID and dstID.
	EdgeBetween(srcID, dstID, edgeID int) (E, bool)

	// EdgeByID looks an edge up directly by its id.
	EdgeByID(edgeID int) (E, bool)

	// HasAnyEdge reports whether at least one edge connects srcID to dstID.
	HasAnyEdge(srcID, dstID int) bool

	// Edges returns every stored edge exactly once, as an Arc from its
	// construction-time source to its destination.
	Edges() []Arc[W, E]

	// AsDirectedEdges materializes the directed view of every edge:
	// each undirected edge appears twice, once per direction; directed
	// edges appear once.
	AsDirectedEdges() []Arc[W, E]

	// EdgeCount returns the number of stored edges.
	EdgeCount() int
}

// Graph composes the read capabilities with a directedness tag, which
// changes how Neighbors and Edges queries are interpreted.
type Graph[W magnitude.Number, E Edge[W]] interface {
	Vertices
	Neighbors
	Edges[W, E]

	// Directed reports whether edges are one-way only.
	Directed() bool
}
