// Package core defines the edge model and the capability interfaces every
// graph representation in grava must satisfy, plus a reference
// adjacency-list storage implementing them.
//
// What
//
//   - Edge[W]: the contract every edge variant implements — construct,
//     get/set weight, read endpoint ids, carry the id assigned by the
//     owning graph.
//   - DefaultEdge[W]: a plain weighted edge.
//   - FlowEdge[W]: weight plus capacity and flow, with the invariant
//     flow ≤ capacity enforced on construction and every mutation.
//   - Capability interfaces: Vertices (enumerate vertex ids), Neighbors
//     (adjacent ids from a vertex), Edges[W, E] (enumerate/query edges),
//     and Graph[W, E] composing all three with a directedness tag.
//   - AdjacencyList[W, E]: a mutable reference storage any algorithm in
//     this module can run against.
//
// Why
//
//	Algorithms in traverse, shortestpath, mst, connectivity, eulerian and
//	cut depend only on the capability interfaces, never on a concrete
//	representation. Any backing storage — adjacency list, matrix, a view —
//	that satisfies Graph[W, E] is usable without changes to the algorithms.
//
// Determinism
//
//	AdjacencyList returns vertex ids sorted ascending and edges sorted by
//	edge id, so every algorithm built on it is reproducible run to run.
//
// Errors
//
//	Missing vertices/edges in queries are absences ((E, bool) or empty
//	slices), not errors. Mutations on AdjacencyList and invariant-violating
//	FlowEdge operations return sentinel errors (ErrVertexNotFound,
//	ErrFlowExceedsCapacity, ...), checkable with errors.Is.
package core
