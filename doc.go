// Package grava is an in-memory toolkit for building, inspecting and
// analyzing weighted graphs — generic over the weight type, with
// infinities as first-class weights.
//
// 🚀 What is grava?
//
//	A generics-based graph library that brings together:
//		• Magnitudes: weights extended with +inf / -inf and safe arithmetic
//		• Core primitives: adjacency-list storage, weighted & flow edges
//		• Subgraph views: plain, multi-root and shortest-path subgraphs
//		• Traversals: BFS, DFS, cycle detection, topological sort
//		• Shortest paths: Dijkstra, Bellman-Ford, Floyd-Warshall
//		• Spanning structure: Kruskal forests
//		• Connectivity: components, Tarjan SCCs, vertex & edge cuts
//		• Eulerian trails & circuits, classic graph generators
//
// ✨ Why choose grava?
//
//   - Deterministic – every query and algorithm has a fixed output order
//   - Honest errors – sentinel errors, wrapped with context, never panics
//     on bad input
//   - Pure Go – a single generic API covers int and float weights alike
//   - Composable – algorithms speak through small capability interfaces,
//     so custom storages plug in unchanged
//
// Under the hood, everything is organized under focused subpackages:
//
//	magnitude/    — weights with positive and negative infinity
//	core/         — Edge, FlowEdge, capability interfaces, AdjacencyList
//	subgraph/     — read-only views over a parent graph
//	traverse/     — BFS, DFS, cycles, topological sort
//	shortestpath/ — Dijkstra, Bellman-Ford, Floyd-Warshall
//	mst/          — Kruskal minimum spanning forests
//	connectivity/ — connected components & strongly connected components
//	cut/          — minimum vertex and edge cuts via max flow
//	eulerian/     — Eulerian trail and circuit detection & construction
//	gen/          — path, cycle, star, wheel, complete, circular ladder
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	represents a square with four vertices and four edges: an Eulerian
//	circuit, a connected component, and a spanning tree away from most
//	of the API.
//
//	go get github.com/katalvlaran/grava
package grava
