// Package mst computes minimum spanning forests of undirected weighted
// graphs using Kruskal's algorithm.
//
// What
//
//	Kruskal sorts every edge by ascending weight (ties broken by edge id
//	for determinism) and grows a forest with a union-find structure (path
//	compression + union by rank), accepting an edge only when its
//	endpoints are in different components.
//
// Disconnected graphs are not an error: the output is a minimum spanning
// forest with one tree per connected component, and Result.Spanning()
// distinguishes a true spanning tree from a forest.
//
// Complexity: O(E log E) time, O(V + E) memory.
package mst
