// Package connectivity partitions graphs into reachability classes:
// connected components for undirected graphs and Tarjan
// strongly-connected components for directed ones.
//
// What
//
//   - ConnectedComponents(g): one breadth-first pass partitioning the
//     vertices of an undirected graph into disjoint reachability classes.
//   - TarjanSCC(g): single-pass depth-first search over a directed graph
//     maintaining a discovery index and low-link value per vertex plus an
//     explicit stack; a vertex closes a component exactly when its
//     low-link equals its own index.
//
// Both partition the full vertex set: every vertex belongs to exactly one
// component. Components are emitted with their member ids sorted
// ascending, ordered by their smallest member, so output is deterministic.
//
// Complexity: O(V + E) time, O(V) memory for either entry point.
package connectivity
