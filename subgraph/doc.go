// Package subgraph provides lightweight non-owning projections of a parent
// graph: a subset of its vertices and edges exposed through the same
// capability interfaces algorithms consume.
//
// What
//
//   - AsSubgraph: the read-only capability bundle (Vertices + Neighbors +
//     Edges) any view satisfies.
//   - AsMutSubgraph: adds RemoveEdge and RemoveVertex, which narrow the
//     view only — the parent graph is never mutated.
//   - Subgraph: the default view, holding a parent reference plus explicit
//     vertex ids and (src, dst, edge) arcs.
//   - MultiRootSubgraph: a Subgraph recording designated root vertices,
//     used for BFS/DFS forests spanning disconnected components.
//   - ShortestPathSubgraph: a Subgraph recording a computed distance per
//     vertex, used for shortest-path trees.
//
// Why
//
//	Algorithm results frequently are graphs themselves (spanning forests,
//	shortest-path trees). A view references the parent's edges without
//	copying or owning them, so results stay cheap and remain valid for as
//	long as the parent graph is alive.
//
// Queries are filters over the stored arc list — O(edges in view) each,
// acceptable because views are small relative to the parent.
package subgraph
