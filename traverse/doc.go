// Package traverse implements breadth-first and depth-first search over any
// core.Graph, plus the DFS-derived analyses: cycle detection and
// topological sort.
//
// What
//
//   - BFS(g, rootID, opts...): explore vertices in non-decreasing distance
//     from the root, queue discipline (first discovered, first expanded).
//   - DFS(g, rootID, opts...): explore one branch to exhaustion before
//     backtracking, with discovery/finish timestamps.
//   - BFSForest / DFSForest: run over every vertex, covering disconnected
//     components, and return a subgraph.MultiRootSubgraph with one root
//     per tree.
//   - FindCycle / HasCycle: back-edge detection on directed graphs,
//     arrival-edge tracking on undirected graphs so the immediate
//     back-edge to the parent is not a false cycle.
//   - TopologicalSort: reverse DFS finish order; fails with ErrCycle on
//     cyclic input.
//
// State machine
//
//	Every vertex moves White → Gray → Black: unvisited, on the active
//	frontier/stack, fully processed. A Black vertex is never revisited, so
//	every vertex reachable from the roots is visited exactly once.
//
// Hooks
//
//	OnDiscover, OnFinish and OnEdge are invoked at well-defined events, so
//	callers can build spanning forests, detect back-edges, or record
//	timestamps without modifying the traversal. Hooks run synchronously on
//	the calling goroutine; an error from OnDiscover/OnFinish aborts the
//	traversal with that error.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Time:   O(V + E) for every entry point in this package.
//   - Memory: O(V) for color state, queue/stack and result maps.
package traverse
