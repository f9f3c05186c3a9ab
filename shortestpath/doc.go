// Package shortestpath implements single-source and all-pairs shortest
// paths over any core.Graph: Dijkstra, Bellman-Ford and Floyd-Warshall.
//
// What
//
//   - Dijkstra(g, sourceID): non-negative weights only (validated up
//     front, ErrNegativeWeight); min-heap frontier with lazy decrease-key;
//     O((V+E) log V).
//   - BellmanFord(g, sourceID): tolerates negative weights; |V|-1
//     relaxation rounds plus one detection round; reports
//     ErrNegativeCycle instead of a distance table when an edge still
//     relaxes; O(V·E).
//   - FloydWarshall(g): all-pairs dynamic programming over
//     intermediate-vertex inclusion with fixed k→i→j loop order; a
//     negative diagonal entry after completion signals ErrNegativeCycle;
//     O(V³).
//
// Results
//
//	Distances are magnitude.Magnitude values: finite for reachable
//	vertices, PosInf for unreachable ones — never a magic large number.
//	Single-source results carry predecessor links for path
//	reconstruction (PathTo) and convert to a
//	subgraph.ShortestPathSubgraph tree view (Tree). A negative cycle is
//	a distinct condition from unreachability and is never conflated
//	with it.
//
// Edges whose weight is PosInf are treated as absent and never relaxed.
package shortestpath
