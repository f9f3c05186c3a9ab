// Package cut computes minimum vertex and edge cuts between two
// vertices via unit-capacity maximum flow.
//
// What
//
//   - EdgeCut(g, src, dst): a smallest set of edges whose removal
//     disconnects dst from src.
//   - VertexCut(g, src, dst): a smallest set of vertices, excluding the
//     endpoints, whose removal disconnects dst from src. Undefined when
//     src and dst share an edge.
//
// How
//
// Both reduce to maximum flow by Menger's theorem. Edges become
// unit-capacity arcs; for the vertex variant every vertex is split into
// an in-half and an out-half joined by a unit-capacity internal arc, so
// flow through a vertex spends that vertex. The flow itself is computed
// with Edmonds-Karp (shortest augmenting paths by BFS) over a residual
// network of core.FlowEdge values, and the cut is read off the residual
// reachability frontier after the final augmentation.
//
// A cut of size zero means src and dst are already disconnected.
//
// Complexity: Edmonds-Karp performs O(V·E) augmentations in general,
// but unit capacities bound the flow value by the cut size, giving
// O(C·E) for a cut of size C.
package cut
