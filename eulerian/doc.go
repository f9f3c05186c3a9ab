// Package eulerian detects and constructs Eulerian trails and circuits:
// walks traversing every edge of a graph exactly once.
//
// Preconditions
//
//   - Undirected: every vertex of even degree = circuit; exactly two
//     vertices of odd degree = trail between them.
//   - Directed: in-degree equal to out-degree everywhere = circuit;
//     exactly one vertex with out−in = 1 (the start) and one with
//     in−out = 1 (the end) = trail.
//   - In both cases all vertices of non-zero degree must belong to one
//     connected component of the underlying undirected graph; together
//     with the degree condition this is equivalent to the classical
//     mutual-reachability requirement.
//
// Construction is Hierholzer's algorithm: repeatedly walk a closed tour
// from an available vertex, consuming edges, and splice it into the
// accumulating trail. Parallel edges and self-loops are handled, since
// edges are consumed by id.
//
// Complexity: O(V + E) time and memory.
package eulerian
