package shortestpath

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// Dijkstra computes shortest distances from sourceID to every vertex of
// g, which must carry exclusively non-negative weights.
//
// The frontier is a min-heap keyed by tentative distance using the lazy
// decrease-key strategy: improvements push a fresh entry and stale
// entries are discarded when popped. Ties are broken by first arrival,
// which is deterministic because EdgesFrom enumerates edges in a fixed
// order; any valid shortest-path tree is an acceptable output.
//
// Preconditions, validated in order:
//  1. g must be non-nil (ErrGraphNil).
//  2. g must contain sourceID (ErrVertexNotFound).
//  3. No edge may have negative weight (ErrNegativeWeight) — distances
//     under negative weights would be silently wrong, so the scan fails
//     fast instead.
//
// Edges with PosInf weight model "no edge" and are never relaxed.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra[W magnitude.Number, E core.Edge[W]](
	g core.Graph[W, E],
	sourceID int,
) (*Result[W, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !hasVertex(g, sourceID) {
		return nil, ErrVertexNotFound
	}

	// Fail fast on any negative weight before touching the frontier.
	var zero W
	zeroMag := magnitude.Finite(zero)
	for _, a := range g.Edges() {
		if a.Edge.Weight().Less(zeroMag) {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%s",
				ErrNegativeWeight, a.SrcID, a.DstID, a.Edge.Weight())
		}
	}

	res := newResult(g, sourceID)
	visited := make(map[int]bool, g.VertexCount())

	pq := make(distPQ[W], 0, g.VertexCount())
	heap.Init(&pq)
	heap.Push(&pq, &distItem[W]{id: sourceID, dist: zeroMag})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*distItem[W])
		if visited[item.id] {
			// Stale lazy-decrease-key entry.
			continue
		}
		visited[item.id] = true

		for _, adj := range g.EdgesFrom(item.id) {
			w := adj.Edge.Weight()
			if w.IsPosInf() {
				continue
			}
			cand, err := item.dist.Add(w)
			if err != nil || !cand.Less(res.Dist[adj.DstID]) {
				continue
			}
			res.Dist[adj.DstID] = cand
			res.Prev[adj.DstID] = item.id
			res.prevEdge[adj.DstID] = adj.Edge
			heap.Push(&pq, &distItem[W]{id: adj.DstID, dist: cand})
		}
	}

	return res, nil
}

// distItem pairs a vertex with its tentative distance in the frontier.
type distItem[W magnitude.Number] struct {
	id   int
	dist magnitude.Magnitude[W]
}

// distPQ is a min-heap of *distItem ordered by distance ascending.
type distPQ[W magnitude.Number] []*distItem[W]

func (pq distPQ[W]) Len() int            { return len(pq) }
func (pq distPQ[W]) Less(i, j int) bool  { return pq[i].dist.Less(pq[j].dist) }
func (pq distPQ[W]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *distPQ[W]) Push(x interface{}) { *pq = append(*pq, x.(*distItem[W])) }

func (pq *distPQ[W]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
