package shortestpath

import (
	"fmt"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// BellmanFord computes shortest distances from sourceID to every vertex
// of g, tolerating negative edge weights.
//
// It performs |V|-1 relaxation rounds over the directed arc view of the
// graph (each undirected edge relaxes in both directions), then one
// detection round: if any arc still relaxes, a negative-weight cycle is
// reachable and ErrNegativeCycle is returned instead of a distance
// table. Note that an undirected edge of negative weight is itself a
// negative cycle, since it can be traversed back and forth.
//
// Edges with PosInf weight model "no edge" and are never relaxed.
//
// Complexity: O(V·E) time, O(V) memory.
func BellmanFord[W magnitude.Number, E core.Edge[W]](
	g core.Graph[W, E],
	sourceID int,
) (*Result[W, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !hasVertex(g, sourceID) {
		return nil, ErrVertexNotFound
	}

	res := newResult(g, sourceID)
	arcs := g.AsDirectedEdges()
	rounds := g.VertexCount() - 1

	for i := 0; i < rounds; i++ {
		changed := false
		for _, a := range arcs {
			if relax(res, a) {
				changed = true
			}
		}
		if !changed {
			// Fixpoint reached early; no arc can relax in later rounds
			// either, so the detection round below is already decided.
			return res, nil
		}
	}

	// Detection round: any further improvement proves a negative cycle.
	for _, a := range arcs {
		if wouldRelax(res, a) {
			return nil, fmt.Errorf("%w: via edge %d→%d", ErrNegativeCycle, a.SrcID, a.DstID)
		}
	}

	return res, nil
}

// relax attempts dist[src] + w < dist[dst] and applies the improvement.
func relax[W magnitude.Number, E core.Edge[W]](res *Result[W, E], a core.Arc[W, E]) bool {
	if !wouldRelax(res, a) {
		return false
	}
	cand, _ := res.Dist[a.SrcID].Add(a.Edge.Weight())
	res.Dist[a.DstID] = cand
	res.Prev[a.DstID] = a.SrcID
	res.prevEdge[a.DstID] = a.Edge

	return true
}

// wouldRelax reports whether arc a offers a strictly shorter path to its
// destination.
func wouldRelax[W magnitude.Number, E core.Edge[W]](res *Result[W, E], a core.Arc[W, E]) bool {
	w := a.Edge.Weight()
	if w.IsPosInf() {
		return false
	}
	cand, err := res.Dist[a.SrcID].Add(w)
	if err != nil {
		return false
	}

	return cand.Less(res.Dist[a.DstID])
}
