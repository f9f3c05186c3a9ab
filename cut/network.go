package cut

import (
	"sort"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// network is the residual flow network both cuts are computed on.
// Arcs are stored in pairs: arc i and arc i^1 are each other's reverse,
// so pushing flow forward frees residual capacity backward without any
// lookup. Every arc is a core.FlowEdge; reverse arcs carry capacity 0
// and go negative in flow when their pair is augmented.
type network struct {
	nodes int
	adj   [][]int // arc indices leaving each node
	arcs  []*core.FlowEdge[int]
	tag   []int // original edge id behind the arc pair, -1 for synthetic arcs
}

func newNetwork(nodes int) *network {
	return &network{nodes: nodes, adj: make([][]int, nodes)}
}

// addArc installs a forward arc u→v with the given capacity and its
// zero-capacity reverse. tag labels both with an originating edge id.
func (nw *network) addArc(u, v, capacity, tag int) {
	fwd := core.MustFlowEdgeWith(u, v, magnitude.Finite(1), capacity, 0)
	rev := core.MustFlowEdgeWith(v, u, magnitude.Finite(1), 0, 0)
	nw.adj[u] = append(nw.adj[u], len(nw.arcs))
	nw.arcs = append(nw.arcs, fwd)
	nw.adj[v] = append(nw.adj[v], len(nw.arcs))
	nw.arcs = append(nw.arcs, rev)
	nw.tag = append(nw.tag, tag, tag)
}

// addBiArc installs an undirected unit edge: both directions carry the
// given capacity and the pair shares residual bookkeeping, so the edge
// can route flow either way but is spent once.
func (nw *network) addBiArc(u, v, capacity, tag int) {
	fwd := core.MustFlowEdgeWith(u, v, magnitude.Finite(1), capacity, 0)
	rev := core.MustFlowEdgeWith(v, u, magnitude.Finite(1), capacity, 0)
	nw.adj[u] = append(nw.adj[u], len(nw.arcs))
	nw.arcs = append(nw.arcs, fwd)
	nw.adj[v] = append(nw.adj[v], len(nw.arcs))
	nw.arcs = append(nw.arcs, rev)
	nw.tag = append(nw.tag, tag, tag)
}

// augment pushes amount along arc i, mirroring it on the paired arc.
func (nw *network) augment(i, amount int) {
	arc, pair := nw.arcs[i], nw.arcs[i^1]
	// Residual never goes negative along an augmenting path, so
	// neither SetFlow can violate the capacity invariant.
	if err := arc.SetFlow(arc.Flow() + amount); err != nil {
		panic(err)
	}
	if err := pair.SetFlow(pair.Flow() - amount); err != nil {
		panic(err)
	}
}

// maxFlow runs Edmonds-Karp from src to dst and returns the flow value.
func (nw *network) maxFlow(src, dst int) int {
	total := 0
	for {
		parentArc := nw.shortestAugmenting(src, dst)
		if parentArc == nil {
			return total
		}
		// Bottleneck along the recovered path.
		bottle := -1
		for v := dst; v != src; {
			arc := nw.arcs[parentArc[v]]
			if r := arc.Residual(); bottle < 0 || r < bottle {
				bottle = r
			}
			v = arc.SrcID()
		}
		for v := dst; v != src; {
			i := parentArc[v]
			nw.augment(i, bottle)
			v = nw.arcs[i].SrcID()
		}
		total += bottle
	}
}

// shortestAugmenting finds a fewest-arcs path with positive residual
// capacity from src to dst by BFS. It returns the arc index entering
// each visited node, or nil when dst is unreachable.
func (nw *network) shortestAugmenting(src, dst int) map[int]int {
	parentArc := make(map[int]int, nw.nodes)
	seen := make([]bool, nw.nodes)
	seen[src] = true
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, i := range nw.adj[u] {
			arc := nw.arcs[i]
			if arc.Residual() <= 0 || seen[arc.DstID()] {
				continue
			}
			seen[arc.DstID()] = true
			parentArc[arc.DstID()] = i
			if arc.DstID() == dst {
				return parentArc
			}
			queue = append(queue, arc.DstID())
		}
	}
	return nil
}

// residualReachable returns the set of nodes reachable from src using
// arcs with positive residual capacity, the source side of the min cut.
func (nw *network) residualReachable(src int) []bool {
	seen := make([]bool, nw.nodes)
	seen[src] = true
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, i := range nw.adj[u] {
			arc := nw.arcs[i]
			if arc.Residual() > 0 && !seen[arc.DstID()] {
				seen[arc.DstID()] = true
				queue = append(queue, arc.DstID())
			}
		}
	}
	return seen
}

// crossingTags collects the deduplicated, sorted tags of saturated
// arcs leading from the reachable side to the unreachable side.
func (nw *network) crossingTags(seen []bool) []int {
	picked := make(map[int]bool)
	for i, arc := range nw.arcs {
		if nw.tag[i] < 0 || arc.Capacity() == 0 {
			continue
		}
		if seen[arc.SrcID()] && !seen[arc.DstID()] && arc.Residual() == 0 {
			picked[nw.tag[i]] = true
		}
	}
	tags := make([]int, 0, len(picked))
	for t := range picked {
		tags = append(tags, t)
	}
	sort.Ints(tags)
	return tags
}
