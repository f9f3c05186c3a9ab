package eulerian

import (
	"errors"
	"sort"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// Kind classifies a graph's Eulerian character.
type Kind int

const (
	// KindNone means no walk covers every edge exactly once.
	KindNone Kind = iota
	// KindTrail means an open walk covers every edge exactly once.
	KindTrail
	// KindCircuit means a closed walk covers every edge exactly once.
	KindCircuit
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindTrail:
		return "trail"
	case KindCircuit:
		return "circuit"
	default:
		return "none"
	}
}

var (
	// ErrGraphNil is returned when the input graph is nil.
	ErrGraphNil = errors.New("eulerian: graph is nil")
	// ErrNotEulerian is returned by Trail when the graph admits
	// neither an Eulerian trail nor an Eulerian circuit.
	ErrNotEulerian = errors.New("eulerian: graph has no eulerian trail or circuit")
)

// Classify reports whether g admits an Eulerian circuit, an open
// Eulerian trail, or neither. A graph without edges is trivially
// classified as KindCircuit.
func Classify[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E]) (Kind, error) {
	if g == nil {
		return KindNone, ErrGraphNil
	}
	kind, _, _ := classify[W, E](g)
	return kind, nil
}

// Trail returns an Eulerian walk over g as a vertex sequence of length
// EdgeCount+1 (empty when the graph has no edges), together with its
// Kind. For a circuit the first and last vertices coincide. The walk is
// deterministic: ties are broken toward lower edge ids.
//
// Trail returns ErrNotEulerian when no such walk exists.
func Trail[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E]) ([]int, Kind, error) {
	if g == nil {
		return nil, KindNone, ErrGraphNil
	}
	kind, start, arcs := classify[W, E](g)
	if kind == KindNone {
		return nil, KindNone, ErrNotEulerian
	}
	if g.EdgeCount() == 0 {
		return nil, KindCircuit, nil
	}
	walk := hierholzer(start, arcs, g.EdgeCount())
	return walk, kind, nil
}

// arcList is the consumable adjacency used by Hierholzer: for each
// vertex, the outgoing hops sorted by edge id.
type arcList map[int][]hop

type hop struct {
	edgeID int
	dst    int
}

// classify computes the Kind of g, the canonical start vertex for a
// walk, and the traversal adjacency. start is meaningful only when the
// kind is not KindNone.
func classify[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E]) (Kind, int, arcList) {
	if g.EdgeCount() == 0 {
		return KindCircuit, 0, nil
	}

	arcs := make(arcList)
	balance := make(map[int]int) // directed: out-in; undirected: degree parity tracking
	degree := make(map[int]int)

	if g.Directed() {
		for _, e := range g.Edges() {
			arcs[e.SrcID] = append(arcs[e.SrcID], hop{edgeID: e.Edge.ID(), dst: e.DstID})
			balance[e.SrcID]++
			balance[e.DstID]--
			degree[e.SrcID]++
			degree[e.DstID]++
		}
	} else {
		for _, e := range g.Edges() {
			arcs[e.SrcID] = append(arcs[e.SrcID], hop{edgeID: e.Edge.ID(), dst: e.DstID})
			if e.SrcID != e.DstID {
				arcs[e.DstID] = append(arcs[e.DstID], hop{edgeID: e.Edge.ID(), dst: e.SrcID})
			}
			degree[e.SrcID]++
			degree[e.DstID]++
		}
	}
	for v := range arcs {
		sort.Slice(arcs[v], func(i, j int) bool { return arcs[v][i].edgeID < arcs[v][j].edgeID })
	}

	if !nonZeroDegreeConnected(degree, arcs, g.Directed()) {
		return KindNone, 0, nil
	}

	kind := KindNone
	start := -1
	if g.Directed() {
		var surplus, deficit, skewed int
		for v, b := range balance {
			switch {
			case b == 1:
				surplus++
				start = v
			case b == -1:
				deficit++
			case b != 0:
				skewed++
			}
		}
		switch {
		case skewed == 0 && surplus == 0 && deficit == 0:
			kind = KindCircuit
		case skewed == 0 && surplus == 1 && deficit == 1:
			kind = KindTrail
		}
	} else {
		var odd []int
		for v, d := range degree {
			if d%2 == 1 {
				odd = append(odd, v)
			}
		}
		switch len(odd) {
		case 0:
			kind = KindCircuit
		case 2:
			kind = KindTrail
			sort.Ints(odd)
			start = odd[0]
		}
	}
	if kind == KindCircuit {
		start = smallestActive(degree)
	}
	return kind, start, arcs
}

// nonZeroDegreeConnected reports whether all vertices touching at least
// one edge lie in a single component of the underlying undirected
// graph. Combined with the degree balance this is sufficient for an
// Eulerian walk to exist, even in the directed case.
func nonZeroDegreeConnected(degree map[int]int, arcs arcList, directed bool) bool {
	start := smallestActive(degree)
	seen := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, h := range arcs[u] {
			if !seen[h.dst] {
				seen[h.dst] = true
				queue = append(queue, h.dst)
			}
		}
		if directed {
			// Arcs hold forward hops only; sweep backward reachability
			// the cheap way by scanning all adjacency heads.
			for v, hops := range arcs {
				if seen[v] {
					continue
				}
				for _, h := range hops {
					if h.dst == u {
						seen[v] = true
						queue = append(queue, v)
						break
					}
				}
			}
		}
	}
	for v := range degree {
		if !seen[v] {
			return false
		}
	}
	return true
}

func smallestActive(degree map[int]int) int {
	best, found := 0, false
	for v := range degree {
		if !found || v < best {
			best, found = v, true
		}
	}
	return best
}

// hierholzer consumes every edge of the adjacency exactly once and
// returns the resulting walk starting at start. Vertices are appended
// on retreat and the sequence reversed, the standard splice-free
// formulation of Hierholzer's algorithm.
func hierholzer(start int, arcs arcList, edgeCount int) []int {
	used := make(map[int]bool, edgeCount)
	next := make(map[int]int, len(arcs))
	stack := []int{start}
	walk := make([]int, 0, edgeCount+1)

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		hops := arcs[u]
		i := next[u]
		for i < len(hops) && used[hops[i].edgeID] {
			i++
		}
		next[u] = i
		if i == len(hops) {
			stack = stack[:len(stack)-1]
			walk = append(walk, u)
			continue
		}
		used[hops[i].edgeID] = true
		next[u] = i + 1
		stack = append(stack, hops[i].dst)
	}

	for l, r := 0, len(walk)-1; l < r; l, r = l+1, r-1 {
		walk[l], walk[r] = walk[r], walk[l]
	}
	return walk
}
