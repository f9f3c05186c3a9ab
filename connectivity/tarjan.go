package connectivity

import (
	"sort"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// TarjanSCC partitions the vertices of the directed graph g into
// strongly-connected components: maximal sets of mutually reachable
// vertices. Every vertex belongs to exactly one component, and collapsing
// each component to a single node yields an acyclic condensation graph.
//
// One depth-first pass maintains a discovery index and a low-link value
// per vertex plus an explicit stack of the vertices of the current,
// not-yet-closed components; a vertex closes its component exactly when
// its low-link equals its own index.
//
// Components are returned with member ids sorted ascending, ordered by
// smallest member.
func TarjanSCC[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E]) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	t := &tarjan[W, E]{
		g:       g,
		index:   make(map[int]int, g.VertexCount()),
		lowlink: make(map[int]int, g.VertexCount()),
		onStack: make(map[int]bool, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if _, visited := t.index[v]; !visited {
			t.strongConnect(v)
		}
	}

	sort.Slice(t.comps, func(i, j int) bool { return t.comps[i][0] < t.comps[j][0] })

	return t.comps, nil
}

// tarjan holds the DFS state of one TarjanSCC run.
type tarjan[W magnitude.Number, E core.Edge[W]] struct {
	g       core.Graph[W, E]
	counter int
	index   map[int]int
	lowlink map[int]int
	stack   []int
	onStack map[int]bool
	comps   [][]int
}

// strongConnect performs the recursive Tarjan step from v.
func (t *tarjan[W, E]) strongConnect(v int) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.g.Neighbors(v) {
		if _, visited := t.index[w]; !visited {
			t.strongConnect(w)
			t.lowlink[v] = min(t.lowlink[v], t.lowlink[w])
		} else if t.onStack[w] {
			t.lowlink[v] = min(t.lowlink[v], t.index[w])
		}
	}

	// v is the root of a component exactly when lowlink == index: pop
	// every vertex above it off the stack.
	if t.lowlink[v] != t.index[v] {
		return
	}
	var comp []int
	for {
		n := len(t.stack) - 1
		w := t.stack[n]
		t.stack = t.stack[:n]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	sort.Ints(comp)
	t.comps = append(t.comps, comp)
}
