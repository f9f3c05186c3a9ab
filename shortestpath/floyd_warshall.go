package shortestpath

import (
	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// AllPairs is the distance table produced by FloydWarshall, indexed by
// vertex id. Unreachable pairs report PosInf; the diagonal is zero.
type AllPairs[W magnitude.Number] struct {
	ids   []int       // sorted vertex ids, row/column order
	index map[int]int // vertex id → matrix index
	dist  [][]magnitude.Magnitude[W]
	next  [][]int // next[i][j] = index of the hop after i on a path i→j, -1 if none
}

// Vertices returns the vertex ids of the table rows, sorted ascending.
func (m *AllPairs[W]) Vertices() []int { return append([]int(nil), m.ids...) }

// Distance returns the shortest distance from srcID to dstID.
// Unknown vertex ids report ok=false.
func (m *AllPairs[W]) Distance(srcID, dstID int) (magnitude.Magnitude[W], bool) {
	i, okI := m.index[srcID]
	j, okJ := m.index[dstID]
	if !okI || !okJ {
		return magnitude.Magnitude[W]{}, false
	}

	return m.dist[i][j], true
}

// PathBetween reconstructs one shortest path from srcID to dstID.
// It reports ok=false for unknown ids or an unreachable pair.
func (m *AllPairs[W]) PathBetween(srcID, dstID int) ([]int, bool) {
	i, okI := m.index[srcID]
	j, okJ := m.index[dstID]
	if !okI || !okJ || m.dist[i][j].IsPosInf() {
		return nil, false
	}
	path := []int{srcID}
	for i != j {
		i = m.next[i][j]
		if i < 0 {
			return nil, false
		}
		path = append(path, m.ids[i])
	}

	return path, true
}

// FloydWarshall computes all-pairs shortest distances of g by dynamic
// programming over intermediate-vertex inclusion.
//
// The matrix is initialized from direct edge weights (minimum over
// parallel edges, PosInf where no edge, zero on the diagonal) and relaxed
// in fixed k→i→j loop order for deterministic accumulation. A negative
// value on the diagonal after completion proves a negative cycle and
// yields ErrNegativeCycle instead of a table.
//
// Complexity: O(V³) time, O(V²) memory.
func FloydWarshall[W magnitude.Number, E core.Edge[W]](g core.Graph[W, E]) (*AllPairs[W], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	ids := g.Vertices()
	n := len(ids)
	index := make(map[int]int, n)
	for i, id := range ids {
		index[id] = i
	}

	m := &AllPairs[W]{ids: ids, index: index}
	m.dist = make([][]magnitude.Magnitude[W], n)
	m.next = make([][]int, n)
	var zero W
	for i := 0; i < n; i++ {
		m.dist[i] = make([]magnitude.Magnitude[W], n)
		m.next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			m.dist[i][j] = magnitude.PosInf[W]()
			m.next[i][j] = -1
		}
		m.dist[i][i] = magnitude.Finite(zero)
		m.next[i][i] = i
	}

	// Seed with direct edges, keeping the minimum over parallel edges.
	// A negative self-loop lowers its diagonal entry immediately.
	for _, a := range g.AsDirectedEdges() {
		w := a.Edge.Weight()
		if w.IsPosInf() {
			continue
		}
		i, j := index[a.SrcID], index[a.DstID]
		if w.Less(m.dist[i][j]) {
			m.dist[i][j] = w
			m.next[i][j] = j
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if m.dist[i][k].IsPosInf() {
				continue
			}
			for j := 0; j < n; j++ {
				cand, err := m.dist[i][k].Add(m.dist[k][j])
				if err != nil || !cand.Less(m.dist[i][j]) {
					continue
				}
				m.dist[i][j] = cand
				m.next[i][j] = m.next[i][k]
			}
		}
	}

	var zeroMag = magnitude.Finite(zero)
	for i := 0; i < n; i++ {
		if m.dist[i][i].Less(zeroMag) {
			return nil, ErrNegativeCycle
		}
	}

	return m, nil
}
