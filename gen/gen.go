package gen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// ErrTooFewVertices is returned by generators whose shape requires a
// minimum vertex count.
var ErrTooFewVertices = errors.New("gen: too few vertices for this shape")

// Null returns the graph with no vertices and no edges.
func Null[W magnitude.Number]() *core.AdjacencyList[W, *core.DefaultEdge[W]] {
	return core.NewAdjacencyList[W, *core.DefaultEdge[W]]()
}

// Empty returns n isolated vertices.
func Empty[W magnitude.Number](n int) *core.AdjacencyList[W, *core.DefaultEdge[W]] {
	g := Null[W]()
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	return g
}

// Path returns the path 0 - 1 - ... - n-1.
func Path[W magnitude.Number](n int) *core.AdjacencyList[W, *core.DefaultEdge[W]] {
	g := Empty[W](n)
	for i := 0; i+1 < n; i++ {
		mustAdd(g, i, i+1)
	}
	return g
}

// Cycle returns the cycle 0 - 1 - ... - n-1 - 0. Requires n >= 3.
func Cycle[W magnitude.Number](n int) (*core.AdjacencyList[W, *core.DefaultEdge[W]], error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: cycle needs at least 3, got %d", ErrTooFewVertices, n)
	}
	g := Path[W](n)
	mustAdd(g, n-1, 0)
	return g, nil
}

// Complete returns the complete graph on n vertices: every pair joined
// by one edge.
func Complete[W magnitude.Number](n int) *core.AdjacencyList[W, *core.DefaultEdge[W]] {
	g := Empty[W](n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mustAdd(g, i, j)
		}
	}
	return g
}

// Star returns n vertices with vertex 0 as the hub joined to every
// other vertex.
func Star[W magnitude.Number](n int) *core.AdjacencyList[W, *core.DefaultEdge[W]] {
	g := Empty[W](n)
	for i := 1; i < n; i++ {
		mustAdd(g, 0, i)
	}
	return g
}

// Wheel returns a hub (vertex 0) joined to every vertex of the cycle
// 1 - 2 - ... - n-1 - 1. Requires n >= 4.
func Wheel[W magnitude.Number](n int) (*core.AdjacencyList[W, *core.DefaultEdge[W]], error) {
	if n < 4 {
		return nil, fmt.Errorf("%w: wheel needs at least 4, got %d", ErrTooFewVertices, n)
	}
	g := Star[W](n)
	for i := 1; i+1 < n; i++ {
		mustAdd(g, i, i+1)
	}
	mustAdd(g, n-1, 1)
	return g, nil
}

// CircularLadder returns two concentric n-cycles, 0..n-1 and n..2n-1,
// joined by the rungs i - i+n. Requires n >= 3.
func CircularLadder[W magnitude.Number](n int) (*core.AdjacencyList[W, *core.DefaultEdge[W]], error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: circular ladder needs at least 3, got %d", ErrTooFewVertices, n)
	}
	g := Empty[W](2 * n)
	for i := 0; i < n; i++ {
		mustAdd(g, i, (i+1)%n)
		mustAdd(g, n+i, n+(i+1)%n)
		mustAdd(g, i, n+i)
	}
	return g, nil
}

// mustAdd inserts a unit-weight edge between two vertices the caller
// has already created.
func mustAdd[W magnitude.Number](g *core.AdjacencyList[W, *core.DefaultEdge[W]], u, v int) {
	if _, err := g.AddEdge(core.NewDefaultEdge(u, v, magnitude.Finite(W(1)))); err != nil {
		panic(err)
	}
}
