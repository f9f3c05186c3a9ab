package traverse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/gen"
	"github.com/katalvlaran/grava/magnitude"
	"github.com/katalvlaran/grava/traverse"
)

func TestFindCycle_AcyclicCases(t *testing.T) {
	if _, found := traverse.FindCycle[int, *core.DefaultEdge[int]](nil); found {
		t.Fatal("nil graph should be acyclic")
	}
	if _, found := traverse.FindCycle[int, *core.DefaultEdge[int]](gen.Path[int](5)); found {
		t.Fatal("path should be acyclic")
	}
	// A single undirected edge is not a cycle: the arrival edge must not
	// be walked back over.
	if _, found := traverse.FindCycle[int, *core.DefaultEdge[int]](gen.Path[int](2)); found {
		t.Fatal("single undirected edge should be acyclic")
	}

	g := directed(t, 3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	if _, found := traverse.FindCycle[int, *core.DefaultEdge[int]](g); found {
		t.Fatal("DAG should be acyclic")
	}
}

func TestFindCycle_UndirectedCycle(t *testing.T) {
	g, err := gen.Cycle[int](4)
	require.NoError(t, err)

	cycle, found := traverse.FindCycle[int, *core.DefaultEdge[int]](g)
	require.True(t, found)
	require.Equal(t, cycle[0], cycle[len(cycle)-1], "cycle must close on its first vertex")
	require.Len(t, cycle, 5)
}

func TestFindCycle_ParallelEdgesFormTwoCycle(t *testing.T) {
	g := gen.Empty[int](2)
	for i := 0; i < 2; i++ {
		_, err := g.AddEdge(core.NewDefaultEdge(0, 1, magnitude.Finite(1)))
		require.NoError(t, err)
	}

	cycle, found := traverse.FindCycle[int, *core.DefaultEdge[int]](g)
	require.True(t, found, "two parallel undirected edges form a cycle")
	require.Equal(t, []int{0, 1, 0}, cycle)
}

func TestFindCycle_SelfLoop(t *testing.T) {
	g := gen.Empty[int](1)
	_, err := g.AddEdge(core.NewDefaultEdge(0, 0, magnitude.Finite(1)))
	require.NoError(t, err)

	require.True(t, traverse.HasCycle[int, *core.DefaultEdge[int]](g))
}

func TestFindCycle_DirectedBackEdge(t *testing.T) {
	g := directed(t, 3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	cycle, found := traverse.FindCycle[int, *core.DefaultEdge[int]](g)
	require.True(t, found)
	require.Equal(t, []int{0, 1, 2, 0}, cycle)
}

func TestFindCycle_DirectedTwoArcsOppositeWays(t *testing.T) {
	// 0→1 and 1→0 are distinct directed edges and do form a cycle.
	g := directed(t, 2, [][2]int{{0, 1}, {1, 0}})
	require.True(t, traverse.HasCycle[int, *core.DefaultEdge[int]](g))
}
