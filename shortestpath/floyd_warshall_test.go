package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/gen"
	"github.com/katalvlaran/grava/magnitude"
	"github.com/katalvlaran/grava/shortestpath"
)

func TestFloydWarshall_NilGraph(t *testing.T) {
	_, err := shortestpath.FloydWarshall[int, *core.DefaultEdge[int]](nil)
	require.ErrorIs(t, err, shortestpath.ErrGraphNil)
}

func TestFloydWarshall_Fixture(t *testing.T) {
	g := build(t, 4, true, []weightedArc{
		{0, 1, 5}, {1, 2, 3}, {2, 3, 1}, {0, 3, 10},
	})
	m, err := shortestpath.FloydWarshall[int, *core.DefaultEdge[int]](g)
	require.NoError(t, err)

	d, ok := m.Distance(0, 3)
	require.True(t, ok)
	require.Equal(t, magnitude.Finite(9), d, "the three-hop route beats the direct arc")

	d, ok = m.Distance(3, 0)
	require.True(t, ok)
	require.True(t, d.IsPosInf(), "no arcs lead back to 0")

	if _, ok := m.Distance(0, 99); ok {
		t.Fatal("unknown vertex should report ok=false")
	}

	path, ok := m.PathBetween(0, 3)
	require.True(t, ok)
	require.Equal(t, []int{0, 1, 2, 3}, path)

	if _, ok := m.PathBetween(3, 0); ok {
		t.Fatal("no path should be reported against the arcs")
	}
}

func TestFloydWarshall_UndirectedSymmetryAndTriangle(t *testing.T) {
	g, err := gen.Wheel[int](6)
	require.NoError(t, err)
	m, err := shortestpath.FloydWarshall[int, *core.DefaultEdge[int]](g)
	require.NoError(t, err)

	ids := m.Vertices()
	for _, i := range ids {
		for _, j := range ids {
			dij, _ := m.Distance(i, j)
			dji, _ := m.Distance(j, i)
			if !dij.Equal(dji) {
				t.Fatalf("asymmetric distances on an undirected graph: d(%d,%d)=%s d(%d,%d)=%s",
					i, j, dij, j, i, dji)
			}
			for _, k := range ids {
				dik, _ := m.Distance(i, k)
				dkj, _ := m.Distance(k, j)
				through, addErr := dik.Add(dkj)
				if addErr != nil {
					continue
				}
				if through.Less(dij) {
					t.Fatalf("triangle inequality violated: d(%d,%d)=%s > %s via %d", i, j, dij, through, k)
				}
			}
		}
	}
}

func TestFloydWarshall_SelfDistanceIsZero(t *testing.T) {
	g := gen.Complete[int](4)
	m, err := shortestpath.FloydWarshall[int, *core.DefaultEdge[int]](g)
	require.NoError(t, err)
	for _, v := range m.Vertices() {
		d, ok := m.Distance(v, v)
		require.True(t, ok)
		require.Equal(t, magnitude.Finite(0), d)
	}
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	g := build(t, 3, true, []weightedArc{{0, 1, 1}, {1, 2, -3}, {2, 0, 1}})
	_, err := shortestpath.FloydWarshall[int, *core.DefaultEdge[int]](g)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestFloydWarshall_NegativeEdgeWithoutCycle(t *testing.T) {
	g := build(t, 3, true, []weightedArc{{0, 1, 4}, {1, 2, -2}})
	m, err := shortestpath.FloydWarshall[int, *core.DefaultEdge[int]](g)
	require.NoError(t, err)
	d, ok := m.Distance(0, 2)
	require.True(t, ok)
	require.Equal(t, magnitude.Finite(2), d)
}
