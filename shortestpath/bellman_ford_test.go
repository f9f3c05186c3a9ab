package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
	"github.com/katalvlaran/grava/shortestpath"
)

func TestBellmanFord_Validation(t *testing.T) {
	_, err := shortestpath.BellmanFord[int, *core.DefaultEdge[int]](nil, 0)
	require.ErrorIs(t, err, shortestpath.ErrGraphNil)

	g := build(t, 1, true, nil)
	_, err = shortestpath.BellmanFord[int, *core.DefaultEdge[int]](g, 3)
	require.ErrorIs(t, err, shortestpath.ErrVertexNotFound)
}

func TestBellmanFord_NegativeEdgeNoCycle(t *testing.T) {
	// The negative arc makes the detour cheaper than the direct arc.
	g := build(t, 3, true, []weightedArc{{0, 1, 4}, {1, 2, -3}, {0, 2, 2}})
	res, err := shortestpath.BellmanFord[int, *core.DefaultEdge[int]](g, 0)
	require.NoError(t, err)
	require.Equal(t, magnitude.Finite(1), res.Dist[2])

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, path)
}

func TestBellmanFord_DetectsNegativeCycle(t *testing.T) {
	// 1→2→3→1 sums to -1.
	g := build(t, 4, true, []weightedArc{{0, 1, 1}, {1, 2, 2}, {2, 3, 1}, {3, 1, -4}})
	_, err := shortestpath.BellmanFord[int, *core.DefaultEdge[int]](g, 0)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestBellmanFord_UnreachableNegativeCycleIsHarmless(t *testing.T) {
	// The negative cycle 2→3→2 cannot be reached from 0, so distances
	// from 0 are still well defined.
	g := build(t, 4, true, []weightedArc{{0, 1, 5}, {2, 3, 1}, {3, 2, -2}})
	res, err := shortestpath.BellmanFord[int, *core.DefaultEdge[int]](g, 0)
	require.NoError(t, err)
	require.Equal(t, magnitude.Finite(5), res.Dist[1])
	require.True(t, res.Dist[2].IsPosInf())
}

func TestBellmanFord_UndirectedNegativeEdgeIsACycle(t *testing.T) {
	// Walking a negative undirected edge back and forth decreases the
	// total without bound.
	g := build(t, 2, false, []weightedArc{{0, 1, -1}})
	_, err := shortestpath.BellmanFord[int, *core.DefaultEdge[int]](g, 0)
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
}

func TestBellmanFord_PosInfEdgeIsNoEdge(t *testing.T) {
	g := build(t, 2, true, nil)
	_, err := g.AddEdge(core.NewDefaultEdge(0, 1, magnitude.PosInf[int]()))
	require.NoError(t, err)

	res, err := shortestpath.BellmanFord[int, *core.DefaultEdge[int]](g, 0)
	require.NoError(t, err)
	require.True(t, res.Dist[1].IsPosInf())
}

func TestBellmanFord_SingleVertex(t *testing.T) {
	g := build(t, 1, true, nil)
	res, err := shortestpath.BellmanFord[int, *core.DefaultEdge[int]](g, 0)
	require.NoError(t, err)
	require.Equal(t, magnitude.Finite(0), res.Dist[0])
	require.Empty(t, res.Prev)
}
