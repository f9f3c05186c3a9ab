// Package traverse_test validates BFS and DFS behavior: visit order,
// depths and timestamps, hooks, filtering and forest traversal.
package traverse_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/gen"
	"github.com/katalvlaran/grava/magnitude"
	"github.com/katalvlaran/grava/traverse"
)

type intGraph = core.AdjacencyList[int, *core.DefaultEdge[int]]

// directed builds a directed graph on n vertices with the given arcs,
// inserted in order so edge ids follow the slice.
func directed(t *testing.T, n int, arcs [][2]int) *intGraph {
	t.Helper()
	g := core.NewAdjacencyList[int, *core.DefaultEdge[int]](core.WithDirected())
	for i := 0; i < n; i++ {
		g.AddVertex()
	}
	for _, a := range arcs {
		if _, err := g.AddEdge(core.NewDefaultEdge(a[0], a[1], magnitude.Finite(1))); err != nil {
			t.Fatalf("AddEdge(%v): %v", a, err)
		}
	}

	return g
}

func TestBFS_NilGraph(t *testing.T) {
	if _, err := traverse.BFS[int, *core.DefaultEdge[int]](nil, 0); !errors.Is(err, traverse.ErrGraphNil) {
		t.Fatalf("want ErrGraphNil, got %v", err)
	}
}

func TestBFS_MissingRoot(t *testing.T) {
	g := gen.Empty[int](2)
	if _, err := traverse.BFS[int, *core.DefaultEdge[int]](g, 7); !errors.Is(err, traverse.ErrVertexNotFound) {
		t.Fatalf("want ErrVertexNotFound, got %v", err)
	}
}

func TestBFS_StarVisitsHubFirst(t *testing.T) {
	g := gen.Star[int](5)
	res, err := traverse.BFS[int, *core.DefaultEdge[int]](g, 0)
	require.NoError(t, err)

	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, res.Order); diff != "" {
		t.Fatalf("Order mismatch (-want +got):\n%s", diff)
	}
	for leaf := 1; leaf < 5; leaf++ {
		require.Equal(t, 1, res.Depth[leaf])
		require.Equal(t, 0, res.Parent[leaf])
	}
}

func TestBFS_DepthsAreMonotonicInVisitOrder(t *testing.T) {
	g, err := gen.CircularLadder[int](4)
	require.NoError(t, err)
	res, err := traverse.BFS[int, *core.DefaultEdge[int]](g, 0)
	require.NoError(t, err)

	require.Len(t, res.Order, g.VertexCount())
	for i := 1; i < len(res.Order); i++ {
		prev, cur := res.Depth[res.Order[i-1]], res.Depth[res.Order[i]]
		if cur < prev {
			t.Fatalf("depth decreased along visit order: %d after %d", cur, prev)
		}
	}
}

func TestBFS_PathTo(t *testing.T) {
	g := gen.Path[int](5)
	res, err := traverse.BFS[int, *core.DefaultEdge[int]](g, 0)
	require.NoError(t, err)

	path, err := res.PathTo(4)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	require.Equal(t, []int{0}, path)
}

func TestBFS_PathToUnreached(t *testing.T) {
	g := gen.Empty[int](2)
	res, err := traverse.BFS[int, *core.DefaultEdge[int]](g, 0)
	require.NoError(t, err)
	if _, err := res.PathTo(1); err == nil {
		t.Fatal("PathTo on an unreached vertex should fail")
	}
}

func TestBFS_DirectedRespectsArcDirection(t *testing.T) {
	g := directed(t, 3, [][2]int{{0, 1}, {1, 2}})
	res, err := traverse.BFS[int, *core.DefaultEdge[int]](g, 2)
	require.NoError(t, err)
	require.Equal(t, []int{2}, res.Order, "nothing is reachable against the arcs")
}

func TestBFS_OnDiscoverAborts(t *testing.T) {
	g := gen.Path[int](4)
	boom := errors.New("stop here")
	_, err := traverse.BFS[int, *core.DefaultEdge[int]](g, 0, traverse.WithOnDiscover(func(id int) error {
		if id == 2 {
			return boom
		}

		return nil
	}))
	require.ErrorIs(t, err, boom)
}

func TestBFS_FilterNeighborPrunes(t *testing.T) {
	g := gen.Star[int](5)
	res, err := traverse.BFS[int, *core.DefaultEdge[int]](g, 0, traverse.WithFilterNeighbor(func(_, next int) bool {
		return next != 3
	}))
	require.NoError(t, err)
	if _, seen := res.Depth[3]; seen {
		t.Fatal("filtered vertex should never be discovered")
	}
	require.Len(t, res.Order, 4)
}

func TestBFS_OnEdgeSeesEveryEdge(t *testing.T) {
	g := gen.Path[int](3)
	var examined int
	_, err := traverse.BFS[int, *core.DefaultEdge[int]](g, 0, traverse.WithOnEdge(func(_, _, _ int) {
		examined++
	}))
	require.NoError(t, err)
	// Each undirected edge is examined once from each endpoint.
	require.Equal(t, 4, examined)
}

func TestBFS_FullTraversalCoversComponents(t *testing.T) {
	// Two disjoint 3-paths: 0-1-2 and 3-4-5.
	g := gen.Empty[int](6)
	for _, p := range [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}} {
		_, err := g.AddEdge(core.NewDefaultEdge(p[0], p[1], magnitude.Finite(1)))
		require.NoError(t, err)
	}

	res, err := traverse.BFS[int, *core.DefaultEdge[int]](g, 0, traverse.WithFullTraversal())
	require.NoError(t, err)
	require.Len(t, res.Order, 6)
	require.Equal(t, []int{0, 3}, res.Roots)
}

func TestBFSForest_DisconnectedGraph(t *testing.T) {
	g := gen.Empty[int](4)
	_, err := g.AddEdge(core.NewDefaultEdge(0, 1, magnitude.Finite(1)))
	require.NoError(t, err)

	forest, err := traverse.BFSForest[int, *core.DefaultEdge[int]](g)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 3}, forest.Roots())
	require.True(t, forest.IsRoot(2))
	require.False(t, forest.IsRoot(1))
	require.Equal(t, 1, forest.EdgeCount(), "one tree arc per non-root vertex reached via an edge")
	require.Equal(t, []int{0, 1, 2, 3}, forest.Vertices())
}
