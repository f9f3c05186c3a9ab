package traverse

import (
	"fmt"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
	"github.com/katalvlaran/grava/subgraph"
)

// DFS runs depth-first search on g starting from rootID, exploring one
// branch to exhaustion before backtracking.
//
// Discovery and finish timestamps are recorded from a single counter, so
// the [Discover, Finish] intervals of any two visited vertices either
// nest or are disjoint. With WithFullTraversal, the search restarts from
// every remaining unvisited vertex in ascending id order.
//
// Returns ErrGraphNil for a nil graph, ErrVertexNotFound for a missing
// root, or any error produced by the OnDiscover/OnFinish hooks.
func DFS[W magnitude.Number, E core.Edge[W]](
	g core.Graph[W, E],
	rootID int,
	opts ...Option,
) (*DFSResult, error) {
	w, err := newDFSWalker(g, rootID, opts)
	if err != nil {
		return nil, err
	}
	if err = w.runAll(rootID); err != nil {
		return nil, err
	}

	return w.res, nil
}

// DFSForest runs DFS over the whole vertex set in ascending id order and
// returns the spanning forest as a MultiRootSubgraph.
func DFSForest[W magnitude.Number, E core.Edge[W]](
	g core.Graph[W, E],
	opts ...Option,
) (*subgraph.MultiRootSubgraph[W, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return subgraph.NewMultiRoot(g, nil, nil, nil), nil
	}
	opts = append(opts, WithFullTraversal())
	w, err := newDFSWalker(g, vertices[0], opts)
	if err != nil {
		return nil, err
	}
	if err = w.runAll(vertices[0]); err != nil {
		return nil, err
	}
	visited := make([]int, 0, len(w.res.Discover))
	for _, v := range vertices {
		if w.color[v] == Black {
			visited = append(visited, v)
		}
	}

	return subgraph.NewMultiRoot(g, w.arcs, visited, w.res.Roots), nil
}

// dfsWalker encapsulates mutable DFS state for one invocation.
type dfsWalker[W magnitude.Number, E core.Edge[W]] struct {
	g     core.Graph[W, E]
	opts  Options
	color map[int]Color
	clock int
	arcs  []core.Arc[W, E]
	res   *DFSResult
}

// newDFSWalker validates inputs, applies options and allocates state.
func newDFSWalker[W magnitude.Number, E core.Edge[W]](
	g core.Graph[W, E],
	rootID int,
	opts []Option,
) (*dfsWalker[W, E], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !hasVertex(g, rootID) {
		return nil, ErrVertexNotFound
	}
	n := g.VertexCount()

	return &dfsWalker[W, E]{
		g:     g,
		opts:  o,
		color: make(map[int]Color, n),
		res: &DFSResult{
			Order:    make([]int, 0, n),
			Discover: make(map[int]int, n),
			Finish:   make(map[int]int, n),
			Parent:   make(map[int]int, n),
		},
	}, nil
}

// runAll searches from rootID, then from every remaining White vertex in
// ascending id order when FullTraversal is set.
func (w *dfsWalker[W, E]) runAll(rootID int) error {
	w.res.Roots = append(w.res.Roots, rootID)
	if err := w.visit(rootID); err != nil {
		return err
	}
	if !w.opts.FullTraversal {
		return nil
	}
	for _, v := range w.g.Vertices() {
		if w.color[v] == White {
			w.res.Roots = append(w.res.Roots, v)
			if err := w.visit(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit explores id and its descendants recursively.
func (w *dfsWalker[W, E]) visit(id int) error {
	w.color[id] = Gray
	w.res.Discover[id] = w.clock
	w.clock++
	if w.opts.OnDiscover != nil {
		if err := w.opts.OnDiscover(id); err != nil {
			return fmt.Errorf("traverse: OnDiscover hook for %d: %w", id, err)
		}
	}

	for _, adj := range w.g.EdgesFrom(id) {
		if w.opts.OnEdge != nil {
			w.opts.OnEdge(id, adj.DstID, adj.Edge.ID())
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, adj.DstID) {
			continue
		}
		if w.color[adj.DstID] != White {
			continue
		}
		w.res.Parent[adj.DstID] = id
		w.arcs = append(w.arcs, core.Arc[W, E]{SrcID: id, DstID: adj.DstID, Edge: adj.Edge})
		if err := w.visit(adj.DstID); err != nil {
			return err
		}
	}

	w.color[id] = Black
	w.res.Finish[id] = w.clock
	w.clock++
	w.res.Order = append(w.res.Order, id)
	if w.opts.OnFinish != nil {
		if err := w.opts.OnFinish(id); err != nil {
			return fmt.Errorf("traverse: OnFinish hook for %d: %w", id, err)
		}
	}

	return nil
}
