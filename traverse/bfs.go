package traverse

import (
	"fmt"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
	"github.com/katalvlaran/grava/subgraph"
)

// BFS runs breadth-first search on g starting from rootID.
//
// Vertices are processed in strict first-discovered-first-expanded order;
// every vertex reachable from the root is visited exactly once. With
// WithFullTraversal, the search restarts from every remaining unvisited
// vertex in ascending id order after the root's tree is exhausted.
//
// Returns ErrGraphNil for a nil graph, ErrVertexNotFound for a missing
// root, or any error produced by the OnDiscover/OnFinish hooks.
func BFS[W magnitude.Number, E core.Edge[W]](
	g core.Graph[W, E],
	rootID int,
	opts ...Option,
) (*BFSResult, error) {
	w, err := newBFSWalker(g, rootID, opts)
	if err != nil {
		return nil, err
	}
	if err = w.runAll(rootID); err != nil {
		return nil, err
	}

	return w.res, nil
}

// BFSForest runs BFS over the whole vertex set in ascending id order and
// returns the spanning forest as a MultiRootSubgraph, one root per
// connected region reached.
func BFSForest[W magnitude.Number, E core.Edge[W]](
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
	w, err := newBFSWalker(g, vertices[0], opts)
	if err != nil {
		return nil, err
	}
	if err = w.runAll(vertices[0]); err != nil {
		return nil, err
	}

	return subgraph.NewMultiRoot(g, w.arcs, w.res.Order, w.res.Roots), nil
}

// bfsItem pairs a queued vertex with its depth.
type bfsItem struct {
	id    int
	depth int
}

// bfsWalker encapsulates mutable BFS state for one invocation.
type bfsWalker[W magnitude.Number, E core.Edge[W]] struct {
	g     core.Graph[W, E]
	opts  Options
	color map[int]Color
	queue []bfsItem
	arcs  []core.Arc[W, E]
	res   *BFSResult
}

// newBFSWalker validates inputs, applies options and allocates state.
func newBFSWalker[W magnitude.Number, E core.Edge[W]](
	g core.Graph[W, E],
	rootID int,
	opts []Option,
) (*bfsWalker[W, E], error) {
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

	return &bfsWalker[W, E]{
		g:     g,
		opts:  o,
		color: make(map[int]Color, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}, nil
}

// runAll searches from rootID, then from every remaining White vertex in
// ascending id order when FullTraversal is set.
func (w *bfsWalker[W, E]) runAll(rootID int) error {
	if err := w.runTree(rootID); err != nil {
		return err
	}
	if !w.opts.FullTraversal {
		return nil
	}
	for _, v := range w.g.Vertices() {
		if w.color[v] == White {
			if err := w.runTree(v); err != nil {
				return err
			}
		}
	}

	return nil
}

// runTree drains one BFS tree rooted at rootID.
func (w *bfsWalker[W, E]) runTree(rootID int) error {
	w.res.Roots = append(w.res.Roots, rootID)
	if err := w.discover(rootID, 0); err != nil {
		return err
	}
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		if err := w.expand(item); err != nil {
			return err
		}

		w.color[item.id] = Black
		if w.opts.OnFinish != nil {
			if err := w.opts.OnFinish(item.id); err != nil {
				return fmt.Errorf("traverse: OnFinish hook for %d: %w", item.id, err)
			}
		}
	}

	return nil
}

// discover turns id Gray, records depth and fires OnDiscover.
func (w *bfsWalker[W, E]) discover(id, depth int) error {
	w.color[id] = Gray
	w.res.Depth[id] = depth
	if w.opts.OnDiscover != nil {
		if err := w.opts.OnDiscover(id); err != nil {
			return fmt.Errorf("traverse: OnDiscover hook for %d: %w", id, err)
		}
	}
	w.queue = append(w.queue, bfsItem{id: id, depth: depth})

	return nil
}

// expand examines every edge out of item and enqueues unseen neighbors.
func (w *bfsWalker[W, E]) expand(item bfsItem) error {
	for _, adj := range w.g.EdgesFrom(item.id) {
		if w.opts.OnEdge != nil {
			w.opts.OnEdge(item.id, adj.DstID, adj.Edge.ID())
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(item.id, adj.DstID) {
			continue
		}
		if w.color[adj.DstID] != White {
			continue
		}
		w.res.Parent[adj.DstID] = item.id
		w.arcs = append(w.arcs, core.Arc[W, E]{SrcID: item.id, DstID: adj.DstID, Edge: adj.Edge})
		if err := w.discover(adj.DstID, item.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// hasVertex scans the vertex set for id; capability interfaces expose no
// direct membership query.
func hasVertex(g core.Vertices, id int) bool {
	for _, v := range g.Vertices() {
		if v == id {
			return true
		}
	}

	return false
}
