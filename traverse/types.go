// This file declares the color state, options and result types shared
// by BFS and DFS.

package traverse

import (
	"errors"
	"fmt"
)

// Color is the visitation state of a vertex during a traversal.
type Color uint8

const (
	// White marks an unvisited vertex.
	White Color = iota

	// Gray marks a discovered vertex still on the frontier or stack.
	Gray

	// Black marks a fully processed vertex; it is never revisited.
	Black
)

// Sentinel errors shared by the traversal entry points.
var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrVertexNotFound is returned when the root vertex id is absent.
	ErrVertexNotFound = errors.New("traverse: root vertex not found")

	// ErrCycle is returned by TopologicalSort when the graph is cyclic.
	ErrCycle = errors.New("traverse: cycle detected")

	// ErrUndirectedGraph is returned by TopologicalSort for undirected input.
	ErrUndirectedGraph = errors.New("traverse: directed graph required")
)

// Option configures a traversal via functional arguments.
type Option func(*Options)

// Options holds the listener hooks and switches shared by BFS and DFS.
// All hooks are optional and invoked synchronously.
type Options struct {
	// OnDiscover is called when a vertex turns Gray (first seen).
	// Returning an error aborts the traversal with that error.
	OnDiscover func(id int) error

	// OnFinish is called when a vertex turns Black (fully processed).
	// Returning an error aborts the traversal with that error.
	OnFinish func(id int) error

	// OnEdge is called for every edge examined, including edges to
	// already-visited vertices.
	OnEdge func(srcID, dstID, edgeID int)

	// FilterNeighbor skips the edge curr→next when it returns false.
	FilterNeighbor func(curr, next int) bool

	// FullTraversal restarts from every unvisited vertex in ascending id
	// order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with no hooks, no filtering and
// single-root traversal.
func DefaultOptions() Options {
	return Options{}
}

// WithOnDiscover installs fn as the discovery hook.
func WithOnDiscover(fn func(id int) error) Option {
	return func(o *Options) { o.OnDiscover = fn }
}

// WithOnFinish installs fn as the finish hook.
func WithOnFinish(fn func(id int) error) Option {
	return func(o *Options) { o.OnFinish = fn }
}

// WithOnEdge installs fn as the edge-examination hook.
func WithOnEdge(fn func(srcID, dstID, edgeID int)) Option {
	return func(o *Options) { o.OnEdge = fn }
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(curr, next int) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal over disconnected graphs.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// BFSResult captures the outcome of a breadth-first traversal.
type BFSResult struct {
	// Order records vertices in visit (dequeue) sequence.
	Order []int

	// Depth maps each visited vertex to its distance in edges from its root.
	Depth map[int]int

	// Parent maps each visited vertex to its predecessor in the BFS tree.
	// Roots do not appear as keys.
	Parent map[int]int

	// Roots lists the tree roots in discovery order (one entry unless
	// FullTraversal was set).
	Roots []int
}

// PathTo reconstructs the root-to-dest path along Parent links.
// It fails if dest was not reached.
func (r *BFSResult) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traverse: no path to %d", dest)
	}

	return walkParents(r.Parent, dest), nil
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records vertices in finish (post-order) sequence.
	Order []int

	// Discover and Finish map each visited vertex to its timestamps; the
	// counter increments on every discovery and every finish, so the
	// [Discover, Finish] intervals of any two vertices either nest or are
	// disjoint.
	Discover map[int]int
	Finish   map[int]int

	// Parent maps each visited vertex to its predecessor in the DFS tree.
	Parent map[int]int

	// Roots lists the tree roots in discovery order.
	Roots []int
}

// walkParents rebuilds the path to dest by following parent links, then
// reverses it into root→dest order.
func walkParents(parent map[int]int, dest int) []int {
	path := []int{dest}
	for cur := dest; ; {
		p, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
