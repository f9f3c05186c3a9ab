// This file declares the sentinel errors and construction options shared by
// the core edge model and the AdjacencyList storage.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilEdge indicates a nil edge was passed to AddEdge.
	ErrNilEdge = errors.New("core: edge is nil")

	// ErrFlowExceedsCapacity indicates a FlowEdge construction or mutation
	// that would leave flow greater than capacity.
	ErrFlowExceedsCapacity = errors.New("core: flow exceeds capacity")

	// ErrCapacityBelowFlow indicates a capacity update that would drop the
	// capacity of a FlowEdge below its current flow.
	ErrCapacityBelowFlow = errors.New("core: capacity below current flow")

	// ErrNegativeCapacity indicates a negative capacity for a FlowEdge.
	ErrNegativeCapacity = errors.New("core: capacity is negative")
)

// Option configures an AdjacencyList before first use.
type Option func(*config)

// config holds construction-time flags for AdjacencyList.
type config struct {
	directed bool
}

// WithDirected makes the graph directed: edges are traversable and
// queryable only from SrcID to DstID. The default is undirected.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}
