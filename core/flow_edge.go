// This file declares the FlowEdge variant: weight plus capacity and flow
// with the invariant flow ≤ capacity.

package core

import (
	"fmt"

	"github.com/katalvlaran/grava/magnitude"
)

// FlowEdge is an edge carrying weight, a non-negative capacity and a
// current (possibly negative) flow, suitable for flow computations.
//
// Invariant, checked at construction and on every mutation:
//
//	flow ≤ capacity
//
// A violating construction or mutation is rejected with a descriptive
// error and leaves prior state unchanged; nothing is ever clamped.
type FlowEdge[W magnitude.Number] struct {
	id       int
	srcID    int
	dstID    int
	weight   magnitude.Magnitude[W]
	capacity int
	flow     int
}

// NewFlowEdge constructs a flow edge with capacity 0 and flow 0.
// The triple converts unconditionally, mirroring NewDefaultEdge.
func NewFlowEdge[W magnitude.Number](srcID, dstID int, weight magnitude.Magnitude[W]) *FlowEdge[W] {
	return &FlowEdge[W]{srcID: srcID, dstID: dstID, weight: weight}
}

// NewFlowEdgeWith constructs a flow edge with the given capacity and flow.
// It rejects negative capacities and any flow greater than capacity; the
// error message carries the offending values (e.g. "4 > 3").
func NewFlowEdgeWith[W magnitude.Number](
	srcID, dstID int,
	weight magnitude.Magnitude[W],
	capacity, flow int,
) (*FlowEdge[W], error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	if flow > capacity {
		return nil, fmt.Errorf("%w: %d > %d", ErrFlowExceedsCapacity, flow, capacity)
	}

	return &FlowEdge[W]{srcID: srcID, dstID: dstID, weight: weight, capacity: capacity, flow: flow}, nil
}

// MustFlowEdgeWith is NewFlowEdgeWith that panics on an invariant
// violation, for call sites where the inputs are known valid.
func MustFlowEdgeWith[W magnitude.Number](
	srcID, dstID int,
	weight magnitude.Magnitude[W],
	capacity, flow int,
) *FlowEdge[W] {
	e, err := NewFlowEdgeWith(srcID, dstID, weight, capacity, flow)
	if err != nil {
		panic(err)
	}

	return e
}

// ID returns the id assigned by the owning graph.
func (e *FlowEdge[W]) ID() int { return e.id }

// SetID records the id assigned by the owning graph.
func (e *FlowEdge[W]) SetID(id int) { e.id = id }

// SrcID returns the source vertex id.
func (e *FlowEdge[W]) SrcID() int { return e.srcID }

// DstID returns the destination vertex id.
func (e *FlowEdge[W]) DstID() int { return e.dstID }

// Weight returns the weight of the edge.
func (e *FlowEdge[W]) Weight() magnitude.Magnitude[W] { return e.weight }

// SetWeight replaces the weight of the edge.
func (e *FlowEdge[W]) SetWeight(w magnitude.Magnitude[W]) { e.weight = w }

// Capacity returns the capacity of the edge.
func (e *FlowEdge[W]) Capacity() int { return e.capacity }

// Flow returns the current flow of the edge.
func (e *FlowEdge[W]) Flow() int { return e.flow }

// SetFlow updates the flow. It fails with ErrFlowExceedsCapacity when
// flow would exceed the current capacity, leaving the edge unchanged.
func (e *FlowEdge[W]) SetFlow(flow int) error {
	if flow > e.capacity {
		return fmt.Errorf("%w: %d > %d", ErrFlowExceedsCapacity, flow, e.capacity)
	}
	e.flow = flow

	return nil
}

// SetCapacity updates the capacity. It fails with ErrCapacityBelowFlow
// when capacity would drop below the current flow, leaving the edge
// unchanged.
func (e *FlowEdge[W]) SetCapacity(capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}
	if capacity < e.flow {
		return fmt.Errorf("%w: %d < %d", ErrCapacityBelowFlow, capacity, e.flow)
	}
	e.capacity = capacity

	return nil
}

// Residual returns the unused capacity, capacity - flow.
func (e *FlowEdge[W]) Residual() int { return e.capacity - e.flow }
