// This file declares the Edge capability interface and the plain weighted
// DefaultEdge variant.

package core

import "github.com/katalvlaran/grava/magnitude"

// Edge is the capability contract every edge variant implements.
//
// The edge id is assigned by the owning graph when the edge is added, not
// by the edge itself; until then ID reports the zero id. Endpoint ids are
// fixed at construction; only the weight (and, for variants that carry
// them, flow and capacity) is mutable.
type Edge[W magnitude.Number] interface {
	// ID returns the id assigned by the owning graph.
	ID() int

	// SetID records the id assigned by the owning graph. Callers other
	// than a graph implementation should not invoke it.
	SetID(id int)

	// SrcID returns the source vertex id, fixed at construction.
	SrcID() int

	// DstID returns the destination vertex id, fixed at construction.
	DstID() int

	// Weight returns the weight of the edge.
	Weight() magnitude.Magnitude[W]

	// SetWeight replaces the weight of the edge.
	SetWeight(w magnitude.Magnitude[W])
}

// DefaultEdge is an edge carrying only a weight.
type DefaultEdge[W magnitude.Number] struct {
	id     int
	srcID  int
	dstID  int
	weight magnitude.Magnitude[W]
}

// NewDefaultEdge constructs an edge from srcID to dstID with the given
// weight. The triple converts unconditionally; there is nothing to reject.
func NewDefaultEdge[W magnitude.Number](srcID, dstID int, weight magnitude.Magnitude[W]) *DefaultEdge[W] {
	return &DefaultEdge[W]{srcID: srcID, dstID: dstID, weight: weight}
}

// ID returns the id assigned by the owning graph.
func (e *DefaultEdge[W]) ID() int { return e.id }

// SetID records the id assigned by the owning graph.
func (e *DefaultEdge[W]) SetID(id int) { e.id = id }

// SrcID returns the source vertex id.
func (e *DefaultEdge[W]) SrcID() int { return e.srcID }

// DstID returns the destination vertex id.
func (e *DefaultEdge[W]) DstID() int { return e.dstID }

// Weight returns the weight of the edge.
func (e *DefaultEdge[W]) Weight() magnitude.Magnitude[W] { return e.weight }

// SetWeight replaces the weight of the edge.
func (e *DefaultEdge[W]) SetWeight(w magnitude.Magnitude[W]) { e.weight = w }
