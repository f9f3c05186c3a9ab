package subgraph

import (
	"sort"

	"github.com/katalvlaran/grava/core"
	"github.com/katalvlaran/grava/magnitude"
)

// AsSubgraph is the read-only capability bundle every view satisfies.
type AsSubgraph[W magnitude.Number, E core.Edge[W]] interface {
	core.Vertices
	core.Neighbors
	core.Edges[W, E]
}

// AsMutSubgraph adds removal operations that affect only the view.
type AsMutSubgraph[W magnitude.Number, E core.Edge[W]] interface {
	AsSubgraph[W, E]

	// RemoveEdge drops the arc with edgeID from the view.
	RemoveEdge(srcID, dstID, edgeID int)

	// RemoveVertex drops the vertex and every arc touching it from the view.
	RemoveVertex(vertexID int)
}

// Subgraph is the default view: a parent reference plus explicit vertex
// ids and (src, dst, edge) arcs. It owns no vertex or edge storage and
// must not outlive the parent graph.
type Subgraph[W magnitude.Number, E core.Edge[W]] struct {
	parent   core.Graph[W, E]
	arcs     []core.Arc[W, E]
	vertices []int
}

// New builds a view over parent containing exactly the given arcs and
// vertex ids. The slices are retained; callers should not mutate them
// afterwards.
func New[W magnitude.Number, E core.Edge[W]](
	parent core.Graph[W, E],
	arcs []core.Arc[W, E],
	vertices []int,
) *Subgraph[W, E] {
	return &Subgraph[W, E]{parent: parent, arcs: arcs, vertices: vertices}
}

// Parent returns the graph this view projects.
func (s *Subgraph[W, E]) Parent() core.Graph[W, E] { return s.parent }

// RemoveEdge drops the arc with edgeID from the view. The parent graph is
// untouched.
func (s *Subgraph[W, E]) RemoveEdge(_, _, edgeID int) {
	kept := s.arcs[:0]
	for _, a := range s.arcs {
		if a.Edge.ID() != edgeID {
			kept = append(kept, a)
		}
	}
	s.arcs = kept
}

// RemoveVertex drops vertexID and every arc touching it from the view.
// The parent graph is untouched.
func (s *Subgraph[W, E]) RemoveVertex(vertexID int) {
	keptArcs := s.arcs[:0]
	for _, a := range s.arcs {
		if a.SrcID != vertexID && a.DstID != vertexID {
			keptArcs = append(keptArcs, a)
		}
	}
	s.arcs = keptArcs

	keptVerts := s.vertices[:0]
	for _, v := range s.vertices {
		if v != vertexID {
			keptVerts = append(keptVerts, v)
		}
	}
	s.vertices = keptVerts
}

// Vertices returns the vertex ids in the view, sorted ascending.
func (s *Subgraph[W, E]) Vertices() []int {
	out := append([]int(nil), s.vertices...)
	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices in the view.
func (s *Subgraph[W, E]) VertexCount() int { return len(s.vertices) }

// Neighbors returns the destination ids of arcs leaving srcID.
func (s *Subgraph[W, E]) Neighbors(srcID int) []int {
	var out []int
	for _, a := range s.arcs {
		if a.SrcID == srcID {
			out = append(out, a.DstID)
		}
	}
	sort.Ints(out)

	return out
}

// EdgesFrom returns (neighbor id, edge) pairs for arcs leaving srcID.
func (s *Subgraph[W, E]) EdgesFrom(srcID int) []core.Adjacent[W, E] {
	var out []core.Adjacent[W, E]
	for _, a := range s.arcs {
		if a.SrcID == srcID {
			out = append(out, core.Adjacent[W, E]{DstID: a.DstID, Edge: a.Edge})
		}
	}

	return out
}

// EdgesBetween returns every arc edge from srcID to dstID.
func (s *Subgraph[W, E]) EdgesBetween(srcID, dstID int) []E {
	var out []E
	for _, a := range s.arcs {
		if a.SrcID == srcID && a.DstID == dstID {
			out = append(out, a.Edge)
		}
	}

	return out
}

// EdgeBetween returns the arc edge with edgeID from srcID to dstID.
func (s *Subgraph[W, E]) EdgeBetween(srcID, dstID, edgeID int) (E, bool) {
	for _, a := range s.arcs {
		if a.SrcID == srcID && a.DstID == dstID && a.Edge.ID() == edgeID {
			return a.Edge, true
		}
	}
	var zero E

	return zero, false
}

// EdgeByID looks an arc edge up by its id.
func (s *Subgraph[W, E]) EdgeByID(edgeID int) (E, bool) {
	for _, a := range s.arcs {
		if a.Edge.ID() == edgeID {
			return a.Edge, true
		}
	}
	var zero E

	return zero, false
}

// HasAnyEdge reports whether the view holds an arc from srcID to dstID.
func (s *Subgraph[W, E]) HasAnyEdge(srcID, dstID int) bool {
	for _, a := range s.arcs {
		if a.SrcID == srcID && a.DstID == dstID {
			return true
		}
	}

	return false
}

// Edges returns the arcs of the view in insertion order.
func (s *Subgraph[W, E]) Edges() []core.Arc[W, E] {
	return append([]core.Arc[W, E](nil), s.arcs...)
}

// AsDirectedEdges materializes the directed view of the arcs: over an
// undirected parent both directions of every arc, over a directed
// parent the arcs as stored.
func (s *Subgraph[W, E]) AsDirectedEdges() []core.Arc[W, E] {
	if s.parent != nil && s.parent.Directed() {
		return s.Edges()
	}
	out := make([]core.Arc[W, E], 0, 2*len(s.arcs))
	for _, a := range s.arcs {
		out = append(out, a)
		if a.SrcID != a.DstID {
			out = append(out, core.Arc[W, E]{SrcID: a.DstID, DstID: a.SrcID, Edge: a.Edge})
		}
	}

	return out
}

// EdgeCount returns the number of arcs in the view.
func (s *Subgraph[W, E]) EdgeCount() int { return len(s.arcs) }

// Interface conformance checks.
var _ AsMutSubgraph[int, *core.DefaultEdge[int]] = (*Subgraph[int, *core.DefaultEdge[int]])(nil)
