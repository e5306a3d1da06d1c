// File: edgeset.go
// Role: unordered edge sets with sorted extraction.

package core

// EdgeSet is an unordered set of edges. The zero value is not usable;
// build one with NewEdgeSet.
type EdgeSet map[Edge]struct{}

// NewEdgeSet returns a set holding edges (normalised).
func NewEdgeSet(edges ...Edge) EdgeSet {
	s := make(EdgeSet, len(edges))
	for _, e := range edges {
		s.Add(e)
	}

	return s
}

// Add inserts {e.U,e.V}; it reports whether the edge was new.
func (s EdgeSet) Add(e Edge) bool {
	e = NewEdge(e.U, e.V)
	if _, ok := s[e]; ok {
		return false
	}
	s[e] = struct{}{}

	return true
}

// Has reports membership of {u,v}.
func (s EdgeSet) Has(u, v NodeID) bool {
	_, ok := s[NewEdge(u, v)]

	return ok
}

// Sorted returns the edges sorted by (U, V).
func (s EdgeSet) Sorted() []Edge {
	out := make([]Edge, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	SortEdges(out)

	return out
}

// Clone returns an independent copy of s.
func (s EdgeSet) Clone() EdgeSet {
	out := make(EdgeSet, len(s))
	for e := range s {
		out[e] = struct{}{}
	}

	return out
}
