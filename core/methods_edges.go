// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
//
// Determinism:
//   - Edges() returns edges sorted by (U, V) ascending.

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// AddEdge connects u and v, adding missing endpoints first.
// Adding an edge that already exists is a no-op.
//
// Errors:
//   - ErrNegativeNodeID: if u < 0 or v < 0.
//   - ErrLoopNotAllowed: if u == v.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v NodeID) error {
	if u < 0 || v < 0 {
		return errors.Wrapf(ErrNegativeNodeID, "AddEdge(%d,%d)", u, v)
	}
	if u == v {
		return errors.Wrapf(ErrLoopNotAllowed, "AddEdge(%d,%d)", u, v)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureNode(u)
	g.ensureNode(v)
	if _, ok := g.adjacency[u][v]; ok {
		return nil
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.nEdges++

	return nil
}

// RemoveEdge disconnects u and v. Removing an absent edge is a no-op;
// endpoints are never removed.
// Complexity: O(1)
func (g *Graph) RemoveEdge(u, v NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adjacency[u][v]; !ok {
		return
	}
	delete(g.adjacency[u], v)
	delete(g.adjacency[v], u)
	g.nEdges--
}

// HasEdge reports whether {u,v} is an edge of g.
// Complexity: O(1)
func (g *Graph) HasEdge(u, v NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nEdges
}

// Edges returns every edge once, normalised (U < V) and sorted.
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.nEdges)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, Edge{U: u, V: v})
			}
		}
	}
	SortEdges(out)

	return out
}

// MissingEdges returns, sorted, the pairs of nodes in ids that are not
// adjacent in g. Ids absent from g are treated as isolated.
// This is exactly the fill-in that turning ids into a clique would add.
//
// Complexity: O(k^2) for k = len(ids).
func (g *Graph) MissingEdges(ids []NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if _, ok := g.adjacency[ids[i]][ids[j]]; !ok {
				out = append(out, NewEdge(ids[i], ids[j]))
			}
		}
	}
	SortEdges(out)

	return out
}

// SortEdges sorts edges by (U, V) ascending, in place.
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})
}
