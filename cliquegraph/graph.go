// SPDX-License-Identifier: MIT
// File: graph.go
// Role: clique graph storage, mutation and enumeration.

package cliquegraph

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
)

var (
	// ErrCliqueNotFound is returned for an unknown clique ID.
	ErrCliqueNotFound = errors.New("cliquegraph: clique not found")

	// ErrEdgeNotFound is returned for an absent clique edge.
	ErrEdgeNotFound = errors.New("cliquegraph: edge not found")

	// ErrRunningIntersection reports a violated running-intersection property.
	ErrRunningIntersection = errors.New("cliquegraph: running intersection violated")
)

// Graph is an undirected graph of cliques. The zero value is not usable;
// call New.
type Graph struct {
	members map[core.NodeID][]core.NodeID
	adj     map[core.NodeID]map[core.NodeID]struct{}
	nEdges  int
}

// New returns an empty clique graph.
func New() *Graph {
	return &Graph{
		members: make(map[core.NodeID][]core.NodeID),
		adj:     make(map[core.NodeID]map[core.NodeID]struct{}),
	}
}

// AddClique inserts clique id with the given members, or replaces the
// members of an existing clique. Members are copied, sorted and deduplicated.
func (g *Graph) AddClique(id core.NodeID, members []core.NodeID) {
	m := append([]core.NodeID(nil), members...)
	core.SortNodeIDs(m)
	out := m[:0]
	for i, n := range m {
		if i == 0 || n != m[i-1] {
			out = append(out, n)
		}
	}
	g.members[id] = out
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[core.NodeID]struct{})
	}
}

// RemoveClique deletes id and its edges; absent ids are a no-op.
func (g *Graph) RemoveClique(id core.NodeID) {
	nbrs, ok := g.adj[id]
	if !ok {
		return
	}
	for nb := range nbrs {
		delete(g.adj[nb], id)
		g.nEdges--
	}
	delete(g.adj, id)
	delete(g.members, id)
}

// HasClique reports whether id is a clique of g.
func (g *Graph) HasClique(id core.NodeID) bool {
	_, ok := g.members[id]

	return ok
}

// Clique returns a copy of the members of id.
func (g *Graph) Clique(id core.NodeID) ([]core.NodeID, error) {
	m, ok := g.members[id]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrCliqueNotFound, "Clique(%d)", id)
	}

	return append([]core.NodeID(nil), m...), nil
}

// Size returns the number of members of id, or 0 if absent.
func (g *Graph) Size(id core.NodeID) int { return len(g.members[id]) }

// Contains reports whether node n is a member of clique id.
func (g *Graph) Contains(id, n core.NodeID) bool {
	m := g.members[id]
	lo, hi := 0, len(m)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case m[mid] == n:
			return true
		case m[mid] < n:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return false
}

// AddEdge connects cliques a and b; an existing edge is a no-op.
//
// Errors:
//   - ErrCliqueNotFound: a or b is unknown.
//   - core.ErrLoopNotAllowed: a == b.
func (g *Graph) AddEdge(a, b core.NodeID) error {
	if !g.HasClique(a) || !g.HasClique(b) {
		return pkgerrors.Wrapf(ErrCliqueNotFound, "AddEdge(%d,%d)", a, b)
	}
	if a == b {
		return pkgerrors.Wrapf(core.ErrLoopNotAllowed, "AddEdge(%d,%d)", a, b)
	}
	if _, ok := g.adj[a][b]; ok {
		return nil
	}
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
	g.nEdges++

	return nil
}

// RemoveEdge disconnects a and b.
//
// Errors:
//   - ErrEdgeNotFound: the edge is absent.
func (g *Graph) RemoveEdge(a, b core.NodeID) error {
	if !g.HasEdge(a, b) {
		return pkgerrors.Wrapf(ErrEdgeNotFound, "RemoveEdge(%d,%d)", a, b)
	}
	delete(g.adj[a], b)
	delete(g.adj[b], a)
	g.nEdges--

	return nil
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b core.NodeID) bool {
	_, ok := g.adj[a][b]

	return ok
}

// Neighbors returns the cliques adjacent to id, sorted.
func (g *Graph) Neighbors(id core.NodeID) ([]core.NodeID, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, pkgerrors.Wrapf(ErrCliqueNotFound, "Neighbors(%d)", id)
	}
	out := make([]core.NodeID, 0, len(nbrs))
	for nb := range nbrs {
		out = append(out, nb)
	}
	core.SortNodeIDs(out)

	return out, nil
}

// Cliques returns every clique ID, sorted.
func (g *Graph) Cliques() []core.NodeID {
	out := make([]core.NodeID, 0, len(g.members))
	for id := range g.members {
		out = append(out, id)
	}
	core.SortNodeIDs(out)

	return out
}

// CliqueCount returns the number of cliques.
func (g *Graph) CliqueCount() int { return len(g.members) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return g.nEdges }

// Edges returns every edge once, as normalised core.Edge pairs of clique
// IDs, sorted.
func (g *Graph) Edges() []core.Edge {
	out := make([]core.Edge, 0, g.nEdges)
	for a, nbrs := range g.adj {
		for b := range nbrs {
			if a < b {
				out = append(out, core.Edge{U: a, V: b})
			}
		}
	}
	core.SortEdges(out)

	return out
}

// Separator returns the sorted intersection of the two cliques of edge a-b.
//
// Errors:
//   - ErrEdgeNotFound: a and b are not adjacent.
func (g *Graph) Separator(a, b core.NodeID) ([]core.NodeID, error) {
	if !g.HasEdge(a, b) {
		return nil, pkgerrors.Wrapf(ErrEdgeNotFound, "Separator(%d,%d)", a, b)
	}
	var out []core.NodeID
	for _, n := range g.members[a] {
		if g.Contains(b, n) {
			out = append(out, n)
		}
	}

	return out, nil
}

// ContainingCliques returns, sorted, the cliques having n as a member.
func (g *Graph) ContainingCliques(n core.NodeID) []core.NodeID {
	var out []core.NodeID
	for _, id := range g.Cliques() {
		if g.Contains(id, n) {
			out = append(out, id)
		}
	}

	return out
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	c := New()
	for id, m := range g.members {
		c.members[id] = append([]core.NodeID(nil), m...)
		nb := make(map[core.NodeID]struct{}, len(g.adj[id]))
		for x := range g.adj[id] {
			nb[x] = struct{}{}
		}
		c.adj[id] = nb
	}
	c.nEdges = g.nEdges

	return c
}
