// SPDX-License-Identifier: MIT
// File: spanning.go
// Role: maximum-separator spanning forest over a clique set (Kruskal).

package cliquegraph

import (
	"sort"

	"github.com/katalvlaran/lvjunction/core"
)

// MaxSeparatorForest links the cliques of g (its edges are ignored) into a
// spanning forest maximising the total separator size. Only pairs with a
// non-empty separator are candidates, so cliques sharing no node stay in
// different trees. When the cliques are the maximal cliques of a chordal
// graph the result is a junction tree.
//
// Steps:
//  1. Collect every clique pair with a non-empty separator, weighted by its size.
//  2. Sort by decreasing weight, ties by (U, V), for determinism.
//  3. Union-find with path compression and union by rank; keep each pair
//     joining two different trees.
//
// Complexity: O(C²·k + P log P) for C cliques of size k and P candidate pairs.
func MaxSeparatorForest(g *Graph) *Graph {
	ids := g.Cliques()
	out := New()
	for _, id := range ids {
		out.AddClique(id, g.members[id])
	}

	type candidate struct {
		e      core.Edge
		weight int
	}
	var pairs []candidate
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			w := 0
			for _, n := range g.members[ids[i]] {
				if g.Contains(ids[j], n) {
					w++
				}
			}
			if w > 0 {
				pairs = append(pairs, candidate{e: core.Edge{U: ids[i], V: ids[j]}, weight: w})
			}
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].weight > pairs[b].weight })

	parent := make(map[core.NodeID]core.NodeID, len(ids))
	rank := make(map[core.NodeID]int, len(ids))
	for _, id := range ids {
		parent[id] = id
	}
	find := func(u core.NodeID) core.NodeID {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	union := func(u, v core.NodeID) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
		return true
	}

	for _, p := range pairs {
		if len(ids) > 0 && out.EdgeCount() == len(ids)-1 {
			break
		}
		if union(p.e.U, p.e.V) {
			_ = out.AddEdge(p.e.U, p.e.V)
		}
	}

	return out
}

// MaximalOnly returns a copy of g without the cliques strictly contained in
// another clique, and without edges.
func MaximalOnly(g *Graph) *Graph {
	ids := g.Cliques()
	out := New()
	for _, a := range ids {
		subsumed := false
		for _, b := range ids {
			if a == b || g.Size(b) < g.Size(a) {
				continue
			}
			if g.Size(b) == g.Size(a) && b > a {
				// equal sets: keep the lowest id only
				continue
			}
			if g.subset(a, b) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			out.AddClique(a, g.members[a])
		}
	}

	return out
}

// subset reports whether clique a's members all belong to clique b.
func (g *Graph) subset(a, b core.NodeID) bool {
	for _, n := range g.members[a] {
		if !g.Contains(b, n) {
			return false
		}
	}

	return true
}
