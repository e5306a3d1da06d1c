// SPDX-License-Identifier: MIT
// File: spanning.go
// Role: junction tree as a maximum-separator spanning forest of maximal cliques.

package junctiontree

import (
	"github.com/katalvlaran/lvjunction/cliquegraph"
	"github.com/katalvlaran/lvjunction/core"
)

// spanning keeps the maximal cliques of the elimination tree, links them
// with cliquegraph.MaxSeparatorForest and maps each node to the lowest-id
// maximal clique containing the clique its elimination created.
func spanning(tree *cliquegraph.Graph, order []core.NodeID) (*cliquegraph.Graph, map[core.NodeID]core.NodeID) {
	jt := cliquegraph.MaxSeparatorForest(cliquegraph.MaximalOnly(tree))
	maximal := jt.Cliques()

	created := make(map[core.NodeID]core.NodeID, len(order))
	for _, n := range order {
		if jt.HasClique(n) {
			created[n] = n
			continue
		}
		members, _ := tree.Clique(n)
		for _, id := range maximal {
			if containsAll(jt, id, members) {
				created[n] = id
				break
			}
		}
	}

	return jt, created
}

func containsAll(g *cliquegraph.Graph, id core.NodeID, members []core.NodeID) bool {
	for _, m := range members {
		if !g.Contains(id, m) {
			return false
		}
	}

	return true
}
