// SPDX-License-Identifier: MIT
// File: check.go
// Role: structural checks through gonum: forest test and running intersection.

package cliquegraph

import (
	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/lvjunction/core"
)

// ToGonum copies g into a gonum simple.UndirectedGraph, clique IDs becoming
// node IDs.
func (g *Graph) ToGonum() *simple.UndirectedGraph {
	return g.induced(g.Cliques())
}

// induced builds the gonum subgraph induced by ids.
func (g *Graph) induced(ids []core.NodeID) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	keep := make(map[core.NodeID]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
		ug.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		_, okU := keep[e.U]
		_, okV := keep[e.V]
		if okU && okV {
			ug.SetEdge(ug.NewEdge(simple.Node(e.U), simple.Node(e.V)))
		}
	}

	return ug
}

// IsForest reports whether g has no cycle, i.e. |E| = |V| - #components.
func (g *Graph) IsForest() bool {
	comps := topo.ConnectedComponents(g.ToGonum())

	return g.nEdges == g.CliqueCount()-len(comps)
}

// IsTree reports whether g is a connected forest. The empty graph is not
// a tree.
func (g *Graph) IsTree() bool {
	return g.CliqueCount() > 0 && g.IsForest() && len(topo.ConnectedComponents(g.ToGonum())) == 1
}

// CheckRunningIntersection verifies that, for every node held by some
// clique, the cliques holding it form a connected subgraph.
//
// Complexity: O(N·(C + E)) for N distinct nodes.
func (g *Graph) CheckRunningIntersection() error {
	holders := make(map[core.NodeID][]core.NodeID)
	for _, id := range g.Cliques() {
		for _, n := range g.members[id] {
			holders[n] = append(holders[n], id)
		}
	}
	nodes := make([]core.NodeID, 0, len(holders))
	for n := range holders {
		nodes = append(nodes, n)
	}
	core.SortNodeIDs(nodes)

	for _, n := range nodes {
		ids := holders[n]
		if len(ids) < 2 {
			continue
		}
		if comps := topo.ConnectedComponents(g.induced(ids)); len(comps) != 1 {
			return pkgerrors.Wrapf(ErrRunningIntersection, "node %d is split over %d components", n, len(comps))
		}
	}

	return nil
}
