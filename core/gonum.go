// File: gonum.go
// Role: export to gonum graph types, for interop with gonum/graph algorithms.

package core

import "gonum.org/v1/gonum/graph/simple"

// ToGonum copies g into a gonum simple.UndirectedGraph. Node ids are kept
// (simple.Node(id)), so results from gonum algorithms map straight back.
func ToGonum(g *Graph) *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for _, n := range g.Nodes() {
		ug.AddNode(simple.Node(n))
	}
	for _, e := range g.Edges() {
		ug.SetEdge(ug.NewEdge(simple.Node(e.U), simple.Node(e.V)))
	}

	return ug
}
