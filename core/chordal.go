// File: chordal.go
// Role: chordality check by maximum cardinality search (Tarjan & Yannakakis).
//
// A graph is chordal iff the reverse of an MCS visiting order is a perfect
// elimination ordering, i.e. every node's already-visited neighbours form
// a clique. The check is O(V^2 + Σ deg^2), fine for the graphs this
// module triangulates.

package core

// IsChordal reports whether every cycle of length >= 4 in g has a chord.
// The empty graph is chordal.
func IsChordal(g *Graph) bool {
	order := MaximumCardinalityOrder(g)
	visited := make(map[NodeID]bool, len(order))
	for _, v := range order {
		nbrs, _ := g.Neighbors(v)
		var earlier []NodeID
		for _, nb := range nbrs {
			if visited[nb] {
				earlier = append(earlier, nb)
			}
		}
		if len(g.MissingEdges(earlier)) > 0 {
			return false
		}
		visited[v] = true
	}

	return true
}

// MaximumCardinalityOrder returns nodes in maximum-cardinality-search
// visiting order: each step picks the unvisited node with most visited
// neighbours, ties broken by lowest id. Reversed, it is a perfect
// elimination ordering whenever g is chordal.
func MaximumCardinalityOrder(g *Graph) []NodeID {
	nodes := g.Nodes()
	weight := make(map[NodeID]int, len(nodes))
	visited := make(map[NodeID]bool, len(nodes))
	order := make([]NodeID, 0, len(nodes))

	for len(order) < len(nodes) {
		best, bestW := NodeID(-1), -1
		for _, n := range nodes {
			if !visited[n] && weight[n] > bestW {
				best, bestW = n, weight[n]
			}
		}
		visited[best] = true
		order = append(order, best)
		nbrs, _ := g.Neighbors(best)
		for _, nb := range nbrs {
			if !visited[nb] {
				weight[nb]++
			}
		}
	}

	return order
}
