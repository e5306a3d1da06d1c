// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Clone holds the source read lock; the clone shares no map with it.

package core

// Clone returns a deep copy of g. Mutating the clone never affects g,
// which is what lets a triangulation destroy its working copy.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make(map[NodeID]map[NodeID]struct{}, len(g.adjacency)),
		nEdges:    g.nEdges,
	}
	for id, nbrs := range g.adjacency {
		cp := make(map[NodeID]struct{}, len(nbrs))
		for nb := range nbrs {
			cp[nb] = struct{}{}
		}
		clone.adjacency[id] = cp
	}

	return clone
}

// Clear removes every node and edge.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.adjacency = make(map[NodeID]map[NodeID]struct{})
	g.nEdges = 0
	g.mu.Unlock()
}
