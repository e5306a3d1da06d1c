// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and Neighbors() return ids sorted ascending.
//
// Concurrency:
//   - Mutations take g.mu for writing, queries for reading.

package core

import (
	"sort"

	"github.com/pkg/errors"
)

// AddNode inserts a node if missing (idempotent).
//
// Errors:
//   - ErrNegativeNodeID: if id < 0.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id NodeID) error {
	if id < 0 {
		return errors.Wrapf(ErrNegativeNodeID, "AddNode(%d)", id)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(id)

	return nil
}

// ensureNode registers id with an empty neighbour set. Caller holds g.mu.
func (g *Graph) ensureNode(id NodeID) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[NodeID]struct{})
	}
}

// HasNode reports whether id is a node of g.
// Complexity: O(1)
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// RemoveNode deletes id and all its incident edges.
// Removing a node that is not present is a no-op.
//
// Implementation:
//   - Stage 1: Under the write lock, look up the neighbour set of id.
//   - Stage 2: Drop the mirrored entry from every neighbour.
//   - Stage 3: Delete the node's own bucket and adjust the edge count.
//
// Complexity:
//   - Time O(deg(id)), Space O(1).
func (g *Graph) RemoveNode(id NodeID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return
	}
	for nb := range nbrs {
		delete(g.adjacency[nb], id)
	}
	g.nEdges -= len(nbrs)
	delete(g.adjacency, id)
}

// Nodes returns all node ids sorted ascending.
// Complexity: O(V log V)
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sortIDs(out)

	return out
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// Empty reports whether the graph has no node left.
func (g *Graph) Empty() bool { return g.NodeCount() == 0 }

// Neighbors returns the neighbours of id sorted ascending.
//
// Errors:
//   - ErrNodeNotFound: if id is not in g.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) Neighbors(id NodeID) ([]NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "Neighbors(%d)", id)
	}
	out := make([]NodeID, 0, len(nbrs))
	for nb := range nbrs {
		out = append(out, nb)
	}
	sortIDs(out)

	return out, nil
}

// Degree returns the number of neighbours of id, or 0 if id is absent.
func (g *Graph) Degree(id NodeID) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[id])
}

// sortIDs sorts ids in place, ascending.
func sortIDs(ids []NodeID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

// SortNodeIDs sorts ids in place, ascending. Exported for sibling packages
// that need the same deterministic order as Graph enumerations.
func SortNodeIDs(ids []NodeID) { sortIDs(ids) }
