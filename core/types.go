// SPDX-License-Identifier: MIT
// File: types.go
// Role: NodeID, Edge, Graph, sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeNodeID indicates a node identifier below zero.
	ErrNegativeNodeID = errors.New("core: node id is negative")

	// ErrLoopNotAllowed indicates an attempt to connect a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrNodeNotFound indicates a query referenced a node that is not in the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDomainMismatch indicates a domain-size map that does not cover the
	// graph it is paired with, or that holds a non-positive size.
	ErrDomainMismatch = errors.New("core: domain sizes do not match graph")
)

// NodeID identifies one node (one model variable) inside a Graph.
// Identity is plain integer equality; ordering is used for determinism only.
type NodeID int

// Edge is an unordered pair of distinct nodes, stored with U < V.
// Use NewEdge to build one from arbitrary endpoints.
type Edge struct {
	U NodeID
	V NodeID
}

// NewEdge returns the normalised edge {a,b} (smaller endpoint first).
func NewEdge(a, b NodeID) Edge {
	if a > b {
		a, b = b, a
	}

	return Edge{U: a, V: b}
}

// Other returns the endpoint of e that is not n. The result is undefined
// when n is not an endpoint of e.
func (e Edge) Other(n NodeID) NodeID {
	if e.U == n {
		return e.V
	}

	return e.U
}

// String renders the edge as "u-v".
func (e Edge) String() string { return fmt.Sprintf("%d-%d", e.U, e.V) }

// Graph is an undirected simple graph over integer node identifiers.
//
// mu guards nodes and adjacency. adjacency holds one neighbour set per node,
// including isolated nodes (empty set), so len(adjacency) is the node count.
type Graph struct {
	mu sync.RWMutex

	adjacency map[NodeID]map[NodeID]struct{}
	nEdges    int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[NodeID]map[NodeID]struct{})}
}

// NewGraphFromEdges creates a Graph holding the given isolated nodes and
// edges. Endpoints of edges are added automatically.
// It stops at the first invalid node or edge and returns the error.
func NewGraphFromEdges(nodes []NodeID, edges []Edge) (*Graph, error) {
	g := NewGraph()
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
	}
	for _, e := range edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
	}

	return g, nil
}
