// Package core provides the undirected graph substrate shared by the
// triangulation and junction-tree packages of lvjunction.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes are non-negative integers (NodeID); they carry no payload.
//   - Edges are unordered pairs {u,v} with u != v; there are no weights,
//     no self-loops and no parallel edges.
//   - Adjacency is an arena of integer neighbour sets:
//     adjacency[u][v] = struct{}{}, mirrored as adjacency[v][u].
//     Nodes never reference each other directly, so there are no
//     ownership cycles and Clone is a plain map copy.
//   - A single sync.RWMutex guards the maps. Algorithms in this module
//     still treat a Graph as single-owner: the triangulation always works
//     on its own clone.
//
// Idempotence policy:
//
//	AddNode/AddEdge on something already present  -> no-op, nil error
//	RemoveNode/RemoveEdge on something absent     -> no-op
//
// Errors:
//
//	ErrNegativeNodeID  - node identifiers must be >= 0.
//	ErrLoopNotAllowed  - AddEdge(u,u) is rejected.
//	ErrNodeNotFound    - neighbourhood query on a missing node.
//	ErrDomainMismatch  - a DomainSizes map does not cover a graph.
//
// Besides the graph itself the package holds the small value types every
// other package exchanges: Edge, EdgeSet, DomainSizes and the chordality
// check IsChordal used to verify triangulations.
//
// Complexity:
//
//	AddNode, HasNode, AddEdge, RemoveEdge, HasEdge   O(1)
//	RemoveNode                                       O(deg(v))
//	Neighbors                                        O(d log d)
//	Nodes, Edges                                     O(V log V), O(E log E)
//	Clone                                            O(V + E)
package core
