// Package cliquegraph holds graphs whose vertices are cliques: sets of
// nodes of an underlying core.Graph. The elimination tree of a
// triangulation and the junction tree built from it are both
// cliquegraph.Graph values.
//
// A clique is addressed by an ID, the core.NodeID of the node whose
// elimination created it, and carries its sorted member nodes. Edges are
// undirected pairs of clique IDs; the separator of an edge is the
// intersection of its two cliques.
//
// CheckRunningIntersection verifies the junction-tree property: for every
// node, the cliques containing it induce a connected subgraph. It uses
// gonum's topo.ConnectedComponents on that induced subgraph.
//
// Errors:
//
//	ErrCliqueNotFound       unknown clique ID.
//	ErrEdgeNotFound         RemoveEdge/Separator on an absent edge.
//	ErrRunningIntersection  the property does not hold (wrapped with the node).
package cliquegraph
