// Package junctiontree turns the elimination tree of a triangulation into a
// junction tree: a clique tree satisfying the running intersection property
// with no clique subsumed by a neighbour.
//
// Algorithm: walk the cliques from the last created to the first. A clique
// C is merged into an adjacent clique P created earlier when the edge C-P
// is unmarked and |P| = |C|+1 (so P = C plus one node). C's other
// neighbours are relinked to P through marked edges and C disappears. A
// substitution map records every merge; after the pass each node resolves,
// through the clique its elimination created and the transitive closure of
// the map, to the surviving clique holding it.
//
// WithMethod(MethodSpanning) builds the tree differently: it keeps only the
// maximal created cliques and links them by a maximum-separator spanning
// forest (cliquegraph.MaxSeparatorForest). Each node then maps to the
// lowest-id maximal clique containing its created clique.
//
// Results are built on first request and cached until Clear or
// SetTriangulation. Asking before any triangulation is attached returns
// ErrNoTriangulation.
package junctiontree
