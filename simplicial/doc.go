// Package simplicial classifies the nodes of an undirected graph by how
// cheap they are to eliminate, and performs the eliminations.
//
// What:
//
//   - Simplicial: every pair of neighbours is adjacent. Eliminating the node
//     adds no fill-in edge.
//   - AlmostSimplicial: all neighbours but one form a clique, and the clique
//     the elimination creates is no heavier than the largest clique
//     materialised so far (the log tree width) plus a log threshold.
//   - QuasiSimplicial: not almost simplicial, but at least QuasiRatio of the
//     neighbour pairs are already adjacent, under the same weight bound.
//
// The weight of a node is log(domain size); the weight of the clique a node
// would create is its own weight plus its neighbours'. Within every class
// the best node is the one with the lowest clique weight, ties going to the
// lowest NodeID. Classes are kept in red-black trees
// (github.com/emirpasic/gods) keyed by (clique weight, id), so Best* is
// O(log V) and the result is deterministic.
//
// Elimination is a two-step protocol:
//
//	a.MakeClique(n)  // add the missing edges among n's neighbours
//	a.EraseClique(n) // remove n, now simplicial, with its edges
//
// Both steps mutate the graph handed to New and reclassify only the nodes
// whose neighbourhood changed. With fill-in tracking on, every edge added
// by MakeClique is recorded and returned by FillIns.
//
// Errors:
//
//	ErrEmptyClass    Best* called on an empty class; check Has* first.
//	ErrNodeNotFound  the node is not (or no longer) in the graph.
//	ErrNotClique     EraseClique on a node whose neighbours are not a clique.
//
// An Analyzer is not safe for concurrent use.
package simplicial
