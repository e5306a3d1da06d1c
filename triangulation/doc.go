// Package triangulation eliminates every node of an undirected graph with
// an elimination.Strategy and records what the elimination produced.
//
// What:
//
//   - Elimination order: a permutation of the graph's nodes.
//   - Created cliques: for each eliminated node n, n plus the neighbours it
//     still had when eliminated.
//   - Fill-ins: the edges added so that every created clique is complete.
//     The set only grows during a run.
//   - Elimination tree: the clique graph where the clique of n is linked to
//     the clique of the earliest-eliminated other member of clique(n).
//   - Triangulated graph: the input plus its fill-ins, which is chordal.
//
// How:
//
//	t, _ := triangulation.New(g, domains, elimination.NewHeuristic())
//	order, _ := t.EliminationOrder() // runs on first use
//
// The input graph is cloned by New and SetGraph; the strategy works on that
// copy. When a strategy does not update the graph (ProvidesGraphUpdate is
// false) the triangulation completes each clique and removes the node
// itself; when it does not provide fill-ins they are computed here.
//
// Run is idempotent. Every accessor runs the triangulation on first use. A
// failed run leaves no result behind: the next call starts from scratch.
//
// Logging: klog V(2) for run summaries, V(4) for every elimination step.
package triangulation
