// Package elimination provides the policies that choose which node a
// triangulation eliminates next.
//
// Every policy implements Strategy:
//
//	SetGraph(g, domains)   attach the graph being eliminated
//	NextNodeToEliminate()  the node to remove now
//	EliminationUpdate(n)   notification that n has just been removed
//	ProvidesFillIns()      whether FillIns reports the added edges
//	ProvidesGraphUpdate()  whether EliminationUpdate mutates the graph
//
// Three variants are provided, tagged by Kind:
//
//   - Heuristic: simplicial, then almost simplicial, then quasi simplicial
//     nodes, and finally the node of minimum clique weight. Updates the
//     graph itself through a simplicial.Analyzer.
//   - Ordered: a fixed total order. Never touches the graph; the caller
//     materialises each clique.
//   - PartialOrdered: a sequence of node subsets eliminated one after the
//     other, the heuristic choosing inside each subset.
//
// Callers dispatch on ProvidesGraphUpdate/ProvidesFillIns, never on the
// concrete type or Kind.
//
// Lifecycle: Unconfigured -> Ready (SetGraph) -> Eliminating -> Exhausted.
// NextNodeToEliminate on an unconfigured or exhausted strategy returns
// ErrNothingLeft. Ties are broken towards the lowest NodeID.
//
// Strategies are not safe for concurrent use.
package elimination
