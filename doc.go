// Package lvjunction turns undirected graphs with per-node domain sizes into
// junction trees, and runs table computations over them under a memory
// ceiling.
//
// What is inside?
//
//	core/          - Graph (NodeID nodes, thread-safe), EdgeSet, DomainSizes, chordality check
//	builder/       - deterministic generators: Path, Star, Cycle, Wheel, Complete, Grid, RandomSparse
//	simplicial/    - incremental simplicial / almost / quasi-simplicial classification
//	elimination/   - elimination strategies: heuristic, fixed order, partial order
//	triangulation/ - elimination driver: order, fill-ins, created cliques, elimination tree
//	cliquegraph/   - clique graphs, running-intersection check, max-separator spanning forest
//	junctiontree/  - elimination tree → junction tree (merge or spanning method)
//	schedule/      - placeholders, combine/project/delete operations, schedulers
//
// Pipeline:
//
//	g ──► triangulation.New(g, domains, strategy) ──► EliminationTree
//	                                                      │
//	                                  junctiontree.NewFrom(tr).JunctionTree()
//	                                                      │
//	           schedule.New / InsertOperation ──► Sequential | Parallel
//
// Quick ASCII example:
//
//	    1───2
//	    │ ╲ │
//	    4───3
//
// A square with the 1-3 diagonal is already chordal: any strategy eliminates
// it without fill-ins and the junction tree holds the cliques {1,2,3} and
// {1,3,4} joined by the separator {1,3}.
//
// Logging goes through github.com/plan-systems/klog: V(2) for per-run
// summaries, V(4) for per-step traces. cmd/lvjunction wires the flags.
//
//	go run ./cmd/lvjunction -graph grid -n 6 -v 2
package lvjunction
