// Package builder provides deterministic generators of undirected
// core.Graph fixtures (paths, cycles, grids, complete graphs, stars,
// wheels, random sparse graphs) and matching domain-size maps.
//
// Moral graphs of real models are rarely at hand in tests and benchmarks;
// these families cover the interesting cases for triangulation:
//
//   - Path, Star          already chordal (trees): zero fill-in expected.
//   - Complete            already chordal: one clique.
//   - Cycle, Wheel        need n-3 / n-4 chords.
//   - Grid                the classic hard case: treewidth = min(rows, cols).
//   - RandomSparse        Erdős–Rényi G(n, p), reproducible under WithSeed.
//
// Usage:
//
//	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Grid(4, 4), builder.RandomSparse(10, 0.2))
//	ds := builder.UniformDomains(g, 2)
//
// Node ids are assigned as offset+index, offset defaulting to 0 (WithIDOffset).
// Constructors never panic at runtime; invalid parameters surface as
// sentinel errors (ErrTooFewNodes, ErrInvalidProbability, ErrNeedRandSource).
// Option constructors panic on meaningless values.
package builder
