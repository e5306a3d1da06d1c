// SPDX-License-Identifier: MIT
// File: analyzer.go
// Role: Analyzer construction, queries and the MakeClique/EraseClique protocol.

package simplicial

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
)

// Analyzer maintains the simplicial classification of a graph it mutates.
//
// The weight table is owned by the caller (typically an elimination
// strategy) and only read here; Clone rebuilds an analyzer against another
// owner's graph and table rather than sharing them.
type Analyzer struct {
	g       *core.Graph
	weights map[core.NodeID]float64
	cfg     config

	state     map[core.NodeID]nodeState
	all       *redblacktree.Tree
	simp      *redblacktree.Tree
	almost    *redblacktree.Tree
	quasi     *redblacktree.Tree
	expensive *redblacktree.Tree

	logTreeWidth float64
	fillIns      core.EdgeSet
}

// New classifies every node of g using the log weights in weights.
//
// Errors:
//   - core.ErrDomainMismatch: a node of g has no weight.
//
// Complexity: O(Σ deg(v)^2 + V log V).
func New(g *core.Graph, weights map[core.NodeID]float64, opts ...Option) (*Analyzer, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	a := &Analyzer{g: g, weights: weights, cfg: cfg, fillIns: core.NewEdgeSet()}

	nodes := g.Nodes()
	for _, n := range nodes {
		w, ok := weights[n]
		if !ok {
			return nil, errors.Wrapf(core.ErrDomainMismatch, "simplicial: node %d has no weight", n)
		}
		if w > a.logTreeWidth {
			a.logTreeWidth = w
		}
	}
	a.rebuild()

	return a, nil
}

// rebuild recomputes every classification from scratch.
func (a *Analyzer) rebuild() {
	a.state = make(map[core.NodeID]nodeState, a.g.NodeCount())
	a.all, a.simp, a.almost, a.quasi, a.expensive = newTree(), newTree(), newTree(), newTree(), newTree()
	for _, n := range a.g.Nodes() {
		a.update(n)
	}
}

// Clone returns an analyzer over g and weights carrying a's configuration,
// log tree width and recorded fill-ins. g is expected to be a copy of the
// graph a analyses; classifications are recomputed against it.
func (a *Analyzer) Clone(g *core.Graph, weights map[core.NodeID]float64) *Analyzer {
	c := &Analyzer{
		g:            g,
		weights:      weights,
		cfg:          a.cfg,
		logTreeWidth: a.logTreeWidth,
		fillIns:      a.fillIns.Clone(),
	}
	c.rebuild()

	return c
}

// Graph returns the graph being analysed.
func (a *Analyzer) Graph() *core.Graph { return a.g }

// LogTreeWidth is the largest clique weight materialised so far, or the
// largest single node weight before any elimination.
func (a *Analyzer) LogTreeWidth() float64 { return a.logTreeWidth }

// Classify returns the current classification of n.
func (a *Analyzer) Classify(n core.NodeID) (Info, error) {
	st, ok := a.state[n]
	if !ok {
		return Info{}, errors.Wrapf(ErrNodeNotFound, "Classify(%d)", n)
	}

	return st.Info, nil
}

// HasSimplicialNode reports whether at least one node is simplicial.
func (a *Analyzer) HasSimplicialNode() bool { return !a.simp.Empty() }

// HasAlmostSimplicialNode reports whether at least one node is almost simplicial.
func (a *Analyzer) HasAlmostSimplicialNode() bool { return !a.almost.Empty() }

// HasQuasiSimplicialNode reports whether at least one node is quasi simplicial.
func (a *Analyzer) HasQuasiSimplicialNode() bool { return !a.quasi.Empty() }

// BestSimplicialNode returns the simplicial node with the lowest clique weight.
func (a *Analyzer) BestSimplicialNode() (core.NodeID, error) {
	return best(a.simp, Simplicial)
}

// BestAlmostSimplicialNode returns the almost simplicial node with the lowest clique weight.
func (a *Analyzer) BestAlmostSimplicialNode() (core.NodeID, error) {
	return best(a.almost, AlmostSimplicial)
}

// BestQuasiSimplicialNode returns the quasi simplicial node with the lowest clique weight.
func (a *Analyzer) BestQuasiSimplicialNode() (core.NodeID, error) {
	return best(a.quasi, QuasiSimplicial)
}

// BestNode returns the node with the lowest clique weight overall, which is
// the min-weight heuristic's choice.
func (a *Analyzer) BestNode() (core.NodeID, error) {
	return best(a.all, None)
}

// BestIn returns the lowest-weight node of class c accepted by keep, or
// false when there is none. Class None scans every node.
// Complexity: O(k) for k entries scanned in the class tree.
func (a *Analyzer) BestIn(c Class, keep func(core.NodeID) bool) (core.NodeID, bool) {
	var tree *redblacktree.Tree
	switch c {
	case Simplicial:
		tree = a.simp
	case AlmostSimplicial:
		tree = a.almost
	case QuasiSimplicial:
		tree = a.quasi
	default:
		tree = a.all
	}
	it := tree.Iterator()
	for it.Next() {
		if id := it.Key().(key).id; keep(id) {
			return id, true
		}
	}

	return 0, false
}

func best(tree *redblacktree.Tree, c Class) (core.NodeID, error) {
	left := tree.Left()
	if left == nil {
		return 0, errors.Wrapf(ErrEmptyClass, "%s", c)
	}

	return left.Key.(key).id, nil
}

// FillIns returns the edges recorded by MakeClique, sorted. Empty unless
// tracking is on.
func (a *Analyzer) FillIns() []core.Edge { return a.fillIns.Sorted() }

// SetFillInTracking toggles fill-in recording. Turning it off also drops
// what was recorded.
func (a *Analyzer) SetFillInTracking(on bool) {
	a.cfg.trackFillIns = on
	if !on {
		a.fillIns = core.NewEdgeSet()
	}
}

// MakeClique adds every missing edge among the neighbours of n, so that n
// becomes simplicial, and returns the added edges sorted.
//
// Implementation:
//   - Stage 1: Collect the missing neighbour pairs and add them to the graph.
//   - Stage 2: Raise the log tree width to n's clique weight if larger.
//   - Stage 3: Reclassify n, its neighbours, and every common neighbour of
//     an added edge's endpoints (their neighbour adjacency changed).
//   - Stage 4: Promote expensive nodes the larger tree width now admits.
func (a *Analyzer) MakeClique(n core.NodeID) ([]core.Edge, error) {
	st, ok := a.state[n]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "MakeClique(%d)", n)
	}
	nbrs, err := a.g.Neighbors(n)
	if err != nil {
		return nil, errors.Wrapf(ErrNodeNotFound, "MakeClique(%d)", n)
	}

	added := a.g.MissingEdges(nbrs)
	touched := map[core.NodeID]struct{}{n: {}}
	for _, nb := range nbrs {
		touched[nb] = struct{}{}
	}
	for _, e := range added {
		if err = a.g.AddEdge(e.U, e.V); err != nil {
			return nil, err
		}
		if a.cfg.trackFillIns {
			a.fillIns.Add(e)
		}
	}
	for _, e := range added {
		for _, z := range a.commonNeighbors(e.U, e.V) {
			touched[z] = struct{}{}
		}
	}

	grew := false
	if st.CliqueWeight > a.logTreeWidth+weightEpsilon {
		a.logTreeWidth = st.CliqueWeight
		grew = true
	}
	for _, id := range sortedKeys(touched) {
		a.update(id)
	}
	if grew {
		a.promote()
	}

	return added, nil
}

// EraseClique removes n, which must be simplicial, and its incident edges,
// then reclassifies its former neighbours.
func (a *Analyzer) EraseClique(n core.NodeID) error {
	if _, ok := a.state[n]; !ok {
		return errors.Wrapf(ErrNodeNotFound, "EraseClique(%d)", n)
	}
	nbrs, err := a.g.Neighbors(n)
	if err != nil {
		return errors.Wrapf(ErrNodeNotFound, "EraseClique(%d)", n)
	}
	if missing := a.g.MissingEdges(nbrs); len(missing) > 0 {
		return errors.Wrapf(ErrNotClique, "EraseClique(%d): %d missing edges", n, len(missing))
	}

	a.drop(n)
	a.g.RemoveNode(n)
	for _, nb := range nbrs {
		a.update(nb)
	}

	return nil
}

// EraseNode removes n and its edges without any clique requirement, for
// callers that eliminate nodes outside the MakeClique/EraseClique protocol.
func (a *Analyzer) EraseNode(n core.NodeID) error {
	if _, ok := a.state[n]; !ok {
		return errors.Wrapf(ErrNodeNotFound, "EraseNode(%d)", n)
	}
	nbrs, _ := a.g.Neighbors(n)
	a.drop(n)
	a.g.RemoveNode(n)
	for _, nb := range nbrs {
		a.update(nb)
	}

	return nil
}

func (a *Analyzer) commonNeighbors(u, v core.NodeID) []core.NodeID {
	nu, _ := a.g.Neighbors(u)
	var out []core.NodeID
	for _, z := range nu {
		if z != v && a.g.HasEdge(z, v) {
			out = append(out, z)
		}
	}

	return out
}

func sortedKeys(m map[core.NodeID]struct{}) []core.NodeID {
	out := make([]core.NodeID, 0, len(m))
	for id := range m {
		out = append(out, id)
	}
	core.SortNodeIDs(out)

	return out
}
