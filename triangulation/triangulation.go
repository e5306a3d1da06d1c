// SPDX-License-Identifier: MIT
// File: triangulation.go
// Role: the elimination driver and its recorded outputs.

package triangulation

import (
	"errors"
	"math"

	"github.com/plan-systems/klog"
	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/cliquegraph"
	"github.com/katalvlaran/lvjunction/core"
	"github.com/katalvlaran/lvjunction/elimination"
)

var (
	// ErrNilGraph is returned when no graph is supplied.
	ErrNilGraph = errors.New("triangulation: nil graph")

	// ErrNilStrategy is returned when no strategy is supplied.
	ErrNilStrategy = errors.New("triangulation: nil strategy")

	// ErrStalled is returned when a strategy stops before the graph is
	// empty, or reports a node that the step did not remove.
	ErrStalled = errors.New("triangulation: strategy stalled")
)

// Triangulation drives an elimination strategy over a private copy of a
// graph. Not safe for concurrent use.
type Triangulation struct {
	g        *core.Graph
	domains  core.DomainSizes
	strategy elimination.Strategy
	cfg      config

	done         bool
	order        []core.NodeID
	index        map[core.NodeID]int
	cliques      map[core.NodeID][]core.NodeID
	fillIns      core.EdgeSet
	elimTree     *cliquegraph.Graph
	triangulated *core.Graph
	maxLog10     float64
}

// New returns a triangulation of a copy of g.
//
// Errors:
//   - ErrNilGraph, ErrNilStrategy.
//   - core.ErrDomainMismatch: domains does not cover g.
func New(g *core.Graph, domains core.DomainSizes, strategy elimination.Strategy, opts ...Option) (*Triangulation, error) {
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	t := &Triangulation{strategy: strategy}
	for _, opt := range opts {
		opt(&t.cfg)
	}
	if err := t.SetGraph(g, domains); err != nil {
		return nil, err
	}

	return t, nil
}

// SetGraph replaces the graph to triangulate and drops previous results.
// The strategy is kept.
func (t *Triangulation) SetGraph(g *core.Graph, domains core.DomainSizes) error {
	if g == nil {
		return ErrNilGraph
	}
	if err := domains.Validate(g); err != nil {
		return err
	}
	t.g = g.Clone()
	t.domains = domains.Clone()
	t.Clear()

	return nil
}

// Clear drops every result; the next accessor triangulates again.
func (t *Triangulation) Clear() {
	t.done = false
	t.order = nil
	t.index = nil
	t.cliques = nil
	t.fillIns = nil
	t.elimTree = nil
	t.triangulated = nil
	t.maxLog10 = 0
	t.strategy.Clear()
}

// Graph returns a copy of the graph being triangulated.
func (t *Triangulation) Graph() *core.Graph { return t.g.Clone() }

// Domains returns a copy of the domain sizes.
func (t *Triangulation) Domains() core.DomainSizes { return t.domains.Clone() }

// Run eliminates every node. It is a no-op once a run has succeeded.
//
// Implementation:
//   - Stage 1: Clone the graph and attach the copy to the strategy.
//   - Stage 2: Until the copy is empty, ask for a node, record its clique
//     and missing edges, then let the strategy (or Run itself) complete the
//     clique and remove the node.
//   - Stage 3: Merge strategy fill-ins, build the triangulated graph and
//     the elimination tree.
//
// Errors:
//   - ErrStalled: the strategy ran dry early or did not remove its node.
//   - errors from the strategy and the hook, wrapped.
func (t *Triangulation) Run() error {
	if t.done {
		return nil
	}
	if err := t.run(); err != nil {
		t.Clear()
		return err
	}
	t.done = true

	return nil
}

func (t *Triangulation) run() error {
	work := t.g.Clone()
	if err := t.strategy.SetGraph(work, t.domains); err != nil {
		return pkgerrors.Wrap(err, "triangulation: SetGraph")
	}

	total := work.NodeCount()
	t.order = make([]core.NodeID, 0, total)
	t.index = make(map[core.NodeID]int, total)
	t.cliques = make(map[core.NodeID][]core.NodeID, total)
	t.fillIns = core.NewEdgeSet()
	t.maxLog10 = 0
	selfUpdate := t.strategy.ProvidesGraphUpdate()

	for !work.Empty() {
		n, err := t.strategy.NextNodeToEliminate()
		if err != nil {
			if errors.Is(err, elimination.ErrNothingLeft) {
				return pkgerrors.Wrapf(ErrStalled, "%d of %d nodes left", work.NodeCount(), total)
			}
			return pkgerrors.Wrap(err, "triangulation: next node")
		}
		nbrs, err := work.Neighbors(n)
		if err != nil {
			return pkgerrors.Wrapf(ErrStalled, "strategy chose %d: %v", n, err)
		}
		missing := work.MissingEdges(nbrs)
		clique := append(nbrs, n)
		core.SortNodeIDs(clique)

		if !selfUpdate {
			for _, e := range missing {
				if err = work.AddEdge(e.U, e.V); err != nil {
					return err
				}
			}
			work.RemoveNode(n)
		}
		if err = t.strategy.EliminationUpdate(n); err != nil {
			return pkgerrors.Wrapf(err, "triangulation: update %d", n)
		}
		if work.HasNode(n) {
			return pkgerrors.Wrapf(ErrStalled, "node %d still present after its elimination", n)
		}

		step := Step{Index: len(t.order), Node: n, Clique: clique, FillIns: missing}
		t.record(step)
		klog.V(4).Infof("triangulation: step %d eliminated %d clique=%v fill-ins=%v", step.Index, n, clique, missing)
		if t.cfg.onEliminate != nil {
			if err = t.cfg.onEliminate(step); err != nil {
				return pkgerrors.Wrapf(err, "triangulation: hook at step %d", step.Index)
			}
		}
	}

	if t.strategy.ProvidesFillIns() {
		for _, e := range t.strategy.FillIns() {
			t.fillIns.Add(e)
		}
	}
	if err := t.buildTriangulated(); err != nil {
		return pkgerrors.Wrap(err, "triangulation: triangulated graph")
	}
	if err := t.buildEliminationTree(); err != nil {
		return err
	}
	klog.V(2).Infof("triangulation: %d nodes eliminated (%s), %d fill-ins, max log10 clique size %.3f",
		total, t.strategy.Kind(), len(t.fillIns), t.maxLog10)

	return nil
}

// record stores one step's outputs.
func (t *Triangulation) record(s Step) {
	t.index[s.Node] = s.Index
	t.order = append(t.order, s.Node)
	t.cliques[s.Node] = s.Clique
	for _, e := range s.FillIns {
		t.fillIns.Add(e)
	}
	var log10 float64
	for _, m := range s.Clique {
		log10 += math.Log10(float64(t.domains[m]))
	}
	if log10 > t.maxLog10 {
		t.maxLog10 = log10
	}
}

func (t *Triangulation) buildTriangulated() error {
	tg := t.g.Clone()
	for e := range t.fillIns {
		if err := tg.AddEdge(e.U, e.V); err != nil {
			return err
		}
	}
	t.triangulated = tg

	return nil
}

// buildEliminationTree links each clique to the clique of its earliest
// eliminated other member. Every other member is eliminated later than the
// creating node, so the parent always comes later in the order.
func (t *Triangulation) buildEliminationTree() error {
	tree := cliquegraph.New()
	for _, n := range t.order {
		tree.AddClique(n, t.cliques[n])
	}
	for _, n := range t.order {
		parent, best := n, len(t.order)
		for _, m := range t.cliques[n] {
			if m != n && t.index[m] < best {
				parent, best = m, t.index[m]
			}
		}
		if parent == n {
			continue
		}
		if err := tree.AddEdge(n, parent); err != nil {
			return pkgerrors.Wrap(err, "triangulation: elimination tree")
		}
	}
	t.elimTree = tree

	return nil
}
