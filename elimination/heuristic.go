// SPDX-License-Identifier: MIT
// File: heuristic.go
// Role: the simplicial / min-weight elimination heuristic.

package elimination

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
	"github.com/katalvlaran/lvjunction/simplicial"
)

// Heuristic eliminates simplicial nodes first, then almost simplicial, then
// quasi simplicial ones, and otherwise the node creating the lightest clique.
type Heuristic struct {
	cfg     heuristicConfig
	g       *core.Graph
	weights map[core.NodeID]float64
	an      *simplicial.Analyzer
}

// NewHeuristic returns an unconfigured heuristic strategy.
func NewHeuristic(opts ...HeuristicOption) *Heuristic {
	return &Heuristic{cfg: newHeuristicConfig(opts)}
}

// SetGraph implements Strategy.
//
// Errors:
//   - core.ErrDomainMismatch: domains does not cover g.
func (h *Heuristic) SetGraph(g *core.Graph, domains core.DomainSizes) error {
	h.Clear()
	if err := domains.Validate(g); err != nil {
		return err
	}
	weights := domains.LogWeights()
	an, err := simplicial.New(g, weights, h.cfg.analyzerOptions()...)
	if err != nil {
		return err
	}
	h.g, h.weights, h.an = g, weights, an

	return nil
}

// NextNodeToEliminate implements Strategy.
func (h *Heuristic) NextNodeToEliminate() (core.NodeID, error) {
	if h.an == nil || h.g.Empty() {
		return 0, ErrNothingLeft
	}
	switch {
	case h.an.HasSimplicialNode():
		return h.an.BestSimplicialNode()
	case h.an.HasAlmostSimplicialNode():
		return h.an.BestAlmostSimplicialNode()
	case h.an.HasQuasiSimplicialNode():
		return h.an.BestQuasiSimplicialNode()
	default:
		return h.an.BestNode()
	}
}

// EliminationUpdate implements Strategy: it completes the neighbourhood of n
// and removes n from the graph.
func (h *Heuristic) EliminationUpdate(n core.NodeID) error {
	if h.an == nil {
		return errors.Wrapf(ErrNothingLeft, "EliminationUpdate(%d)", n)
	}

	return eliminate(h.an, n)
}

// eliminate runs the MakeClique/EraseClique protocol on n.
func eliminate(an *simplicial.Analyzer, n core.NodeID) error {
	if _, err := an.MakeClique(n); err != nil {
		return errors.Wrapf(err, "eliminate %d", n)
	}
	if err := an.EraseClique(n); err != nil {
		return errors.Wrapf(err, "eliminate %d", n)
	}

	return nil
}

// ProvidesFillIns implements Strategy; true with WithFillIns.
func (h *Heuristic) ProvidesFillIns() bool { return h.cfg.fillIns }

// ProvidesGraphUpdate implements Strategy; always true.
func (h *Heuristic) ProvidesGraphUpdate() bool { return true }

// FillIns implements Strategy.
func (h *Heuristic) FillIns() []core.Edge {
	if h.an == nil {
		return nil
	}

	return h.an.FillIns()
}

// Clear implements Strategy.
func (h *Heuristic) Clear() { h.g, h.weights, h.an = nil, nil, nil }

// Kind implements Strategy.
func (h *Heuristic) Kind() Kind { return KindHeuristic }

// Clone implements Strategy. The copy owns a clone of the graph and of the
// weight table, and its analyzer is rebuilt against them.
func (h *Heuristic) Clone() Strategy {
	c := &Heuristic{cfg: h.cfg}
	if h.an != nil {
		c.g = h.g.Clone()
		c.weights = cloneWeights(h.weights)
		c.an = h.an.Clone(c.g, c.weights)
	}

	return c
}

func cloneWeights(w map[core.NodeID]float64) map[core.NodeID]float64 {
	out := make(map[core.NodeID]float64, len(w))
	for k, v := range w {
		out[k] = v
	}

	return out
}
