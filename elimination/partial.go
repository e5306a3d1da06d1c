// SPDX-License-Identifier: MIT
// File: partial.go
// Role: elimination along a sequence of node subsets, heuristic inside each.

package elimination

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
	"github.com/katalvlaran/lvjunction/simplicial"
)

// PartialOrdered eliminates every node of subsets[0] before any node of
// subsets[1], and so on. Within the current subset it applies the same
// priority as Heuristic, restricted to the subset's remaining nodes.
type PartialOrdered struct {
	cfg     heuristicConfig
	subsets [][]core.NodeID

	g       *core.Graph
	weights map[core.NodeID]float64
	an      *simplicial.Analyzer
	cur     int
	pending *treeset.Set // remaining nodes of subsets[cur]
}

// NewPartialOrdered returns an unconfigured partial-order strategy.
func NewPartialOrdered(subsets [][]core.NodeID, opts ...HeuristicOption) *PartialOrdered {
	return &PartialOrdered{cfg: newHeuristicConfig(opts), subsets: cloneSubsets(subsets)}
}

func cloneSubsets(in [][]core.NodeID) [][]core.NodeID {
	if in == nil {
		return nil
	}
	out := make([][]core.NodeID, len(in))
	for i, s := range in {
		out[i] = append([]core.NodeID(nil), s...)
	}

	return out
}

func byNodeID(a, b interface{}) int {
	x, y := a.(core.NodeID), b.(core.NodeID)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// SetPartialOrder replaces the subsets and restarts from the first one.
//
// Errors:
//   - ErrOrderMismatch: a graph is attached and the subsets do not
//     partition its nodes.
func (p *PartialOrdered) SetPartialOrder(subsets [][]core.NodeID) error {
	if p.g != nil {
		if err := checkPartition(p.g, subsets); err != nil {
			return err
		}
	}
	p.subsets = cloneSubsets(subsets)
	if p.g != nil {
		p.cur = 0
		p.loadSubset()
	}

	return nil
}

// checkPartition verifies every node of g appears in exactly one subset.
func checkPartition(g *core.Graph, subsets [][]core.NodeID) error {
	flat := make([]core.NodeID, 0, g.NodeCount())
	for _, s := range subsets {
		flat = append(flat, s...)
	}

	return checkPermutation(g, flat)
}

// SetGraph implements Strategy.
//
// Errors:
//   - core.ErrDomainMismatch: domains does not cover g.
//   - ErrOrderMismatch: the subsets do not partition g's nodes.
func (p *PartialOrdered) SetGraph(g *core.Graph, domains core.DomainSizes) error {
	p.Clear()
	if err := domains.Validate(g); err != nil {
		return err
	}
	if err := checkPartition(g, p.subsets); err != nil {
		return err
	}
	weights := domains.LogWeights()
	an, err := simplicial.New(g, weights, p.cfg.analyzerOptions()...)
	if err != nil {
		return err
	}
	p.g, p.weights, p.an = g, weights, an
	p.cur = 0
	p.loadSubset()

	return nil
}

// loadSubset fills pending with the nodes of the first subset, from cur
// on, that still has nodes in the graph.
func (p *PartialOrdered) loadSubset() {
	p.pending = treeset.NewWith(byNodeID)
	for ; p.cur < len(p.subsets); p.cur++ {
		for _, n := range p.subsets[p.cur] {
			if p.g.HasNode(n) {
				p.pending.Add(n)
			}
		}
		if !p.pending.Empty() {
			return
		}
	}
}

func (p *PartialOrdered) inSubset(n core.NodeID) bool { return p.pending.Contains(n) }

// NextNodeToEliminate implements Strategy.
func (p *PartialOrdered) NextNodeToEliminate() (core.NodeID, error) {
	if p.an == nil || p.pending.Empty() {
		return 0, ErrNothingLeft
	}
	for _, c := range []simplicial.Class{
		simplicial.Simplicial,
		simplicial.AlmostSimplicial,
		simplicial.QuasiSimplicial,
		simplicial.None,
	} {
		if n, ok := p.an.BestIn(c, p.inSubset); ok {
			return n, nil
		}
	}
	// Unreachable while pending and the analyzer agree; fall back to order.
	return p.pending.Values()[0].(core.NodeID), nil
}

// EliminationUpdate implements Strategy.
func (p *PartialOrdered) EliminationUpdate(n core.NodeID) error {
	if p.an == nil {
		return errors.Wrapf(ErrNothingLeft, "EliminationUpdate(%d)", n)
	}
	if err := eliminate(p.an, n); err != nil {
		return err
	}
	p.pending.Remove(n)
	if p.pending.Empty() {
		p.cur++
		p.loadSubset()
	}

	return nil
}

// ProvidesFillIns implements Strategy; true with WithFillIns.
func (p *PartialOrdered) ProvidesFillIns() bool { return p.cfg.fillIns }

// ProvidesGraphUpdate implements Strategy; always true.
func (p *PartialOrdered) ProvidesGraphUpdate() bool { return true }

// FillIns implements Strategy.
func (p *PartialOrdered) FillIns() []core.Edge {
	if p.an == nil {
		return nil
	}

	return p.an.FillIns()
}

// Clear implements Strategy. The subsets are kept.
func (p *PartialOrdered) Clear() {
	p.g, p.weights, p.an = nil, nil, nil
	p.cur = 0
	p.pending = treeset.NewWith(byNodeID)
}

// Kind implements Strategy.
func (p *PartialOrdered) Kind() Kind { return KindPartialOrdered }

// Clone implements Strategy.
func (p *PartialOrdered) Clone() Strategy {
	c := NewPartialOrdered(p.subsets)
	c.cfg = p.cfg
	c.Clear()
	if p.an != nil {
		c.g = p.g.Clone()
		c.weights = cloneWeights(p.weights)
		c.an = p.an.Clone(c.g, c.weights)
		c.cur = p.cur
		c.loadSubset()
	}

	return c
}
