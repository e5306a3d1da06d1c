// SPDX-License-Identifier: MIT
// File: ordered.go
// Role: elimination along a fixed total order.

package elimination

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
)

// Ordered eliminates nodes in a caller-supplied order. It never mutates the
// graph, so ProvidesGraphUpdate is false and the caller materialises cliques.
type Ordered struct {
	g          *core.Graph
	order      []core.NodeID
	idx        int
	eliminated map[core.NodeID]struct{}
}

// NewOrdered returns an unconfigured ordered strategy. order may be nil and
// set later with SetOrder.
func NewOrdered(order []core.NodeID) *Ordered {
	o := &Ordered{}
	if order != nil {
		o.order = append([]core.NodeID(nil), order...)
	}

	return o
}

// SetOrder replaces the elimination order and restarts from its beginning.
//
// Errors:
//   - ErrOrderMismatch: a graph is attached and order is not a permutation
//     of its nodes.
func (o *Ordered) SetOrder(order []core.NodeID) error {
	if o.g != nil {
		if err := checkPermutation(o.g, order); err != nil {
			return err
		}
	}
	o.order = append([]core.NodeID(nil), order...)
	o.reset()

	return nil
}

// SetGraph implements Strategy.
//
// Errors:
//   - core.ErrDomainMismatch: domains does not cover g.
//   - ErrOrderMismatch: the current order is not a permutation of g's nodes.
func (o *Ordered) SetGraph(g *core.Graph, domains core.DomainSizes) error {
	o.g = nil
	if err := domains.Validate(g); err != nil {
		return err
	}
	if err := checkPermutation(g, o.order); err != nil {
		return err
	}
	o.g = g
	o.reset()

	return nil
}

func (o *Ordered) reset() {
	o.idx = 0
	o.eliminated = make(map[core.NodeID]struct{}, len(o.order))
}

// checkPermutation verifies order lists every node of g exactly once.
func checkPermutation(g *core.Graph, order []core.NodeID) error {
	if len(order) != g.NodeCount() {
		return errors.Wrapf(ErrOrderMismatch, "order has %d nodes, graph %d", len(order), g.NodeCount())
	}
	seen := make(map[core.NodeID]struct{}, len(order))
	for _, n := range order {
		if !g.HasNode(n) {
			return errors.Wrapf(ErrOrderMismatch, "node %d not in graph", n)
		}
		if _, dup := seen[n]; dup {
			return errors.Wrapf(ErrOrderMismatch, "node %d repeated", n)
		}
		seen[n] = struct{}{}
	}

	return nil
}

// NextNodeToEliminate implements Strategy: the earliest node of the order
// that is neither eliminated nor missing from the graph.
func (o *Ordered) NextNodeToEliminate() (core.NodeID, error) {
	if o.g == nil {
		return 0, ErrNothingLeft
	}
	for ; o.idx < len(o.order); o.idx++ {
		n := o.order[o.idx]
		if _, done := o.eliminated[n]; !done && o.g.HasNode(n) {
			return n, nil
		}
	}

	return 0, ErrNothingLeft
}

// EliminationUpdate implements Strategy; it only records n.
func (o *Ordered) EliminationUpdate(n core.NodeID) error {
	if o.g == nil {
		return errors.Wrapf(ErrNothingLeft, "EliminationUpdate(%d)", n)
	}
	o.eliminated[n] = struct{}{}

	return nil
}

// ProvidesFillIns implements Strategy; always false.
func (o *Ordered) ProvidesFillIns() bool { return false }

// ProvidesGraphUpdate implements Strategy; always false.
func (o *Ordered) ProvidesGraphUpdate() bool { return false }

// FillIns implements Strategy; always nil.
func (o *Ordered) FillIns() []core.Edge { return nil }

// Clear implements Strategy. The order is kept.
func (o *Ordered) Clear() {
	o.g = nil
	o.reset()
}

// Kind implements Strategy.
func (o *Ordered) Kind() Kind { return KindOrdered }

// Clone implements Strategy.
func (o *Ordered) Clone() Strategy {
	c := NewOrdered(o.order)
	c.idx = o.idx
	c.eliminated = make(map[core.NodeID]struct{}, len(o.eliminated))
	for n := range o.eliminated {
		c.eliminated[n] = struct{}{}
	}
	if o.g != nil {
		c.g = o.g.Clone()
	}

	return c
}
