// SPDX-License-Identifier: MIT
// File: accessors.go
// Role: lazy result accessors; each runs the triangulation on first use.

package triangulation

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/cliquegraph"
	"github.com/katalvlaran/lvjunction/core"
)

// EliminationOrder returns the eliminated nodes in order.
func (t *Triangulation) EliminationOrder() ([]core.NodeID, error) {
	if err := t.Run(); err != nil {
		return nil, err
	}

	return append([]core.NodeID(nil), t.order...), nil
}

// EliminationIndex returns the position of n in the elimination order.
//
// Errors:
//   - core.ErrNodeNotFound: n is not a node of the graph.
func (t *Triangulation) EliminationIndex(n core.NodeID) (int, error) {
	if err := t.Run(); err != nil {
		return 0, err
	}
	i, ok := t.index[n]
	if !ok {
		return 0, pkgerrors.Wrapf(core.ErrNodeNotFound, "EliminationIndex(%d)", n)
	}

	return i, nil
}

// CreatedClique returns the clique created by eliminating n, sorted.
//
// Errors:
//   - core.ErrNodeNotFound: n is not a node of the graph.
func (t *Triangulation) CreatedClique(n core.NodeID) ([]core.NodeID, error) {
	if err := t.Run(); err != nil {
		return nil, err
	}
	c, ok := t.cliques[n]
	if !ok {
		return nil, pkgerrors.Wrapf(core.ErrNodeNotFound, "CreatedClique(%d)", n)
	}

	return append([]core.NodeID(nil), c...), nil
}

// FillIns returns every fill-in edge, sorted.
func (t *Triangulation) FillIns() ([]core.Edge, error) {
	if err := t.Run(); err != nil {
		return nil, err
	}

	return t.fillIns.Sorted(), nil
}

// EliminationTree returns a copy of the elimination tree. Clique IDs are
// the creating nodes.
func (t *Triangulation) EliminationTree() (*cliquegraph.Graph, error) {
	if err := t.Run(); err != nil {
		return nil, err
	}

	return t.elimTree.Clone(), nil
}

// TriangulatedGraph returns a copy of the input graph with its fill-ins.
func (t *Triangulation) TriangulatedGraph() (*core.Graph, error) {
	if err := t.Run(); err != nil {
		return nil, err
	}

	return t.triangulated.Clone(), nil
}

// MaxLog10CliqueDomainProduct returns the largest log10 of the product of
// domain sizes over created cliques, a measure of inference cost.
func (t *Triangulation) MaxLog10CliqueDomainProduct() (float64, error) {
	if err := t.Run(); err != nil {
		return 0, err
	}

	return t.maxLog10, nil
}
