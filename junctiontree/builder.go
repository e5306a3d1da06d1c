// SPDX-License-Identifier: MIT
// File: builder.go
// Role: elimination tree -> junction tree merge pass.

package junctiontree

import (
	"errors"

	"github.com/plan-systems/klog"
	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/cliquegraph"
	"github.com/katalvlaran/lvjunction/core"
)

// ErrNoTriangulation is returned when results are requested before
// SetTriangulation.
var ErrNoTriangulation = errors.New("junctiontree: no triangulation attached")

// Source is what the builder needs from a triangulation.
// *triangulation.Triangulation satisfies it.
type Source interface {
	EliminationOrder() ([]core.NodeID, error)
	EliminationTree() (*cliquegraph.Graph, error)
}

// Builder computes and caches a junction tree.
type Builder struct {
	method  Method
	src     Source
	jt      *cliquegraph.Graph
	created map[core.NodeID]core.NodeID
}

// New returns a builder with no triangulation attached.
func New(opts ...Option) *Builder {
	b := &Builder{method: MethodMerge}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewFrom returns a builder attached to src.
func NewFrom(src Source, opts ...Option) *Builder {
	b := New(opts...)
	b.SetTriangulation(src)

	return b
}

// SetTriangulation attaches src and drops cached results.
func (b *Builder) SetTriangulation(src Source) {
	b.src = src
	b.Clear()
}

// Clear drops cached results; the triangulation stays attached.
func (b *Builder) Clear() {
	b.jt = nil
	b.created = nil
}

// JunctionTree returns a copy of the junction tree. Clique IDs are the
// nodes whose elimination created the surviving cliques.
func (b *Builder) JunctionTree() (*cliquegraph.Graph, error) {
	if err := b.build(); err != nil {
		return nil, err
	}

	return b.jt.Clone(), nil
}

// CreatedClique returns the junction-tree clique that holds node n: the
// clique n's elimination created, or the one it was merged into.
//
// Errors:
//   - core.ErrNodeNotFound: n was not eliminated by the triangulation.
func (b *Builder) CreatedClique(n core.NodeID) (core.NodeID, error) {
	if err := b.build(); err != nil {
		return 0, err
	}
	id, ok := b.created[n]
	if !ok {
		return 0, pkgerrors.Wrapf(core.ErrNodeNotFound, "CreatedClique(%d)", n)
	}

	return id, nil
}

// CreatedCliques returns a copy of the node -> clique map.
func (b *Builder) CreatedCliques() (map[core.NodeID]core.NodeID, error) {
	if err := b.build(); err != nil {
		return nil, err
	}
	out := make(map[core.NodeID]core.NodeID, len(b.created))
	for n, id := range b.created {
		out[n] = id
	}

	return out, nil
}

func (b *Builder) build() error {
	if b.src == nil {
		return ErrNoTriangulation
	}
	if b.jt != nil {
		return nil
	}
	order, err := b.src.EliminationOrder()
	if err != nil {
		return pkgerrors.Wrap(err, "junctiontree: elimination order")
	}
	tree, err := b.src.EliminationTree()
	if err != nil {
		return pkgerrors.Wrap(err, "junctiontree: elimination tree")
	}

	var created map[core.NodeID]core.NodeID
	if b.method == MethodSpanning {
		tree, created = spanning(tree, order)
	} else {
		sub, err := merge(tree, order)
		if err != nil {
			return err
		}
		created = make(map[core.NodeID]core.NodeID, len(order))
		for _, n := range order {
			created[n] = resolve(sub, n)
		}
	}
	b.jt, b.created = tree, created
	klog.V(2).Infof("junctiontree: %s built %d cliques from %d created, %d edges", b.method, tree.CliqueCount(), len(order), tree.EdgeCount())

	return nil
}

// merge folds subsumed cliques of tree into their neighbours in place and
// returns the substitution map merged -> absorber.
//
// Implementation:
//   - Stage 1: Visit cliques by decreasing creation index.
//   - Stage 2: Find the first neighbour P, in id order, created earlier,
//     linked by an unmarked edge, one node larger and a superset of C.
//   - Stage 3: Relink C's other neighbours to P, mark those edges, drop C.
//
// Complexity: O(C·(d·k)) for C cliques of degree d and size k.
func merge(tree *cliquegraph.Graph, order []core.NodeID) (map[core.NodeID]core.NodeID, error) {
	pos := make(map[core.NodeID]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	marked := core.NewEdgeSet()
	sub := make(map[core.NodeID]core.NodeID)

	for i := len(order) - 1; i >= 0; i-- {
		c := order[i]
		nbrs, err := tree.Neighbors(c)
		if err != nil {
			return nil, pkgerrors.Wrap(err, "junctiontree: merge")
		}
		p, ok := absorber(tree, c, i, nbrs, pos, marked)
		if !ok {
			continue
		}
		for _, q := range nbrs {
			if q == p {
				continue
			}
			if err = tree.AddEdge(p, q); err != nil {
				return nil, pkgerrors.Wrap(err, "junctiontree: relink")
			}
			marked.Add(core.NewEdge(p, q))
		}
		tree.RemoveClique(c)
		sub[c] = p
		klog.V(4).Infof("junctiontree: clique %d merged into %d", c, p)
	}

	return sub, nil
}

func absorber(tree *cliquegraph.Graph, c core.NodeID, i int, nbrs []core.NodeID,
	pos map[core.NodeID]int, marked core.EdgeSet) (core.NodeID, bool) {
	size := tree.Size(c)
	members, _ := tree.Clique(c)
	for _, p := range nbrs {
		if pos[p] >= i || marked.Has(c, p) || tree.Size(p) != size+1 {
			continue
		}
		subset := true
		for _, m := range members {
			if !tree.Contains(p, m) {
				subset = false
				break
			}
		}
		if subset {
			return p, true
		}
	}

	return 0, false
}

// resolve follows the substitution chain from n's own clique.
func resolve(sub map[core.NodeID]core.NodeID, n core.NodeID) core.NodeID {
	for {
		next, ok := sub[n]
		if !ok {
			return n
		}
		n = next
	}
}
