// SPDX-License-Identifier: MIT
// File: types.go
// Role: Class, Info, sentinel errors and the (weight,id) tree key.

package simplicial

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/katalvlaran/lvjunction/core"
)

var (
	// ErrEmptyClass is returned by Best* when the class holds no node.
	ErrEmptyClass = errors.New("simplicial: no node in class")

	// ErrNodeNotFound is returned for a node absent from the analysed graph.
	ErrNodeNotFound = errors.New("simplicial: node not found")

	// ErrNotClique is returned by EraseClique when the node's neighbours are
	// not pairwise adjacent (MakeClique was not called first).
	ErrNotClique = errors.New("simplicial: neighbourhood is not a clique")
)

// Class is the elimination class of a node.
type Class int

const (
	// None: no cheap elimination known; only the min-weight fallback applies.
	None Class = iota
	// Simplicial: neighbours form a clique.
	Simplicial
	// AlmostSimplicial: all neighbours but one form a clique.
	AlmostSimplicial
	// QuasiSimplicial: neighbours nearly form a clique.
	QuasiSimplicial
)

func (c Class) String() string {
	switch c {
	case None:
		return "none"
	case Simplicial:
		return "simplicial"
	case AlmostSimplicial:
		return "almost-simplicial"
	case QuasiSimplicial:
		return "quasi-simplicial"
	default:
		return fmt.Sprintf("Class(%d)", int(c))
	}
}

// Info is the classification of one node.
type Info struct {
	Class Class
	// CliqueWeight is the log weight of the node plus its neighbours.
	CliqueWeight float64
	// MissingEdges counts neighbour pairs that are not adjacent, i.e. the
	// fill-in eliminating the node now would add.
	MissingEdges int
}

// key orders tree entries by clique weight, then id.
type key struct {
	weight float64
	id     core.NodeID
}

func byWeightThenID(a, b interface{}) int {
	ka, kb := a.(key), b.(key)
	switch {
	case ka.weight < kb.weight:
		return -1
	case ka.weight > kb.weight:
		return 1
	case ka.id < kb.id:
		return -1
	case ka.id > kb.id:
		return 1
	default:
		return 0
	}
}

func newTree() *redblacktree.Tree { return redblacktree.NewWith(byWeightThenID) }

// nodeState is what the analyzer remembers per node.
type nodeState struct {
	Info
	// structural is true when the node has the shape of an almost/quasi
	// simplicial node but failed the weight bound; it then waits in the
	// expensive tree until the tree width grows.
	structural bool
}
