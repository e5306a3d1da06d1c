// SPDX-License-Identifier: MIT
// File: strategy.go
// Role: Strategy contract, Kind tag and sentinel errors.

package elimination

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvjunction/core"
)

var (
	// ErrNothingLeft is returned by NextNodeToEliminate when no graph is
	// attached or every node has been eliminated.
	ErrNothingLeft = errors.New("elimination: nothing left to eliminate")

	// ErrOrderMismatch is returned when a supplied order does not cover the
	// graph's nodes exactly once.
	ErrOrderMismatch = errors.New("elimination: order does not match graph nodes")
)

// Kind tags the elimination policy.
type Kind int

const (
	// KindHeuristic is the simplicial/min-weight heuristic.
	KindHeuristic Kind = iota
	// KindOrdered follows a fixed total order.
	KindOrdered
	// KindPartialOrdered follows a sequence of node subsets.
	KindPartialOrdered
)

func (k Kind) String() string {
	switch k {
	case KindHeuristic:
		return "heuristic"
	case KindOrdered:
		return "ordered"
	case KindPartialOrdered:
		return "partial-ordered"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Strategy selects elimination nodes one at a time.
type Strategy interface {
	// SetGraph attaches g, which the strategy may mutate, and the domain
	// sizes of its nodes. Any previous state is dropped.
	SetGraph(g *core.Graph, domains core.DomainSizes) error
	// NextNodeToEliminate returns the node to eliminate now.
	NextNodeToEliminate() (core.NodeID, error)
	// EliminationUpdate reports that n has been eliminated.
	EliminationUpdate(n core.NodeID) error
	// ProvidesFillIns reports whether FillIns lists every edge added so far.
	ProvidesFillIns() bool
	// ProvidesGraphUpdate reports whether EliminationUpdate materialises the
	// clique of n and removes n from the graph.
	ProvidesGraphUpdate() bool
	// FillIns returns the edges added so far, sorted.
	FillIns() []core.Edge
	// Clear returns the strategy to its unconfigured state.
	Clear()
	// Kind tags the policy.
	Kind() Kind
	// Clone returns an independent copy, including a copy of the attached
	// graph.
	Clone() Strategy
}
