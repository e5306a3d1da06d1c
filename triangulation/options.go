// SPDX-License-Identifier: MIT
// File: options.go
// Role: functional options for Triangulation.

package triangulation

import "github.com/katalvlaran/lvjunction/core"

// Step describes one elimination, as seen by WithOnEliminate hooks.
type Step struct {
	// Index is the position of Node in the elimination order.
	Index int
	// Node is the eliminated node.
	Node core.NodeID
	// Clique is Node plus its neighbours at elimination time, sorted.
	Clique []core.NodeID
	// FillIns are the edges this step added, sorted.
	FillIns []core.Edge
}

// Option configures a Triangulation.
type Option func(*config)

type config struct {
	onEliminate func(Step) error
}

// WithOnEliminate installs a hook called after every elimination step. A
// non-nil error from fn aborts the run and is returned by Run.
// Panics if fn is nil.
func WithOnEliminate(fn func(Step) error) Option {
	if fn == nil {
		panic("triangulation: WithOnEliminate(nil)")
	}

	return func(c *config) { c.onEliminate = fn }
}
