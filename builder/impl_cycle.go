// SPDX-License-Identifier: MIT
// Package: lvjunction/builder
//
// impl_cycle.go - Cycle(n) and Wheel(n).
//
// Contract:
//   - Cycle: n ≥ 3, ring 0-1-...-(n-1)-0.
//   - Wheel: n ≥ 4, hub index 0 joined to the ring 1..n-1.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
)

const (
	methodCycle   = "Cycle"
	methodWheel   = "Wheel"
	minCycleNodes = 3
	minWheelNodes = 4
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return errors.Wrapf(ErrTooFewNodes, "%s: n=%d < min=%d", methodCycle, n, minCycleNodes)
		}
		if err := addNodes(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a hub plus a ring of n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return errors.Wrapf(ErrTooFewNodes, "%s: n=%d < min=%d", methodWheel, n, minWheelNodes)
		}
		if err := addNodes(g, cfg, methodWheel, n); err != nil {
			return err
		}
		ring := n - 1
		for i := 1; i <= ring; i++ {
			next := i%ring + 1
			if err := addEdge(g, cfg, methodWheel, i, next); err != nil {
				return err
			}
			if err := addEdge(g, cfg, methodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
