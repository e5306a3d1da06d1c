// SPDX-License-Identifier: MIT
// Package: lvjunction/builder
//
// impl_path.go - Path(n) and Star(n).
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)-i for i=1..n-1.
//   - Star: n ≥ 2, centre is index 0, leaves 1..n-1.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
)

const (
	methodPath   = "Path"
	methodStar   = "Star"
	minPathNodes = 2
	minStarNodes = 2
)

// Path returns a Constructor that builds the chain P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return errors.Wrapf(ErrTooFewNodes, "%s: n=%d < min=%d", methodPath, n, minPathNodes)
		}
		if err := addNodes(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that builds K_{1,n-1} centred on index 0.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return errors.Wrapf(ErrTooFewNodes, "%s: n=%d < min=%d", methodStar, n, minStarNodes)
		}
		if err := addNodes(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
