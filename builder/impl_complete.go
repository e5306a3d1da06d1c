// SPDX-License-Identifier: MIT
// Package: lvjunction/builder
//
// impl_complete.go - Complete(n): K_n, n ≥ 1, edges emitted for i<j.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return errors.Wrapf(ErrTooFewNodes, "%s: n=%d < min=%d", methodComplete, n, minCompleteNodes)
		}
		if err := addNodes(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
