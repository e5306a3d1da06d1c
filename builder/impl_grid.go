// SPDX-License-Identifier: MIT
// Package: lvjunction/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbourhood lattice.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1, rows*cols ≥ 2.
//   - Index of cell (r,c) is r*cols + c (row-major).
//   - Emits right neighbour then down neighbour, row-major.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvjunction/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
	minGridSize = 2
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide || rows*cols < minGridSize {
			return errors.Wrapf(ErrTooFewNodes, "%s: rows=%d cols=%d", methodGrid, rows, cols)
		}
		if err := addNodes(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
