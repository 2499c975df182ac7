// SPDX-License-Identifier: MIT
// Package: netrank/builder
//
// impl_grid.go - Grid(rows, cols), the 4-neighborhood lattice.
//
// Contract:
//   - rows, cols ≥ 1 (a 1×1 grid is a single isolated vertex).
//   - IDs are "r,c" (row-major) regardless of cfg.idFn.
//   - For each cell: right neighbor first, then bottom neighbor.
//
// Complexity: O(R·C) vertices + O(R·C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrank/core"
)

const gridIDFmt = "%d,%d"

// Grid returns a Constructor for a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		cell := func(r, c int) string { return cfg.named(fmt.Sprintf(gridIDFmt, r, c)) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err := b.AddNode(cell(r, c)); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", MethodGrid, cell(r, c), err)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addEdge(MethodGrid, b, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(MethodGrid, b, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
