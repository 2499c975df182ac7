// SPDX-License-Identifier: MIT
// Package: netrank/builder
//
// impl_path.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; edges (i-1)-i for i=1..n-1.
//   - Cycle: n ≥ 3; path edges plus the closing (n-1)-0.
//   - Vertices are emitted via cfg.id in ascending index order.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrank/core"
)

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		return emitChain(MethodPath, b, cfg, n, false)
	}
}

// Cycle returns a Constructor for the ring C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		return emitChain(MethodCycle, b, cfg, n, true)
	}
}

func emitChain(method string, b *core.Builder, cfg builderConfig, n int, closed bool) error {
	if err := addVertices(method, b, cfg, n); err != nil {
		return err
	}
	for i := 1; i < n; i++ {
		if err := addEdge(method, b, cfg.id(i-1), cfg.id(i)); err != nil {
			return err
		}
	}
	if closed {
		return addEdge(method, b, cfg.id(n-1), cfg.id(0))
	}
	return nil
}
