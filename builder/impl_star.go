// SPDX-License-Identifier: MIT
// Package: netrank/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Star: n ≥ 2 total vertices; hub CenterVertexID first, then leaves
//     cfg.id(0..n-2), each joined to the hub.
//   - Wheel: n ≥ 4; a Cycle over cfg.id(0..n-2) plus hub spokes.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrank/core"
)

// Star returns a Constructor for the star K_{1,n-1}.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		return emitHub(MethodStar, b, cfg, n-1, false)
	}
}

// Wheel returns a Constructor for W_n, a ring of n-1 vertices around a hub.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		return emitHub(MethodWheel, b, cfg, n-1, true)
	}
}

func emitHub(method string, b *core.Builder, cfg builderConfig, rim int, ring bool) error {
	hub := cfg.named(CenterVertexID)
	if _, err := b.AddNode(hub); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, hub, err)
	}
	if ring {
		if err := emitChain(method, b, cfg, rim, true); err != nil {
			return err
		}
	} else if err := addVertices(method, b, cfg, rim); err != nil {
		return err
	}
	for i := 0; i < rim; i++ {
		if err := addEdge(method, b, hub, cfg.id(i)); err != nil {
			return err
		}
	}
	return nil
}
