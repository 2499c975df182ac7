// SPDX-License-Identifier: MIT
// Package: netrank/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   - Complete: n ≥ 1; every pair i<j joined, emitted i asc then j asc.
//   - CompleteBipartite: n1, n2 ≥ 1; left IDs cfg.leftPrefix+idx, right IDs
//     cfg.rightPrefix+idx; all left vertices precede right ones.
//
// Complexity: O(n²) and O(n1·n2) edges respectively.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/netrank/core"
)

// Complete returns a Constructor for K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < MinCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodComplete, n, MinCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(MethodComplete, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(MethodComplete, b, cfg.id(i), cfg.id(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n1 < MinPartition || n2 < MinPartition {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				MethodCompleteBipartite, n1, n2, MinPartition, ErrTooFewVertices)
		}
		left := make([]string, n1)
		right := make([]string, n2)
		for i := range left {
			left[i] = cfg.named(cfg.leftPrefix + strconv.Itoa(i))
		}
		for j := range right {
			right[j] = cfg.named(cfg.rightPrefix + strconv.Itoa(j))
		}
		for _, id := range append(append([]string{}, left...), right...) {
			if _, err := b.AddNode(id); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", MethodCompleteBipartite, id, err)
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := addEdge(MethodCompleteBipartite, b, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
