// SPDX-License-Identifier: MIT
// Package: netrank/builder
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi G(n,p) sample.
//
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - cfg.rng is required when 0 < p < 1; p ∈ {0,1} is deterministic.
//   - Trials run over unordered pairs in (i asc, j>i asc) order, so a fixed
//     seed reproduces the same edge set.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrank/core"
)

// RandomSparse returns a Constructor sampling G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(MethodRandomSparse, b, cfg, n); err != nil {
			return err
		}
		if p == 0 {
			return nil
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < 1 && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(MethodRandomSparse, b, cfg.id(i), cfg.id(j)); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
