// SPDX-License-Identifier: MIT
// Package: netrank/builder
//
// impl_random_regular.go - RandomRegular(n, d) by stub matching.
//
// Contract:
//   - n ≥ 1, 0 ≤ d < n, n·d even.
//   - cfg.rng is required.
//   - Up to maxStubMatchingAttempts shuffles; a pairing with a self-loop or
//     a repeated pair is rejected as a whole. Exhaustion → ErrConstructFailed.
//
// Complexity: O(n·d) per attempt.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrank/core"
)

// maxStubMatchingAttempts bounds the reshuffles. The acceptance rate of a
// uniform pairing is about exp(-(d²-1)/4), so small d succeeds quickly.
const maxStubMatchingAttempts = 64

// RandomRegular returns a Constructor for a random simple d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomRegular, n, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomRegular, ErrNeedRandSource)
		}
		if err := addVertices(MethodRandomRegular, b, cfg, n); err != nil {
			return err
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := addEdge(MethodRandomRegular, b, cfg.id(stubs[i]), cfg.id(stubs[i+1])); err != nil {
					return err
				}
			}
			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}
	return true
}
