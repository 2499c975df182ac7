// SPDX-License-Identifier: MIT
// Package: netrank/builder
//
// impl_compose.go - Isolated(n), Scoped(prefix, cons...) and Disjoint(parts...).
//
// Contract:
//   - Isolated adds n ≥ 1 edgeless vertices.
//   - Scoped runs cons with every emitted ID prefixed by prefix (nested
//     scopes concatenate).
//   - Disjoint scopes part k with "c<k>/", producing one connected
//     component per connected part.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrank/core"
)

// Isolated returns a Constructor adding n vertices without edges.
func Isolated(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodIsolated, n, ErrTooFewVertices)
		}
		return addVertices(MethodIsolated, b, cfg, n)
	}
}

// Scoped returns a Constructor that applies cons under an ID prefix.
func Scoped(prefix string, cons ...Constructor) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		child := cfg
		child.scope = cfg.scope + prefix
		for i, fn := range cons {
			if fn == nil {
				return fmt.Errorf("Scoped(%s): nil constructor at index %d: %w", prefix, i, ErrConstructFailed)
			}
			if err := fn(b, child); err != nil {
				return err
			}
		}
		return nil
	}
}

// Disjoint returns a Constructor placing each part in its own scope.
func Disjoint(parts ...Constructor) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		for k, part := range parts {
			if err := Scoped(fmt.Sprintf("c%d/", k), part)(b, cfg); err != nil {
				return err
			}
		}
		return nil
	}
}
