// SPDX-License-Identifier: MIT
// Package: netrank/builder
//
// api.go - public entry point and shared emission helpers.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons
//     in order against a fresh core.Builder, then freezes it.
//   - Determinism: same options, seed and constructor order ⇒ identical
//     graphs, node index order included.
//   - Safety: constructors never panic; they return wrapped sentinels.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrank/core"
)

// Constructor adds one topology to b using the resolved config.
// Constructors validate parameters before emitting anything.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph applies cons in order and returns the frozen graph.
// Constructor errors are wrapped as "BuildGraph: %w"; a nil constructor
// yields ErrConstructFailed. With no vertices emitted the result is
// core.ErrEmptyGraph.
//
// Complexity: Σ cost of constructors + O(n + m log Δ) for the freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// MustBuild is BuildGraph for fixtures whose parameters are known valid.
// It panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}
	return g
}

// addVertices registers cfg.id(0..n-1) in index order.
func addVertices(method string, b *core.Builder, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.id(i)
		if _, err := b.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}
	return nil
}

// addEdge records u-v with method context on failure.
func addEdge(method string, b *core.Builder, u, v string) error {
	if err := b.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s): %w", method, u, v, err)
	}
	return nil
}
