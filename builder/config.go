// SPDX-License-Identifier: MIT
// Package: netrank/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn   ("0","1","2",...)
//   • rng        = nil           (no randomness unless seeded)
//   • left/right = "L" / "R"
//   • scope      = ""            (set by Scoped/Disjoint only)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE, so Scoped can derive a child config without
// affecting siblings.
type builderConfig struct {
	idFn        IDFn
	rng         *rand.Rand
	leftPrefix  string
	rightPrefix string
	scope       string // prefix applied to every emitted ID
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts in order (last wins) over the defaults.
// Empty bipartite prefixes fall back to the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// id returns the scoped ID of vertex index i.
func (c builderConfig) id(i int) string {
	return c.scope + c.idFn(i)
}

// named returns a fixed ID (hub, grid cell, side label) under the scope.
func (c builderConfig) named(name string) string {
	return c.scope + name
}
