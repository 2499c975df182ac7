// SPDX-License-Identifier: MIT
// Package: netrank/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with %w ("Path: n=1 < min=2: ...").
//   • Option constructors (WithX) panic on programmer error instead.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, degree)
// is below the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a stochastic
// construction that exhausted its retries.
var ErrConstructFailed = errors.New("builder: construction failed")
