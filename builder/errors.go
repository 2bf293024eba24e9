// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Constructors attach method context with %w ("Star: n=0 < min=1: ...").
//   • Option constructors (WithX) panic on meaningless input instead.

package builder

import "errors"

// ErrTooFewVertices indicates a partition size below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a negative count for a non-topology size (extra edges).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic step ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildEdges could not run a constructor at all
// (e.g. a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
