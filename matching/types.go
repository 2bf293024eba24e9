// SPDX-License-Identifier: MIT

package matching

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/core"
)

// Sentinel errors reported by Verify and Certify.
var (
	// ErrNotSubset is returned when a matching uses an edge absent from the input.
	ErrNotSubset = errors.New("matching: edge not in graph")

	// ErrVertexReused is returned when a vertex appears in more than one matched edge.
	ErrVertexReused = errors.New("matching: vertex matched twice")

	// ErrAugmentingPath is returned when an augmenting path still exists,
	// i.e. the matching is valid but not maximum.
	ErrAugmentingPath = errors.New("matching: augmenting path exists")
)

const (
	unmatched = -1          // pairLeft/pairRight value for a free vertex
	infinity  = math.MaxInt // dist value for "not layered" or "consumed"
	unbounded = math.MaxInt // limit used when no bound is set
)

// Option configures a matching run via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a matching run.
type Options struct {
	// Logger receives one Debug record per phase and one on termination.
	Logger *zap.Logger

	// OnPhase is called after every completed BFS+DFS round.
	OnPhase func(PhaseInfo)

	// OnAugment is called after every successful augmentation.
	OnAugment func(AugmentInfo)

	// Bound, when bounded is set, stops the phase loop as soon as the
	// matching size exceeds it.
	Bound int

	bounded bool
}

// PhaseInfo describes one completed round of the phase loop.
type PhaseInfo struct {
	Phase      int // 1-based round number
	PathLength int // edge length of the shortest augmenting paths of this round
	Augmented  int // augmentations performed in this round
	Size       int // matching size after the round
}

// AugmentInfo describes one successful augmentation.
type AugmentInfo struct {
	Phase  int // round in which the augmentation happened
	Root   int // free left index the path started from
	Free   int // free right index the path ended at
	Length int // path length in edges (always odd)
	Size   int // matching size after the flip
}

// Stats summarizes the work done by one run.
type Stats struct {
	Phases        int // BFS layerings that found an augmenting path
	Augmentations int // successful path flips (== final size)
	LongestPath   int // longest augmenting path flipped, in edges
}

// Result is the index-space outcome of Solve.
type Result struct {
	// Pairs lists matched (left, right) index pairs by ascending left index.
	// It is nil for size-only runs.
	Pairs []core.Pair

	// Size is the number of matched pairs.
	Size int

	// Truncated reports that a bound stopped the loop before it proved the
	// matching maximum.
	Truncated bool

	// Stats carries per-run counters.
	Stats Stats
}

// DefaultOptions returns Options with:
//   - a no-op zap logger
//   - no-op OnPhase and OnAugment hooks
//   - no bound.
func DefaultOptions() Options {
	return Options{
		Logger:    zap.NewNop(),
		OnPhase:   func(PhaseInfo) {},
		OnAugment: func(AugmentInfo) {},
	}
}

// WithLogger routes phase diagnostics to l. A nil logger keeps the default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPhase registers a callback run after each round.
func WithOnPhase(fn func(PhaseInfo)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// WithOnAugment registers a callback run after each augmentation.
func WithOnAugment(fn func(AugmentInfo)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithBound stops the phase loop once the matching size exceeds b.
//
//	b ≥ maximum: the run is unaffected and returns a maximum matching.
//	0 ≤ b < maximum: the first matching of size > b is returned.
//	b < 0: the empty matching already exceeds b and is returned at once.
func WithBound(b int) Option {
	return func(o *Options) {
		o.Bound = b
		o.bounded = true
	}
}

// resolve applies opts over DefaultOptions.
func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// limit converts the bound settings into the engine's stop threshold.
func (o Options) limit() int {
	if !o.bounded {
		return unbounded
	}

	return o.Bound
}
