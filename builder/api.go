// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// api.go — the BuildEdges orchestrator and the Constructor contract.
//
// Design contract:
//   • One orchestrator: BuildEdges(bopts, cons...). Resolves cfg once, runs
//     cons in order, concatenates their edges.
//   • Constructors occupy disjoint vertex ranges: each starts numbering after
//     the previous one's reserved partition sizes.
//   • Determinism: same options, seed and constructor order ⇒ same edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// Constructor appends one topology's edges to the sink. Constructors MUST:
//   - validate parameters before emitting anything and return sentinel errors;
//   - call reserve once with their partition sizes, then link pairs inside
//     those sizes;
//   - draw randomness only from cfg.rng.
type Constructor func(s *edgeSink, cfg builderConfig) error

// edgeSink collects edges and hands out disjoint vertex ranges.
type edgeSink struct {
	edges     []core.Edge[string, string]
	leftBase  int // first global left index of the running constructor
	rightBase int // first global right index of the running constructor
	nLeft     int // left vertices reserved by the running constructor
	nRight    int // right vertices reserved by the running constructor
	cfg       builderConfig
}

// reserve declares the partition sizes of the running constructor.
func (s *edgeSink) reserve(nLeft, nRight int) {
	s.nLeft, s.nRight = nLeft, nRight
}

// link emits the edge between local left i and local right j.
func (s *edgeSink) link(i, j int) {
	s.edges = append(s.edges, core.Edge[string, string]{
		Left:  s.cfg.leftID(s.leftBase + i),
		Right: s.cfg.rightID(s.rightBase + j),
	})
}

// commit moves the bases past the running constructor's ranges.
func (s *edgeSink) commit() {
	s.leftBase += s.nLeft
	s.rightBase += s.nRight
	s.nLeft, s.nRight = 0, 0
}

// BuildEdges resolves bopts and applies every constructor in order.
// Any constructor error is wrapped as "BuildEdges: %w" and returned at once;
// no partial edge list is returned.
//
// Complexity: Σ cost of the constructors, plus O(E) for WithShuffle.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) ([]core.Edge[string, string], error) {
	cfg := newBuilderConfig(bopts...)
	s := &edgeSink{cfg: cfg}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
		s.commit()
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return nil, fmt.Errorf("BuildEdges: shuffle: %w", ErrNeedRandSource)
		}
		cfg.rng.Shuffle(len(s.edges), func(i, j int) {
			s.edges[i], s.edges[j] = s.edges[j], s.edges[i]
		})
	}

	return s.edges, nil
}
