// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_random.go — stochastic topologies:
// RandomBipartite, PlantedPerfect, Lopsided.
//
// Contract:
//   • Validation (sizes, probability) precedes the RNG check.
//   • Edges drawn at random may repeat; repeats are valid matching input and
//     exercise duplicate collapsing downstream.
//   • Fixed seed + options ⇒ identical output (fixed trial order).

package builder

import (
	"fmt"
)

const (
	methodRandomBipartite = "RandomBipartite"
	methodPlantedPerfect  = "PlantedPerfect"
	methodLopsided        = "Lopsided"

	probMin = 0.0
	probMax = 1.0
)

// RandomBipartite includes every cross pair (L_i, R_j) independently with
// probability p, trials in i asc, j asc order.
// p ∈ {0, 1} needs no RNG; 0 < p < 1 does.
// Complexity: O(n1·n2) trials.
func RandomBipartite(n1, n2 int, p float64) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodRandomBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomBipartite, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomBipartite, ErrNeedRandSource)
		}

		s.reserve(n1, n2)
		if p == probMin {
			return nil
		}
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if p == probMax || cfg.rng.Float64() < p {
					s.link(i, j)
				}
			}
		}

		return nil
	}
}

// PlantedPerfect emits the perfect matching L_i — R_i (i asc) and then extra
// uniformly random pairs over the same n×n vertices.
// Maximum matching: n.
func PlantedPerfect(n, extra int) Constructor {
	return planted(methodPlantedPerfect, n, extra, 1)
}

// Lopsided is PlantedPerfect with a right partition of 2n vertices; the extra
// pairs land anywhere on that wider side.
// Maximum matching: n (the left side is the bottleneck).
func Lopsided(n, extra int) Constructor {
	return planted(methodLopsided, n, extra, 2)
}

// planted implements PlantedPerfect/Lopsided with a right side of
// widen·n vertices.
func planted(method string, n, extra, widen int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if n < minPartitionSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minPartitionSize, ErrTooFewVertices)
		}
		if extra < 0 {
			return fmt.Errorf("%s: extra=%d < 0: %w", method, extra, ErrBadSize)
		}
		if extra > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
		}

		width := widen * n
		s.reserve(n, width)
		for i := 0; i < n; i++ {
			s.link(i, i)
		}
		for k := 0; k < extra; k++ {
			s.link(cfg.rng.Intn(n), cfg.rng.Intn(width))
		}

		return nil
	}
}
