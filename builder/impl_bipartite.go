// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// impl_bipartite.go — deterministic topologies:
// CompleteBipartite, Star, DisjointPairs, Staircase.
//
// Determinism:
//   • Edge emission order is documented per constructor (left asc, then right).

package builder

import (
	"fmt"
)

// Method tags used as error prefixes.
const (
	methodCompleteBipartite = "CompleteBipartite"
	methodStar              = "Star"
	methodDisjointPairs     = "DisjointPairs"
	methodStaircase         = "Staircase"

	minPartitionSize = 1
)

// CompleteBipartite emits K_{n1,n2}: every L_i — R_j, i asc then j asc.
// Maximum matching: min(n1, n2).
// Complexity: O(n1·n2).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		s.reserve(n1, n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				s.link(i, j)
			}
		}

		return nil
	}
}

// Star emits one left vertex joined to n right vertices.
// Maximum matching: 1.
func Star(n int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if n < minPartitionSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minPartitionSize, ErrTooFewVertices)
		}
		s.reserve(1, n)
		for j := 0; j < n; j++ {
			s.link(0, j)
		}

		return nil
	}
}

// DisjointPairs emits n independent edges L_i — R_i.
// Maximum matching: n (the edge set itself).
func DisjointPairs(n int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if n < minPartitionSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodDisjointPairs, n, minPartitionSize, ErrTooFewVertices)
		}
		s.reserve(n, n)
		for i := 0; i < n; i++ {
			s.link(i, i)
		}

		return nil
	}
}

// Staircase emits, for i asc, L_i — R_{i+1} (when i+1 < n) followed by
// L_i — R_i. Processing left vertices and their edges in that order, the
// first round matches L_i to R_{i+1} and strands L_{n-1}; the only way out
// is the single augmenting path
//
//	L_{n-1} R_{n-1} L_{n-2} R_{n-2} … L_0 R_0
//
// of 2n-1 edges. Maximum matching: n, reached in exactly two rounds when
// n ≥ 2.
func Staircase(n int) Constructor {
	return func(s *edgeSink, cfg builderConfig) error {
		if n < minPartitionSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStaircase, n, minPartitionSize, ErrTooFewVertices)
		}
		s.reserve(n, n)
		for i := 0; i < n; i++ {
			if i+1 < n {
				s.link(i, i+1)
			}
			s.link(i, i)
		}

		return nil
	}
}
