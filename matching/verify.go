// SPDX-License-Identifier: MIT

package matching

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/bimatch/core"
)

// Verify checks that m is a matching of the graph given by edges:
// every edge of m occurs in edges, and no left or right vertex is used twice.
// It says nothing about maximality; see Certify for that.
//
// Errors:
//   - ErrNotSubset    if m contains an edge absent from edges.
//   - ErrVertexReused if a vertex is covered by two edges of m.
//
// Complexity: O(len(edges) + len(m)) expected.
func Verify[L, R comparable](edges, m []core.Edge[L, R]) error {
	input := mapset.NewThreadUnsafeSet(edges...)
	lefts := mapset.NewThreadUnsafeSet[L]()
	rights := mapset.NewThreadUnsafeSet[R]()

	for i, e := range m {
		if !input.Contains(e) {
			return fmt.Errorf("Verify: edge #%d (%v,%v): %w", i, e.Left, e.Right, ErrNotSubset)
		}
		if !lefts.Add(e.Left) {
			return fmt.Errorf("Verify: left vertex %v at edge #%d: %w", e.Left, i, ErrVertexReused)
		}
		if !rights.Add(e.Right) {
			return fmt.Errorf("Verify: right vertex %v at edge #%d: %w", e.Right, i, ErrVertexReused)
		}
	}

	return nil
}

// Certify checks that pairs is a maximum matching of g.
//
// Steps:
//  1. Load pairs into a fresh matching state, rejecting out-of-range
//     indices, non-edges and reused vertices.
//  2. Run one BFS layering. By Berge's theorem the matching is maximum iff
//     no free right vertex is reachable from the free left frontier.
//
// Errors:
//   - core.ErrVertexOutOfRange, ErrNotSubset, ErrVertexReused for an invalid
//     matching.
//   - ErrAugmentingPath if the matching is valid but can still grow; the
//     message carries the length of the shortest augmenting path.
//
// Complexity: O(V + E).
func Certify[L, R comparable](g *core.Graph[L, R], pairs []core.Pair) error {
	e := newEngine(g, DefaultOptions())
	nl, nr := g.LeftCount(), g.RightCount()

	for i, p := range pairs {
		if p.Left < 0 || p.Left >= nl || p.Right < 0 || p.Right >= nr {
			return fmt.Errorf("Certify: pair #%d (%d,%d) outside %dx%d: %w",
				i, p.Left, p.Right, nl, nr, core.ErrVertexOutOfRange)
		}
		if !g.HasEdge(p.Left, p.Right) {
			return fmt.Errorf("Certify: pair #%d (%d,%d): %w", i, p.Left, p.Right, ErrNotSubset)
		}
		if e.pairLeft[p.Left] != unmatched || e.pairRight[p.Right] != unmatched {
			return fmt.Errorf("Certify: pair #%d (%d,%d): %w", i, p.Left, p.Right, ErrVertexReused)
		}
		e.pairLeft[p.Left] = p.Right
		e.pairRight[p.Right] = p.Left
	}

	if e.layer() {
		return fmt.Errorf("Certify: shortest augmenting path has %d edges: %w",
			2*e.freeLayer-1, ErrAugmentingPath)
	}

	return nil
}
