// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: the public variants (plain/mapped × maximum/bounded × edges/size).
// Policy:
//   - Every variant is a thin dispatch over solve(); none owns an algorithm.
//   - All variants are total: any edge slice, nil included, is valid input.

package matching

import (
	"github.com/katalvlaran/bimatch/core"
)

// Maximum returns a maximum matching of the bipartite graph given by edges,
// as a subset of those edges, ordered by first appearance of the left vertex.
//
// When several maximum matchings exist, which one is returned is
// deterministic for a given input order but otherwise unspecified.
//
// Complexity: O(E·√V) time, O(V + E) memory.
func Maximum[L, R comparable](edges []core.Edge[L, R], opts ...Option) []core.Edge[L, R] {
	g := core.NewGraph(edges)

	return project(g, solve(g, resolve(opts), true).Pairs)
}

// MaximumMapped is Maximum without per-edge value copies: the result stays in
// index space and resolves identities through the Graph it carries.
func MaximumMapped[L, R comparable](edges []core.Edge[L, R], opts ...Option) *Mapped[L, R] {
	g := core.NewGraph(edges)

	return &Mapped[L, R]{graph: g, result: solve(g, resolve(opts), true)}
}

// Size returns the cardinality of a maximum matching of edges.
// No matched edges are materialized.
func Size[L, R comparable](edges []core.Edge[L, R], opts ...Option) int {
	return solve(core.NewGraph(edges), resolve(opts), false).Size
}

// Bounded returns a maximum matching if its size is at most bound; otherwise
// it returns the first matching found whose size exceeds bound. That matching
// is neither guaranteed maximum nor of size exactly bound+1.
func Bounded[L, R comparable](edges []core.Edge[L, R], bound int, opts ...Option) []core.Edge[L, R] {
	g := core.NewGraph(edges)

	return project(g, solve(g, boundedOptions(opts, bound), true).Pairs)
}

// BoundedMapped is Bounded returning index-space results (see MaximumMapped).
func BoundedMapped[L, R comparable](edges []core.Edge[L, R], bound int, opts ...Option) *Mapped[L, R] {
	g := core.NewGraph(edges)

	return &Mapped[L, R]{graph: g, result: solve(g, boundedOptions(opts, bound), true)}
}

// BoundedSize returns Size(edges) when it is at most bound, and otherwise
// the size of the first matching found that exceeds bound.
//
// A typical use is a threshold test: BoundedSize(E, k) > k ⇔ Size(E) > k,
// answered without finishing the phase loop.
func BoundedSize[L, R comparable](edges []core.Edge[L, R], bound int, opts ...Option) int {
	return solve(core.NewGraph(edges), boundedOptions(opts, bound), false).Size
}

// boundedOptions resolves opts and then forces the bound, so an explicit
// bound argument always wins over a WithBound in opts.
func boundedOptions(opts []Option, bound int) Options {
	o := resolve(opts)
	WithBound(bound)(&o)

	return o
}
