// Package bimatch computes maximum matchings in unweighted bipartite graphs.
//
// 🚀 What is bimatch?
//
//	A small generic library around the Hopcroft–Karp algorithm:
//		• Core primitives: Edge, Pair, vertex Index and the immutable Graph
//		• Matching: maximum, size-only and bounded variants, O(E·√V)
//		• Checks: Verify (valid matching) and Certify (no augmenting path)
//		• Flow: Dinic and Edmonds–Karp, plus the matching → max-flow reduction
//		• Builders: deterministic and seeded random bipartite topologies
//
// ✨ Why choose bimatch?
//
//   - Any comparable vertex type on either side, no string conversion
//   - Index-space results for large vertex types (MaximumMapped)
//   - Cheap threshold tests: BoundedSize(E, k) > k
//   - Phase hooks and zap logging for observing the √V round bound
//
// Packages:
//
//	core/     — Edge, Pair, Index and Graph
//	matching/ — Hopcroft–Karp engine and its public variants
//	flow/     — max-flow solvers and the bipartite reduction
//	builder/  — bipartite topology generators for tests and benchmarks
//
// Quick ASCII example:
//
//	alice ─┬─ backend        alice ─── frontend
//	bob ───┘                 bob ───── backend
//	alice ─┬─ frontend   ⇒   carol ─── ops
//	carol ─┘
//	carol ─── ops
//
//	go get github.com/katalvlaran/bimatch
package bimatch
