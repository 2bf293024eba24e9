// Package matching computes maximum-cardinality matchings in unweighted
// bipartite graphs with the Hopcroft–Karp algorithm.
//
// What
//
//   - Input: a slice of core.Edge[L, R] (left, right) pairs over any
//     comparable vertex types. Duplicates and isolated values are fine.
//   - Output: a maximum matching, i.e. as many input edges as possible such
//     that no vertex appears in two of them.
//   - Variants reshape the same engine:
//
//     Maximum        []core.Edge  maximum matching
//     MaximumMapped  *Mapped      maximum matching, index space + remap tables
//     Size           int          its cardinality only
//     Bounded        []core.Edge  stops once size > bound
//     BoundedMapped  *Mapped      stops once size > bound, index space
//     BoundedSize    int          stops once size > bound, count only
//     Solve          *Result      engine entry on a prebuilt *core.Graph
//
// How
//
//	Each round (phase) has two halves:
//
//	  1. BFS layering from every free left vertex. Matched right vertices
//	     lead back to their left partner one layer deeper; the first free
//	     right vertex found fixes the shortest augmenting path length, and
//	     deeper layers are never built. No free right vertex reachable ⇒
//	     the matching is maximum.
//	  2. DFS augmentation from every free left vertex, moving only from
//	     layer d to layer d+1, ending only at the shortest layer. Each found
//	     path is flipped at once and its vertices are consumed for the rest
//	     of the round, so the paths of a round are vertex-disjoint.
//
//	       L0 ──── R0          free L0 at layer 0
//	         ╲                 R1 matched to L1 → L1 at layer 1
//	          ╲── R1 ═══ L1    L1 ─── R2 free → freeLayer = 2
//	                      ╲
//	                       ── R2
//
// Why it is fast
//
//	Shortest augmenting path length grows strictly from round to round, which
//	bounds the number of rounds by O(√V); each round touches every edge O(1)
//	times. Total time O(E·√V), memory O(V + E).
//
// Bounded variants
//
//	With a bound b the loop halts right after the augmentation that makes the
//	size exceed b. If the true maximum is ≤ b the result is simply maximum.
//	BoundedSize(E, k) > k is therefore a cheap "is there a matching larger
//	than k" test.
//
// Options
//
//   - WithLogger(l):    zap logger; Debug record per phase (default no-op).
//   - WithOnPhase(fn):  hook after each round with PhaseInfo.
//   - WithOnAugment(fn): hook after each augmentation with AugmentInfo.
//   - WithBound(b):     bound for Solve (Bounded* set it themselves).
//
// Checking results
//
//   - Verify(edges, m): m ⊆ edges and no vertex used twice.
//   - Certify(g, pairs): valid and no augmenting path left (maximum).
//
// Errors
//
//	Matching never fails. Verify and Certify report ErrNotSubset,
//	ErrVertexReused, core.ErrVertexOutOfRange and ErrAugmentingPath, wrapped
//	with context; branch with errors.Is.
//
// Concurrency
//
//	A call owns all of its state. Solve only reads its *core.Graph, so one
//	graph can be solved from several goroutines at once.
package matching
