// SPDX-License-Identifier: MIT

package matching

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/bimatch/core"
)

// engine encapsulates the mutable Hopcroft–Karp state of one run.
// Nothing in it outlives the call that created it.
type engine struct {
	adj [][]int // adj[l] = right neighbours of l (aliases Graph storage)

	// Matching state; pairLeft[l] == r ⇔ pairRight[r] == l.
	pairLeft  []int
	pairRight []int

	// Layering, rebuilt by layer() every round.
	dist      []int // BFS distance of each left vertex from the free frontier
	freeLayer int   // distance of the virtual vertex behind every free right vertex
	queue     []int

	// DFS scratch, reused across augmentations.
	cursor []int // next adjacency position to try per left vertex
	stack  []int // left vertices of the path under construction
	via    []int // via[i] = right vertex leading from stack[i] to stack[i+1]

	size      int
	limit     int
	truncated bool
	phase     int

	opts  Options
	stats Stats
}

// newEngine allocates state for g with every vertex free.
//
// Complexity: O(V) time and space.
func newEngine[L, R comparable](g *core.Graph[L, R], o Options) *engine {
	nl, nr := g.LeftCount(), g.RightCount()
	e := &engine{
		adj:       make([][]int, nl),
		pairLeft:  make([]int, nl),
		pairRight: make([]int, nr),
		dist:      make([]int, nl),
		freeLayer: infinity,
		queue:     make([]int, 0, nl),
		cursor:    make([]int, nl),
		limit:     o.limit(),
		opts:      o,
	}
	for l := 0; l < nl; l++ {
		e.adj[l] = g.Neighbors(l)
		e.pairLeft[l] = unmatched
	}
	for r := 0; r < nr; r++ {
		e.pairRight[r] = unmatched
	}

	return e
}

// run alternates layering and augmentation until no augmenting path is left
// or the bound is exceeded.
//
// Steps:
//  1. If the empty matching already exceeds the bound, stop.
//  2. layer(): BFS from all free left vertices. No free right vertex
//     reachable ⇒ the matching is maximum; stop.
//  3. round(): DFS augmentation along a maximal set of vertex-disjoint
//     shortest augmenting paths; stop early when size > limit.
//  4. Repeat from 2.
//
// Complexity: O(√V) rounds of O(E) each, O(E·√V) in total.
func (e *engine) run() {
	if e.size > e.limit {
		e.truncated = true
		e.finish()
		return
	}

	for e.layer() {
		e.phase++
		e.stats.Phases++
		augmented := e.round()

		info := PhaseInfo{
			Phase:      e.phase,
			PathLength: 2*e.freeLayer - 1,
			Augmented:  augmented,
			Size:       e.size,
		}
		if ce := e.opts.Logger.Check(zap.DebugLevel, "matching: phase complete"); ce != nil {
			ce.Write(
				zap.Int("phase", info.Phase),
				zap.Int("path_length", info.PathLength),
				zap.Int("augmented", info.Augmented),
				zap.Int("size", info.Size),
			)
		}
		e.opts.OnPhase(info)

		if e.truncated {
			break
		}
	}
	e.finish()
}

// finish logs the terminal state of the run.
func (e *engine) finish() {
	if ce := e.opts.Logger.Check(zap.DebugLevel, "matching: done"); ce != nil {
		ce.Write(
			zap.Int("size", e.size),
			zap.Int("phases", e.stats.Phases),
			zap.Int("longest_path", e.stats.LongestPath),
			zap.Bool("truncated", e.truncated),
		)
	}
}

// result snapshots the matching. With project unset only the counters are
// filled in.
func (e *engine) result(project bool) *Result {
	res := &Result{
		Size:      e.size,
		Truncated: e.truncated,
		Stats:     e.stats,
	}
	if !project {
		return res
	}
	res.Pairs = make([]core.Pair, 0, e.size)
	for l, r := range e.pairLeft {
		if r != unmatched {
			res.Pairs = append(res.Pairs, core.Pair{Left: l, Right: r})
		}
	}

	return res
}

// solve is the single parameterized entry all public variants dispatch to.
func solve[L, R comparable](g *core.Graph[L, R], o Options, project bool) *Result {
	e := newEngine(g, o)
	e.run()

	return e.result(project)
}

// Solve computes a maximum matching of g (or, under WithBound, the first
// matching whose size exceeds the bound) and returns it in index space.
//
// g is only read, so concurrent Solve calls may share one Graph.
//
// Complexity: O(E·√V) time, O(V) extra memory.
func Solve[L, R comparable](g *core.Graph[L, R], opts ...Option) *Result {
	return solve(g, resolve(opts), true)
}
