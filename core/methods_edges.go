// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Graph construction from raw edges (NewGraph) or dense pairs
//       (NewIndexedGraph), plus edge queries: EdgeCount/HasEdge/Edge/Edges.
// Determinism:
//   - Left and right ids follow first-seen order over the input slice.
//   - Edges() lists pairs by left id asc, then adjacency (first-seen) order.

package core

import "fmt"

// NewGraph indexes both partitions of edges and builds the adjacency lists.
//
// Steps:
//  1. Allocate both indexes and a dedup set sized to len(edges).
//  2. For each edge: intern Left and Right, grow adj to cover the left id,
//     and append the right id unless the pair was already seen.
//  3. Drop the dedup set; only adj survives.
//
// An empty or nil edge slice yields an empty Graph. Duplicates are idempotent.
//
// Complexity: O(E) expected time, O(V + E) space.
func NewGraph[L, R comparable](edges []Edge[L, R]) *Graph[L, R] {
	g := &Graph[L, R]{
		left:  NewIndex[L](len(edges)),
		right: NewIndex[R](len(edges)),
	}
	seen := make(map[Pair]struct{}, len(edges))

	var l, r int
	for _, e := range edges {
		l = g.left.Intern(e.Left)
		r = g.right.Intern(e.Right)
		if l == len(g.adj) { // first sighting of this left vertex
			g.adj = append(g.adj, nil)
		}
		g.link(seen, l, r)
	}

	return g
}

// NewIndexedGraph builds a Graph over integer identities that already are
// dense: left vertices are 0..nLeft-1 and right vertices 0..nRight-1, all of
// them present even when isolated.
//
// Errors:
//   - ErrNegativeSize     if nLeft or nRight is negative.
//   - ErrVertexOutOfRange if any pair leaves [0,nLeft)×[0,nRight).
//
// Complexity: O(nLeft + nRight + len(pairs)).
func NewIndexedGraph(nLeft, nRight int, pairs []Pair) (*Graph[int, int], error) {
	if nLeft < 0 || nRight < 0 {
		return nil, fmt.Errorf("NewIndexedGraph: nLeft=%d, nRight=%d: %w", nLeft, nRight, ErrNegativeSize)
	}
	g := &Graph[int, int]{
		left:  NewIndex[int](nLeft),
		right: NewIndex[int](nRight),
		adj:   make([][]int, nLeft),
	}
	for i := 0; i < nLeft; i++ {
		g.left.Intern(i)
	}
	for j := 0; j < nRight; j++ {
		g.right.Intern(j)
	}

	seen := make(map[Pair]struct{}, len(pairs))
	for _, p := range pairs {
		if p.Left < 0 || p.Left >= nLeft || p.Right < 0 || p.Right >= nRight {
			return nil, fmt.Errorf("NewIndexedGraph: pair (%d,%d) outside %dx%d: %w",
				p.Left, p.Right, nLeft, nRight, ErrVertexOutOfRange)
		}
		g.link(seen, p.Left, p.Right)
	}

	return g, nil
}

// link appends r to adj[l] unless (l, r) is already present.
func (g *Graph[L, R]) link(seen map[Pair]struct{}, l, r int) {
	p := Pair{Left: l, Right: r}
	if _, dup := seen[p]; dup {
		return
	}
	seen[p] = struct{}{}
	g.adj[l] = append(g.adj[l], r)
	g.edges++
}

// EdgeCount reports the number of distinct (left, right) pairs.
func (g *Graph[L, R]) EdgeCount() int {
	return g.edges
}

// HasEdge reports whether left index l is adjacent to right index r.
// Out-of-range indices report false.
//
// Complexity: O(deg(l)).
func (g *Graph[L, R]) HasEdge(l, r int) bool {
	if l < 0 || l >= len(g.adj) {
		return false
	}
	for _, x := range g.adj[l] {
		if x == r {
			return true
		}
	}

	return false
}

// Edge projects an index pair back to caller identities.
// It panics on out-of-range indices.
func (g *Graph[L, R]) Edge(p Pair) Edge[L, R] {
	return Edge[L, R]{Left: g.left.Value(p.Left), Right: g.right.Value(p.Right)}
}

// Edges returns every distinct pair of the graph.
//
// Complexity: O(E) time and space.
func (g *Graph[L, R]) Edges() []Pair {
	out := make([]Pair, 0, g.edges)
	for l, nbrs := range g.adj {
		for _, r := range nbrs {
			out = append(out, Pair{Left: l, Right: r})
		}
	}

	return out
}
