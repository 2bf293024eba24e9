// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: read-only diagnostics facade (Stats, IsEmpty).
// Policy:
//   - No algorithms here; Stats is an O(V+E) snapshot.

package core

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	LeftCount      int // distinct left vertices
	RightCount     int // distinct right vertices
	EdgeCount      int // distinct (left, right) pairs
	MaxLeftDegree  int // largest adjacency list on the left
	MaxRightDegree int // largest in-degree on the right
	IsolatedRight  int // right vertices with no edge (only via NewIndexedGraph)
	IsolatedLeft   int // left vertices with no edge (only via NewIndexedGraph)
}

// Stats computes a GraphStats snapshot.
//
// The maximum matching size is bounded above by min(LeftCount, RightCount)
// minus isolated vertices on the smaller side, which makes Stats useful for
// picking a bound before calling a bounded matching variant.
//
// Complexity: O(V + E) time, O(RightCount) space.
func (g *Graph[L, R]) Stats() *GraphStats {
	st := &GraphStats{
		LeftCount:  g.left.Len(),
		RightCount: g.right.Len(),
		EdgeCount:  g.edges,
	}
	for _, nbrs := range g.adj {
		if len(nbrs) == 0 {
			st.IsolatedLeft++
		}
		if len(nbrs) > st.MaxLeftDegree {
			st.MaxLeftDegree = len(nbrs)
		}
	}
	for _, d := range g.RightDegrees() {
		if d == 0 {
			st.IsolatedRight++
		}
		if d > st.MaxRightDegree {
			st.MaxRightDegree = d
		}
	}

	return st
}

// IsEmpty reports whether the graph has no edges.
func (g *Graph[L, R]) IsEmpty() bool {
	return g.edges == 0
}
