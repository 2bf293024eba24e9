// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: adjacency reads used by the matching engine and the flow reduction.
// AI-HINT (file):
//   - Neighbors returns the internal slice; never append to or reorder it.

package core

// Neighbors returns the right indices adjacent to left index l, in
// first-seen order. The slice aliases Graph storage and must not be modified.
// Out-of-range l yields nil.
//
// Complexity: O(1).
func (g *Graph[L, R]) Neighbors(l int) []int {
	if l < 0 || l >= len(g.adj) {
		return nil
	}

	return g.adj[l]
}

// Degree reports the number of distinct right neighbours of left index l.
func (g *Graph[L, R]) Degree(l int) int {
	return len(g.Neighbors(l))
}

// RightDegrees counts, for each right index, how many left vertices reach it.
//
// Complexity: O(V + E) time, O(RightCount) space.
func (g *Graph[L, R]) RightDegrees() []int {
	deg := make([]int, g.right.Len())
	for _, nbrs := range g.adj {
		for _, r := range nbrs {
			deg[r]++
		}
	}

	return deg
}
