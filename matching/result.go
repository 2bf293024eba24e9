// SPDX-License-Identifier: MIT

package matching

import (
	"github.com/katalvlaran/bimatch/core"
)

// Mapped is a matching kept in index space together with the Graph whose
// indexes translate it back. Vertex values are resolved only on demand, so
// large vertex types are never copied per matched edge.
type Mapped[L, R comparable] struct {
	graph  *core.Graph[L, R]
	result *Result
}

// Len reports the number of matched edges.
func (m *Mapped[L, R]) Len() int {
	return len(m.result.Pairs)
}

// Pairs returns the matched index pairs by ascending left index.
// The slice is shared; do not modify it.
func (m *Mapped[L, R]) Pairs() []core.Pair {
	return m.result.Pairs
}

// Edge resolves the i-th matched pair to caller identities.
func (m *Mapped[L, R]) Edge(i int) core.Edge[L, R] {
	return m.graph.Edge(m.result.Pairs[i])
}

// Edges resolves every matched pair; equivalent to what Maximum returns.
func (m *Mapped[L, R]) Edges() []core.Edge[L, R] {
	return project(m.graph, m.result.Pairs)
}

// Graph returns the indexed graph the matching refers to.
func (m *Mapped[L, R]) Graph() *core.Graph[L, R] {
	return m.graph
}

// Result returns the underlying index-space result, including Stats.
func (m *Mapped[L, R]) Result() *Result {
	return m.result
}

// project copies matched pairs out to caller identities.
//
// Complexity: O(len(pairs)).
func project[L, R comparable](g *core.Graph[L, R], pairs []core.Pair) []core.Edge[L, R] {
	out := make([]core.Edge[L, R], len(pairs))
	for i, p := range pairs {
		out[i] = g.Edge(p)
	}

	return out
}
