// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Index lifecycle (NewIndex/Intern/Lookup/Value/Values/Len) and the
//       Graph-level vertex getters built on top of it.
// Determinism:
//   - Intern assigns ids 0,1,2,... in call order; Values() preserves it.

package core

// NewIndex returns an empty Index with room for capacity values.
// A negative capacity is treated as zero.
//
// Complexity: O(capacity) space.
func NewIndex[V comparable](capacity int) *Index[V] {
	if capacity < 0 {
		capacity = 0
	}

	return &Index[V]{
		ids:    make(map[V]int, capacity),
		values: make([]V, 0, capacity),
	}
}

// Intern returns the dense id of v, assigning the next free id on first sight.
//
// Complexity: O(1) amortized.
func (x *Index[V]) Intern(v V) int {
	if id, ok := x.ids[v]; ok {
		return id
	}
	id := len(x.values)
	x.ids[v] = id
	x.values = append(x.values, v)

	return id
}

// Lookup reports the dense id of v without assigning one.
func (x *Index[V]) Lookup(v V) (int, bool) {
	id, ok := x.ids[v]

	return id, ok
}

// Value returns the vertex value behind id.
// It panics if id is outside [0, Len()), like a slice access would.
func (x *Index[V]) Value(id int) V {
	return x.values[id]
}

// Len reports how many distinct values have been interned.
func (x *Index[V]) Len() int {
	return len(x.values)
}

// Values returns a copy of all interned values in id order.
//
// Complexity: O(Len()) time and space.
func (x *Index[V]) Values() []V {
	out := make([]V, len(x.values))
	copy(out, x.values)

	return out
}

// LeftCount reports the number of distinct left vertices.
func (g *Graph[L, R]) LeftCount() int {
	return g.left.Len()
}

// RightCount reports the number of distinct right vertices.
func (g *Graph[L, R]) RightCount() int {
	return g.right.Len()
}

// LeftValue maps a left index back to its caller identity.
func (g *Graph[L, R]) LeftValue(l int) L {
	return g.left.Value(l)
}

// RightValue maps a right index back to its caller identity.
func (g *Graph[L, R]) RightValue(r int) R {
	return g.right.Value(r)
}

// LeftIndex exposes the left remapping table.
// Callers must treat it as read-only; Intern on it corrupts the Graph.
func (g *Graph[L, R]) LeftIndex() *Index[L] {
	return g.left
}

// RightIndex exposes the right remapping table.
// Callers must treat it as read-only; Intern on it corrupts the Graph.
func (g *Graph[L, R]) RightIndex() *Index[R] {
	return g.right
}
