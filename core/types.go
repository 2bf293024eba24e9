// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge, Pair, Index and Graph declarations plus core sentinel errors.
// Policy:
//   - Left and right identities live in independent namespaces.
//   - Dense indices are assigned in first-seen order and never reused.
//   - A Graph is immutable once constructed; readers need no locks.

package core

import (
	"errors"
)

// Sentinel errors for core graph construction.
var (
	// ErrVertexOutOfRange indicates a Pair references an index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeSize indicates a negative partition size was requested.
	ErrNegativeSize = errors.New("core: negative partition size")
)

// Edge is one (left, right) pair expressed in caller vertex identities.
//
// The same raw value used as Left in one edge and as Right in another denotes
// two distinct graph vertices: bipartite role determines identity.
type Edge[L, R comparable] struct {
	// Left is the identity of the left-partition endpoint.
	Left L

	// Right is the identity of the right-partition endpoint.
	Right R
}

// NewEdge is shorthand for Edge[L, R]{Left: l, Right: r}.
func NewEdge[L, R comparable](l L, r R) Edge[L, R] {
	return Edge[L, R]{Left: l, Right: r}
}

// Pair is an edge expressed in dense partition indices.
type Pair struct {
	Left  int
	Right int
}

// Index is a bidirectional mapping between caller vertex values and dense
// integer identifiers in [0, Len()).
//
// Identifiers are handed out in first-seen order by Intern. Index is not safe
// for concurrent mutation; a Graph only exposes its indexes read-only.
type Index[V comparable] struct {
	ids    map[V]int // value → dense id
	values []V       // dense id → value
}

// Graph is the immutable bipartite adjacency structure the matching engine
// runs on.
//
// For every left index l, adj[l] lists the distinct right indices adjacent
// to l in the order their edges were first seen. Duplicate input edges are
// collapsed during construction.
type Graph[L, R comparable] struct {
	left  *Index[L] // left identities ↔ [0, LeftCount)
	right *Index[R] // right identities ↔ [0, RightCount)

	adj   [][]int // adj[l] = right neighbours of l
	edges int     // number of distinct (l, r) pairs
}
