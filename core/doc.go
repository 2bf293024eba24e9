// Package core defines the bipartite building blocks shared by the rest of
// bimatch: the caller-facing Edge, the dense index Pair, the bidirectional
// vertex Index, and the immutable adjacency Graph.
//
// What
//
//   - Index[V] maps arbitrary comparable vertex values to dense ids 0..n-1
//     in first-seen order and back again.
//   - Graph[L, R] owns one Index per partition plus, for every left id, the
//     list of distinct right ids it touches.
//   - Left and right namespaces are independent: the value 7 used as a left
//     endpoint and the value 7 used as a right endpoint are two vertices.
//
// Why
//
//	Matching algorithms touch every edge O(√V) times. Doing that on slices of
//	ints instead of hashing caller values keeps the hot loops allocation-free
//	and independent of how expensive the vertex type is to compare or copy.
//
// Construction
//
//	g := core.NewGraph([]core.Edge[string, string]{
//	    {Left: "alice", Right: "night"},
//	    {Left: "bob", Right: "night"},
//	    {Left: "bob", Right: "day"},
//	})
//	g.LeftCount()   // 2
//	g.Neighbors(1)  // [0 1]  (bob → night, day)
//
//	// Already dense? Skip hashing entirely:
//	h, err := core.NewIndexedGraph(3, 3, []core.Pair{{0, 0}, {1, 2}})
//
// Concurrency
//
//	A Graph is never mutated after construction, so any number of goroutines
//	may read it (and run matching.Solve on it) at once. Index values obtained
//	through LeftIndex/RightIndex must be treated as read-only.
//
// Complexity
//
//   - NewGraph:        O(E) expected time, O(V + E) memory.
//   - NewIndexedGraph: O(V + E).
//   - Neighbors, LeftValue, RightValue: O(1).
//
// Errors
//
//   - ErrNegativeSize     - NewIndexedGraph with a negative partition size.
//   - ErrVertexOutOfRange - NewIndexedGraph with a pair outside the partitions.
package core
