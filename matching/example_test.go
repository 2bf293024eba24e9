package matching_test

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/matching"
)

// ExampleMaximum assigns applicants to jobs they qualify for.
func ExampleMaximum() {
	edges := []core.Edge[string, string]{
		core.NewEdge("alice", "backend"),
		core.NewEdge("alice", "frontend"),
		core.NewEdge("bob", "backend"),
		core.NewEdge("carol", "frontend"),
		core.NewEdge("carol", "ops"),
	}

	for _, e := range matching.Maximum(edges) {
		fmt.Printf("%s -> %s\n", e.Left, e.Right)
	}
	// Output:
	// alice -> frontend
	// bob -> backend
	// carol -> ops
}

// ExampleBoundedSize answers "is there a matching of more than k edges?"
// without computing the maximum.
func ExampleBoundedSize() {
	edges := []core.Edge[int, int]{
		{Left: 1, Right: 1}, {Left: 2, Right: 2}, {Left: 3, Right: 3}, {Left: 4, Right: 4},
	}
	const k = 2
	fmt.Println(matching.BoundedSize(edges, k) > k)
	// Output:
	// true
}

// ExampleSolve reads the per-run counters of an index-space result.
func ExampleSolve() {
	g := core.NewGraph([]core.Edge[string, int]{
		core.NewEdge("x", 1),
		core.NewEdge("x", 2),
		core.NewEdge("y", 1),
	})
	res := matching.Solve(g)
	fmt.Println(res.Size, res.Stats.Phases, res.Stats.LongestPath)
	for _, p := range res.Pairs {
		e := g.Edge(p)
		fmt.Println(e.Left, e.Right)
	}
	// Output:
	// 2 2 3
	// x 2
	// y 1
}

// ExampleVerify rejects a vertex used twice.
func ExampleVerify() {
	edges := []core.Edge[string, string]{core.NewEdge("a", "1"), core.NewEdge("b", "1")}
	err := matching.Verify(edges, edges)
	fmt.Println(err)
	// Output:
	// Verify: right vertex 1 at edge #1: matching: vertex matched twice
}
