// SPDX-License-Identifier: MIT

package flow

import (
	"github.com/katalvlaran/bimatch/core"
)

// MatchingNetwork reduces the bipartite graph g to a unit-capacity network:
//
//	source → every left vertex → its right neighbours → sink
//
// Vertex layout: source = 0, left l = 1+l, right r = 1+LeftCount+r,
// sink = 1+LeftCount+RightCount. The maximum flow of the network equals the
// maximum matching size of g, and the saturated left→right arcs form such a
// matching.
//
// Complexity: O(V + E).
func MatchingNetwork[L, R comparable](g *core.Graph[L, R]) (nw *Network, source, sink int) {
	nl, nr := g.LeftCount(), g.RightCount()
	source, sink = 0, nl+nr+1
	nw = &Network{head: make([][]int, nl+nr+2)}

	// Indices are in range and capacities positive, so AddArc cannot fail.
	for l := 0; l < nl; l++ {
		_, _ = nw.AddArc(source, 1+l, 1)
		for _, r := range g.Neighbors(l) {
			_, _ = nw.AddArc(1+l, 1+nl+r, 1)
		}
	}
	for r := 0; r < nr; r++ {
		_, _ = nw.AddArc(1+nl+r, sink, 1)
	}

	return nw, source, sink
}

// MatchingSize returns the maximum matching size of g computed by Dinic on
// MatchingNetwork(g). It shares no code with the matching engine and serves
// as an independent cross-check.
//
// Errors: context errors from opts.Ctx.
func MatchingSize[L, R comparable](g *core.Graph[L, R], opts FlowOptions) (int, error) {
	nw, source, sink := MatchingNetwork(g)
	f, _, err := Dinic(nw, source, sink, opts)
	if err != nil {
		return 0, err
	}

	return int(f), nil
}
