// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"go.uber.org/zap"
)

// EdmondsKarp computes the maximum flow from source to sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// Results and errors follow Dinic; LevelRebuildInterval is ignored.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(nw *Network, source, sink int, opts FlowOptions) (maxFlow int64, residual *Network, err error) {
	opts.normalize()
	ctx := opts.Ctx

	residual, err = prepare(nw, source, sink, "EdmondsKarp")
	if err != nil {
		return 0, nil, err
	}
	if source == sink {
		return 0, residual, nil
	}

	parentArc := make([]int, residual.VertexCount())
	queue := make([]int, 0, residual.VertexCount())
	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		bottle := bfsAugmentingPath(residual, source, sink, parentArc, queue)
		if bottle == 0 {
			break
		}
		for v := sink; v != source; {
			a := parentArc[v]
			residual.push(a, bottle)
			v = residual.to[a^1]
		}
		maxFlow += bottle
		if ce := opts.Logger.Check(zap.DebugLevel, "flow: augmenting path"); ce != nil {
			ce.Write(zap.Int64("bottleneck", bottle), zap.Int64("total", maxFlow))
		}
	}

	return maxFlow, residual, nil
}

// bfsAugmentingPath finds a fewest-arc source→sink path with positive
// residual capacity, records it in parentArc and returns its bottleneck.
// It returns 0 when the sink is unreachable.
func bfsAugmentingPath(nw *Network, source, sink int, parentArc, queue []int) int64 {
	for v := range parentArc {
		parentArc[v] = -1
	}
	queue = append(queue[:0], source)
	for i := 0; i < len(queue) && parentArc[sink] < 0; i++ {
		u := queue[i]
		for _, a := range nw.head[u] {
			v := nw.to[a]
			if v == source || parentArc[v] >= 0 || nw.cap[a] <= 0 {
				continue
			}
			parentArc[v] = a
			queue = append(queue, v)
		}
	}
	if parentArc[sink] < 0 {
		return 0
	}

	bottle := int64(math.MaxInt64)
	for v := sink; v != source; {
		a := parentArc[v]
		if nw.cap[a] < bottle {
			bottle = nw.cap[a]
		}
		v = nw.to[a^1]
	}

	return bottle
}
