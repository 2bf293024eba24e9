// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"go.uber.org/zap"
)

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow  : the total flow value
//   - residual : a clone of nw carrying the final flow (see Network.Flow)
//   - err      : ErrSourceNotFound, ErrSinkNotFound or a context error
//
// nw itself is not modified.
//
// Steps:
//  1. Normalize options, validate endpoints, clone the network.
//  2. Repeat:
//     a. Check for cancellation.
//     b. BFS from source over arcs with residual capacity to build levels.
//     c. If sink is unreachable, stop.
//     d. Push blocking flow by DFS along level-increasing arcs, with a
//     per-vertex arc cursor; optionally rebuild levels every
//     LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V²·E) in general; O(E·√V) on unit-capacity bipartite networks.
//	Memory: O(V + E).
func Dinic(nw *Network, source, sink int, opts FlowOptions) (maxFlow int64, residual *Network, err error) {
	opts.normalize()
	ctx := opts.Ctx

	residual, err = prepare(nw, source, sink, "Dinic")
	if err != nil {
		return 0, nil, err
	}
	if source == sink {
		return 0, residual, nil
	}

	n := residual.VertexCount()
	level := make([]int, n)
	iter := make([]int, n)
	queue := make([]int, 0, n)
	augmentCount := 0

	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		// BFS levels.
		for u := range level {
			level[u] = -1
		}
		level[source] = 0
		queue = append(queue[:0], source)
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for _, a := range residual.head[u] {
				v := residual.to[a]
				if residual.cap[a] > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// Blocking flow.
		for u := range iter {
			iter[u] = 0
		}
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := dinicPush(residual, level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			if ce := opts.Logger.Check(zap.DebugLevel, "flow: dinic push"); ce != nil {
				ce.Write(zap.Int64("pushed", pushed), zap.Int64("total", maxFlow))
			}
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, residual, nil
}

// dinicPush sends up to available units from u to sink along the level
// graph and returns the amount actually sent.
//
// iter[u] is advanced only past arcs that cannot take more flow in this
// phase, so a partially used arc is retried by the next push.
func dinicPush(nw *Network, level, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	for ; iter[u] < len(nw.head[u]); iter[u]++ {
		a := nw.head[u][iter[u]]
		v := nw.to[a]
		if nw.cap[a] <= 0 || level[v] != level[u]+1 {
			continue
		}
		send := available
		if nw.cap[a] < send {
			send = nw.cap[a]
		}
		if pushed := dinicPush(nw, level, iter, v, sink, send); pushed > 0 {
			nw.push(a, pushed)
			return pushed
		}
	}

	return 0
}
