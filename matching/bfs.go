// SPDX-License-Identifier: MIT

package matching

// layer builds the shortest-augmenting-path layering for the current
// matching and reports whether any augmenting path exists.
//
// Free left vertices start at distance 0, matched ones at infinity. Popping
// l at distance d, every neighbour r is inspected:
//   - r free: the virtual vertex behind all free right vertices is reached
//     at d+1 (freeLayer), the first time only;
//   - r matched to l' with l' unlayered: dist[l'] = d+1, enqueue l'.
//
// The queue is in non-decreasing distance order, so popping a vertex at or
// past freeLayer means every shortest path is already layered; the loop stops
// there and never describes longer paths.
//
// Complexity: O(V + E) time, O(V) queue.
func (e *engine) layer() bool {
	e.queue = e.queue[:0]
	for l, r := range e.pairLeft {
		if r == unmatched {
			e.dist[l] = 0
			e.queue = append(e.queue, l)
		} else {
			e.dist[l] = infinity
		}
	}
	e.freeLayer = infinity

	var l, d, p int
	for head := 0; head < len(e.queue); head++ {
		l = e.queue[head]
		d = e.dist[l]
		if d >= e.freeLayer {
			break
		}
		for _, r := range e.adj[l] {
			p = e.pairRight[r]
			if p == unmatched {
				if e.freeLayer == infinity {
					e.freeLayer = d + 1
				}
				continue
			}
			if e.dist[p] == infinity {
				e.dist[p] = d + 1
				e.queue = append(e.queue, p)
			}
		}
	}

	return e.freeLayer != infinity
}
