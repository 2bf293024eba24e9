// SPDX-License-Identifier: MIT

package matching

// round augments along a maximal set of vertex-disjoint shortest augmenting
// paths through the current layering and returns how many it flipped.
//
// Every free left vertex is tried once as a root, in index order. The run
// stops mid-round when the bound is exceeded.
//
// Complexity: O(V + E); each adjacency entry is scanned at most once per
// round thanks to the per-vertex cursor.
func (e *engine) round() int {
	for l := range e.cursor {
		e.cursor[l] = 0
	}

	augmented := 0
	for l, r := range e.pairLeft {
		if r != unmatched || e.dist[l] != 0 {
			continue
		}
		if !e.augment(l) {
			continue
		}
		augmented++
		if e.size > e.limit {
			e.truncated = true
			break
		}
	}

	return augmented
}

// augment searches a layer-respecting alternating path from the free left
// vertex root to a free right vertex and flips it on success.
//
// The search keeps an explicit stack instead of recursing:
//   - top vertex l at distance d scans adj[l] from cursor[l] onward;
//   - free r ends the path, but only at the shortest layer (d+1 == freeLayer);
//   - matched r is followed to its partner p only if dist[p] == d+1;
//   - an exhausted l is a dead end: dist[l] = infinity, pop.
//
// The cursor is advanced before descending, so an edge that led to a dead
// end is never retried, and a dead-end vertex is never entered again in this
// round.
func (e *engine) augment(root int) bool {
	stack := append(e.stack[:0], root)
	via := e.via[:0]
	defer func() { e.stack, e.via = stack, via }()

	var l, d, r, p int
	for len(stack) > 0 {
		l = stack[len(stack)-1]
		d = e.dist[l]
		advanced := false

		for e.cursor[l] < len(e.adj[l]) {
			r = e.adj[l][e.cursor[l]]
			e.cursor[l]++

			p = e.pairRight[r]
			if p == unmatched {
				if d+1 == e.freeLayer {
					e.flip(stack, via, r)
					return true
				}
				continue
			}
			if e.dist[p] == d+1 {
				via = append(via, r)
				stack = append(stack, p)
				advanced = true
				break
			}
		}

		if !advanced {
			e.dist[l] = infinity
			stack = stack[:len(stack)-1]
			if len(via) > 0 {
				via = via[:len(via)-1]
			}
		}
	}

	return false
}

// flip applies the augmenting path stack[0] → … → stack[k] → free:
// stack[k] takes free, and each stack[i] takes via[i], the right vertex it
// used to reach stack[i+1]. Every left vertex of the path is consumed for the
// rest of the round, which also blocks its new right partner, keeping the
// paths of one round vertex-disjoint.
func (e *engine) flip(stack, via []int, free int) {
	r := free
	for i := len(stack) - 1; i >= 0; i-- {
		l := stack[i]
		e.pairLeft[l] = r
		e.pairRight[r] = l
		e.dist[l] = infinity
		if i > 0 {
			r = via[i-1]
		}
	}

	e.size++
	e.stats.Augmentations++
	length := 2*len(stack) - 1
	if length > e.stats.LongestPath {
		e.stats.LongestPath = length
	}
	e.opts.OnAugment(AugmentInfo{
		Phase:  e.phase,
		Root:   stack[0],
		Free:   free,
		Length: length,
		Size:   e.size,
	})
}
