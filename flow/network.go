// SPDX-License-Identifier: MIT

package flow

import (
	"fmt"

	"github.com/katalvlaran/bimatch/core"
)

// Network is a directed capacity network over vertices [0, n) stored as a
// residual arc list: arc 2k is the k-th added arc, arc 2k+1 its reverse.
//
// A Network is mutated only by AddArc. Solvers work on a clone and return it
// as the residual network.
type Network struct {
	head [][]int // head[u] = ids of arcs leaving u, in insertion order
	to   []int   // to[a] = head vertex of arc a
	cap  []int64 // residual capacity of arc a
	orig []int64 // capacity of arc a at insertion (0 for reverse arcs)
}

// NewNetwork returns an empty network with n vertices.
// Errors: core.ErrNegativeSize if n < 0.
func NewNetwork(n int) (*Network, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewNetwork: n=%d: %w", n, core.ErrNegativeSize)
	}

	return &Network{head: make([][]int, n)}, nil
}

// AddArc adds u→v with capacity c and returns the arc id. Parallel arcs are
// kept apart and add up in every solver; loops are accepted and never carry
// flow.
//
// Errors:
//   - core.ErrVertexOutOfRange if u or v is outside [0, VertexCount).
//   - ErrBadCapacity if c < 0.
func (nw *Network) AddArc(u, v int, c int64) (int, error) {
	n := len(nw.head)
	if u < 0 || u >= n || v < 0 || v >= n {
		return 0, fmt.Errorf("AddArc: %d→%d outside [0,%d): %w", u, v, n, core.ErrVertexOutOfRange)
	}
	if c < 0 {
		return 0, fmt.Errorf("AddArc: %d→%d cap=%d: %w", u, v, c, ErrBadCapacity)
	}

	id := len(nw.to)
	nw.to = append(nw.to, v, u)
	nw.cap = append(nw.cap, c, 0)
	nw.orig = append(nw.orig, c, 0)
	nw.head[u] = append(nw.head[u], id)
	nw.head[v] = append(nw.head[v], id+1)

	return id, nil
}

// VertexCount returns the number of vertices.
func (nw *Network) VertexCount() int { return len(nw.head) }

// ArcCount returns the number of arcs added with AddArc.
func (nw *Network) ArcCount() int { return len(nw.to) / 2 }

// Residual returns the remaining capacity of arc id.
func (nw *Network) Residual(id int) int64 { return nw.cap[id] }

// Flow returns the flow currently pushed along arc id.
func (nw *Network) Flow(id int) int64 { return nw.orig[id] - nw.cap[id] }

// Arc returns the endpoints of arc id.
func (nw *Network) Arc(id int) (u, v int) { return nw.to[id^1], nw.to[id] }

// Clone returns a deep copy of the network.
func (nw *Network) Clone() *Network {
	c := &Network{
		head: make([][]int, len(nw.head)),
		to:   append([]int(nil), nw.to...),
		cap:  append([]int64(nil), nw.cap...),
		orig: append([]int64(nil), nw.orig...),
	}
	for u, arcs := range nw.head {
		c.head[u] = append([]int(nil), arcs...)
	}

	return c
}

// push moves f units along arc a.
func (nw *Network) push(a int, f int64) {
	nw.cap[a] -= f
	nw.cap[a^1] += f
}

// prepare validates source and sink and clones the network for a solver.
func prepare(nw *Network, source, sink int, method string) (*Network, error) {
	n := nw.VertexCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%s: source %d outside [0,%d): %w", method, source, n, ErrSourceNotFound)
	}
	if sink < 0 || sink >= n {
		return nil, fmt.Errorf("%s: sink %d outside [0,%d): %w", method, sink, n, ErrSinkNotFound)
	}

	return nw.Clone(), nil
}
