// Package flow implements maximum-flow algorithms on integer capacity
// networks and the classic reduction of bipartite matching to max-flow.
//
// The key algorithms offered are:
//
//   - Edmonds–Karp
//     Method: breadth-first search for shortest (fewest-arc) augmenting paths.
//     Time:   O(V · E²).
//
//   - Dinic
//     Method: level graph construction + blocking flow via DFS.
//     Time:   O(E · √V) on unit-capacity bipartite networks.
//
// # Network
//
// Network stores vertices [0, n) and arcs with int64 capacities as a residual
// arc list. Parallel arcs add up; loops never carry flow. Solvers never
// modify their input; they return a residual clone whose Flow(arc) reports
// the final flow on every added arc.
//
// # Matching reduction
//
// MatchingNetwork(g) builds source → left → right → sink with unit
// capacities over a *core.Graph; MatchingSize(g, opts) runs Dinic on it.
// The matching package's tests use it as an oracle.
//
// # Options
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // cancellation / timeouts
//	    Logger               *zap.Logger     // Debug record per augmentation
//	    LevelRebuildInterval int             // Dinic only: rebuild levels every N pushes
//	}
//
// # Errors
//
//   - ErrSourceNotFound, ErrSinkNotFound: endpoint outside the network.
//   - ErrBadCapacity: negative capacity passed to AddArc.
//   - core.ErrVertexOutOfRange: arc endpoint outside the network.
//   - context.Canceled / context.DeadlineExceeded from Ctx.
package flow
