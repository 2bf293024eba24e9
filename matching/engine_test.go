package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bimatch/builder"
	"github.com/katalvlaran/bimatch/core"
)

// requireConsistent asserts pairLeft and pairRight are mutual inverses and
// that size counts the matched left vertices.
func requireConsistent(t *testing.T, e *engine) {
	t.Helper()
	matched := 0
	for l, r := range e.pairLeft {
		if r == unmatched {
			continue
		}
		matched++
		require.Equal(t, l, e.pairRight[r], "left %d", l)
	}
	for r, l := range e.pairRight {
		if l != unmatched {
			require.Equal(t, r, e.pairLeft[l], "right %d", r)
		}
	}
	require.Equal(t, e.size, matched)
}

func TestEngineRoundsKeepPairsConsistent(t *testing.T) {
	edges, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(3), builder.WithShuffle()},
		builder.RandomBipartite(40, 40, 0.06), builder.Staircase(10))
	require.NoError(t, err)
	e := newEngine(core.NewGraph(edges), DefaultOptions())

	prevLayer := 0
	for e.layer() {
		require.Greater(t, e.freeLayer, prevLayer)
		prevLayer = e.freeLayer

		require.Positive(t, e.round())
		requireConsistent(t, e)

		// The layering is spent: every path of this length is blocked now.
		require.Zero(t, e.round())
	}
	requireConsistent(t, e)
}

func TestEngineLayerOnFreshGraph(t *testing.T) {
	g := core.NewGraph([]core.Edge[int, int]{{Left: 0, Right: 0}, {Left: 1, Right: 0}})
	e := newEngine(g, DefaultOptions())

	require.True(t, e.layer())
	require.Equal(t, 1, e.freeLayer)
	require.Equal(t, []int{0, 0}, e.dist)

	require.Equal(t, 1, e.round())
	require.False(t, e.layer())
}

func TestEngineLayerStopsAtShortestLayer(t *testing.T) {
	// L0-R0 and L1-R1 are matched; L2 is free and reaches R0, whose partner
	// L0 sees the free R2. L1 is unreachable and stays unlayered.
	g := core.NewGraph([]core.Edge[int, int]{
		{Left: 0, Right: 0}, {Left: 1, Right: 1},
		{Left: 0, Right: 2}, {Left: 2, Right: 0},
	})
	e := newEngine(g, DefaultOptions())
	e.pairLeft[0], e.pairRight[0] = 0, 0
	e.pairLeft[1], e.pairRight[1] = 1, 1
	e.size = 2

	require.True(t, e.layer())
	require.Equal(t, 2, e.freeLayer)
	require.Equal(t, 0, e.dist[2])
	require.Equal(t, 1, e.dist[0])
	require.Equal(t, infinity, e.dist[1])

	require.Equal(t, 1, e.round())
	requireConsistent(t, e)
	require.Equal(t, []int{2, 1, 0}, e.pairLeft)
}

func TestEngineLimitStopsMidRound(t *testing.T) {
	edges, err := builder.BuildEdges(nil, builder.DisjointPairs(8))
	require.NoError(t, err)

	o := DefaultOptions()
	WithBound(4)(&o)
	e := newEngine(core.NewGraph(edges), o)
	e.run()

	require.True(t, e.truncated)
	require.Equal(t, 5, e.size)
	require.Equal(t, 1, e.stats.Phases)
	requireConsistent(t, e)
}
