package matching_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bimatch/builder"
	"github.com/katalvlaran/bimatch/core"
	"github.com/katalvlaran/bimatch/flow"
	"github.com/katalvlaran/bimatch/matching"
)

// MatchingSuite exercises the public variants on fixtures and generated graphs.
type MatchingSuite struct {
	suite.Suite
}

func TestMatchingSuite(t *testing.T) {
	suite.Run(t, new(MatchingSuite))
}

// TestScenarios runs every fixture from testdata/scenarios.yaml through all
// variants.
func (s *MatchingSuite) TestScenarios() {
	for _, sc := range loadScenarios(s.T()) {
		s.Run(sc.Name, func() {
			t := s.T()
			edges := intEdges(t, sc.Edges)

			got := matching.Maximum(edges)
			require.Len(t, got, sc.Size)
			require.NoError(t, matching.Verify(edges, got))
			if sc.Unique != nil {
				requireSameEdges(t, intEdges(t, sc.Unique), got)
			}

			require.Equal(t, sc.Size, matching.Size(edges))
			require.Equal(t, sc.Size, matching.MaximumMapped(edges).Len())

			g := core.NewGraph(edges)
			require.NoError(t, matching.Certify(g, matching.Solve(g).Pairs))
		})
	}
}

// TestEmptyInput covers nil and empty slices on every variant.
func (s *MatchingSuite) TestEmptyInput() {
	var none []core.Edge[string, string]
	require.Empty(s.T(), matching.Maximum(none))
	require.Zero(s.T(), matching.Size(none))
	require.Zero(s.T(), matching.MaximumMapped(none).Len())
	require.Empty(s.T(), matching.Bounded(none, 0))
	require.Zero(s.T(), matching.BoundedSize(none, 3))
	require.Zero(s.T(), matching.BoundedMapped(none, 3).Len())
}

// TestStructVertices shows that any comparable type works on either side.
func (s *MatchingSuite) TestStructVertices() {
	type worker struct {
		Team string
		ID   int
	}
	edges := []core.Edge[worker, string]{
		{Left: worker{"red", 1}, Right: "night"},
		{Left: worker{"red", 1}, Right: "day"},
		{Left: worker{"blue", 1}, Right: "night"},
	}
	got := matching.Maximum(edges)
	require.ElementsMatch(s.T(), []core.Edge[worker, string]{
		{Left: worker{"red", 1}, Right: "day"},
		{Left: worker{"blue", 1}, Right: "night"},
	}, got)
}

// TestOrderFollowsFirstSeenLeft pins the projection order.
func (s *MatchingSuite) TestOrderFollowsFirstSeenLeft() {
	edges := []core.Edge[string, string]{
		core.NewEdge("z", "1"),
		core.NewEdge("a", "2"),
		core.NewEdge("m", "3"),
	}
	require.Equal(s.T(), edges, matching.Maximum(edges))
}

// TestMappedResolvesLazily checks Mapped against Maximum on the same input.
func (s *MatchingSuite) TestMappedResolvesLazily() {
	edges, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(11)},
		builder.RandomBipartite(30, 25, 0.1))
	s.Require().NoError(err)

	m := matching.MaximumMapped(edges)
	require.Equal(s.T(), matching.Maximum(edges), m.Edges())
	require.Equal(s.T(), m.Len(), len(m.Pairs()))
	require.Equal(s.T(), m.Len(), m.Result().Size)
	for i, p := range m.Pairs() {
		require.Equal(s.T(), m.Graph().Edge(p), m.Edge(i))
	}
}

// TestBoundedProperties checks, for every bound from -1 to max+1, both
// branches of the bounded contract on the plain, mapped and size variants.
func (s *MatchingSuite) TestBoundedProperties() {
	edges, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(5)},
		builder.PlantedPerfect(40, 120), builder.Star(4))
	s.Require().NoError(err)

	max := matching.Size(edges)
	require.Equal(s.T(), 41, max)

	for b := -1; b <= max+1; b++ {
		m := matching.Bounded(edges, b)
		require.NoError(s.T(), matching.Verify(edges, m))
		size := matching.BoundedSize(edges, b)
		mapped := matching.BoundedMapped(edges, b)

		if b >= max {
			require.Len(s.T(), m, max, "bound %d", b)
			require.Equal(s.T(), max, size)
			require.False(s.T(), mapped.Result().Truncated)
		} else {
			require.Greater(s.T(), len(m), b, "bound %d", b)
			require.Greater(s.T(), size, b, "bound %d", b)
			require.Greater(s.T(), mapped.Len(), b, "bound %d", b)
		}
	}
}

// TestBoundZero covers the "bound=0 on a non-empty graph" scenario.
func (s *MatchingSuite) TestBoundZero() {
	edges := []core.Edge[int, int]{{Left: 0, Right: 10}, {Left: 0, Right: 11}, {Left: 1, Right: 11}}
	require.GreaterOrEqual(s.T(), matching.BoundedSize(edges, 0), 1)
	require.Equal(s.T(), 1, matching.BoundedSize(edges, 0))
}

// TestNegativeBound returns the empty matching without running a phase.
func (s *MatchingSuite) TestNegativeBound() {
	edges := []core.Edge[int, int]{{Left: 0, Right: 0}}
	phases := 0
	got := matching.Bounded(edges, -1, matching.WithOnPhase(func(matching.PhaseInfo) { phases++ }))
	require.Empty(s.T(), got)
	require.Zero(s.T(), phases)
}

// TestBoundArgumentWins checks that Bounded's argument overrides WithBound.
func (s *MatchingSuite) TestBoundArgumentWins() {
	edges, err := builder.BuildEdges(nil, builder.DisjointPairs(10))
	s.Require().NoError(err)
	require.Equal(s.T(), 10, matching.BoundedSize(edges, 20, matching.WithBound(0)))
	require.Equal(s.T(), 1, matching.Size(edges, matching.WithBound(0)))
}

// TestRandomAgainstFlow cross-checks sizes with the max-flow oracle and
// certifies every result on random graphs of mixed density.
func (s *MatchingSuite) TestRandomAgainstFlow() {
	cases := []struct {
		name   string
		n1, n2 int
		p      float64
	}{
		{"sparse-square", 60, 60, 0.03},
		{"medium-wide", 40, 90, 0.05},
		{"dense-tall", 70, 30, 0.2},
		{"tiny", 5, 5, 0.4},
	}
	for _, tc := range cases {
		for seed := int64(1); seed <= 5; seed++ {
			edges, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomBipartite(tc.n1, tc.n2, tc.p))
			s.Require().NoError(err)

			g := core.NewGraph(edges)
			res := matching.Solve(g)
			want, err := flow.MatchingSize(g, flow.DefaultOptions())
			s.Require().NoError(err)

			require.Equal(s.T(), want, res.Size, "%s seed %d", tc.name, seed)
			require.NoError(s.T(), matching.Certify(g, res.Pairs), "%s seed %d", tc.name, seed)
			require.Equal(s.T(), res.Size, matching.Size(edges))
		}
	}
}

// TestPlantedAndLopsided mirrors the randomized perfect/lopsided checks:
// a planted perfect matching must always be recovered in full.
func (s *MatchingSuite) TestPlantedAndLopsided() {
	const n = 100
	for seed := int64(1); seed <= 10; seed++ {
		opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithShuffle()}

		perfect, err := builder.BuildEdges(opts, builder.PlantedPerfect(n, 2*n))
		s.Require().NoError(err)
		require.Len(s.T(), matching.Maximum(perfect), n)

		opts = []builder.BuilderOption{builder.WithSeed(seed), builder.WithShuffle()}
		lopsided, err := builder.BuildEdges(opts, builder.Lopsided(n, 2*n))
		s.Require().NoError(err)
		require.Equal(s.T(), n, matching.Size(lopsided))
	}
}

// TestShuffleInvariance checks the size does not depend on edge order.
func (s *MatchingSuite) TestShuffleInvariance() {
	base, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(9)},
		builder.RandomBipartite(50, 50, 0.04))
	s.Require().NoError(err)
	want := matching.Size(base)

	for seed := int64(100); seed < 110; seed++ {
		shuffled := append([]core.Edge[string, string](nil), base...)
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got := matching.Maximum(shuffled)
		require.Len(s.T(), got, want, "seed %d", seed)
		require.NoError(s.T(), matching.Verify(base, got))
	}
}

// TestCompleteBipartiteSizes checks min(n1, n2) on K_{n1,n2}.
func (s *MatchingSuite) TestCompleteBipartiteSizes() {
	for n1 := 1; n1 <= 6; n1++ {
		for n2 := 1; n2 <= 6; n2++ {
			edges, err := builder.BuildEdges(nil, builder.CompleteBipartite(n1, n2))
			s.Require().NoError(err)
			require.Equal(s.T(), min(n1, n2), matching.Size(edges), "K_{%d,%d}", n1, n2)
		}
	}
}

// TestStaircaseNeedsLongPath checks the hand-built two-round instance.
func (s *MatchingSuite) TestStaircaseNeedsLongPath() {
	const n = 25
	edges, err := builder.BuildEdges(nil, builder.Staircase(n))
	s.Require().NoError(err)

	var lengths []int
	res := matching.Solve(core.NewGraph(edges),
		matching.WithOnPhase(func(p matching.PhaseInfo) { lengths = append(lengths, p.PathLength) }))

	require.Equal(s.T(), n, res.Size)
	require.Equal(s.T(), 2, res.Stats.Phases)
	require.Equal(s.T(), []int{1, 2*n - 1}, lengths)
	require.Equal(s.T(), 2*n-1, res.Stats.LongestPath)
	require.Equal(s.T(), n, res.Stats.Augmentations)
}

// TestPhaseBound checks the O(√V) round bound and strictly growing path
// lengths across phases.
func (s *MatchingSuite) TestPhaseBound() {
	edges, err := builder.BuildEdges([]builder.BuilderOption{builder.WithSeed(21), builder.WithShuffle()},
		builder.Lopsided(300, 900), builder.RandomBipartite(100, 100, 0.02), builder.Staircase(40))
	s.Require().NoError(err)

	g := core.NewGraph(edges)
	prev := 0
	res := matching.Solve(g, matching.WithOnPhase(func(p matching.PhaseInfo) {
		require.Greater(s.T(), p.PathLength, prev)
		require.Positive(s.T(), p.Augmented)
		prev = p.PathLength
	}))

	v := float64(g.LeftCount() + g.RightCount())
	require.LessOrEqual(s.T(), res.Stats.Phases, int(2*math.Ceil(math.Sqrt(v)))+2)
}

// TestOnAugmentHook checks every augmentation is reported once, in order.
func (s *MatchingSuite) TestOnAugmentHook() {
	edges, err := builder.BuildEdges(nil, builder.Staircase(4), builder.DisjointPairs(3))
	s.Require().NoError(err)

	var infos []matching.AugmentInfo
	res := matching.Solve(core.NewGraph(edges),
		matching.WithOnAugment(func(a matching.AugmentInfo) { infos = append(infos, a) }))

	require.Len(s.T(), infos, res.Size)
	for i, a := range infos {
		require.Equal(s.T(), i+1, a.Size)
		require.Equal(s.T(), 1, a.Length%2)
	}
	require.Equal(s.T(), 7, infos[len(infos)-1].Length)
}

// TestNilOptionsKeepDefaults verifies nil hooks and loggers are ignored.
func (s *MatchingSuite) TestNilOptionsKeepDefaults() {
	edges := []core.Edge[int, int]{{Left: 1, Right: 2}}
	require.NotPanics(s.T(), func() {
		matching.Maximum(edges, matching.WithLogger(nil), matching.WithOnPhase(nil), matching.WithOnAugment(nil))
	})
}

// TestVerifyErrors covers each Verify sentinel.
func (s *MatchingSuite) TestVerifyErrors() {
	edges := []core.Edge[int, int]{{Left: 0, Right: 0}, {Left: 0, Right: 1}, {Left: 1, Right: 0}}

	err := matching.Verify(edges, []core.Edge[int, int]{{Left: 1, Right: 1}})
	require.True(s.T(), errors.Is(err, matching.ErrNotSubset), "got %v", err)

	err = matching.Verify(edges, []core.Edge[int, int]{{Left: 0, Right: 0}, {Left: 0, Right: 1}})
	require.True(s.T(), errors.Is(err, matching.ErrVertexReused), "got %v", err)

	err = matching.Verify(edges, []core.Edge[int, int]{{Left: 0, Right: 0}, {Left: 1, Right: 0}})
	require.True(s.T(), errors.Is(err, matching.ErrVertexReused), "got %v", err)

	require.NoError(s.T(), matching.Verify(edges, nil))
}

// TestCertifyErrors covers each Certify outcome on Staircase(3), whose
// first-round matching {L0-R1, L1-R2} is valid but not maximum.
func (s *MatchingSuite) TestCertifyErrors() {
	edges, err := builder.BuildEdges(nil, builder.Staircase(3))
	s.Require().NoError(err)
	g := core.NewGraph(edges)

	pair := func(l, r string) core.Pair {
		li, ok := g.LeftIndex().Lookup(l)
		s.Require().True(ok)
		ri, ok := g.RightIndex().Lookup(r)
		s.Require().True(ok)
		return core.Pair{Left: li, Right: ri}
	}

	err = matching.Certify(g, []core.Pair{pair("L0", "R1"), pair("L1", "R2")})
	require.True(s.T(), errors.Is(err, matching.ErrAugmentingPath), "got %v", err)
	require.Contains(s.T(), err.Error(), "5 edges")

	err = matching.Certify(g, []core.Pair{pair("L2", "R0")})
	require.True(s.T(), errors.Is(err, matching.ErrNotSubset), "got %v", err)

	err = matching.Certify(g, []core.Pair{pair("L0", "R1"), pair("L1", "R1")})
	require.True(s.T(), errors.Is(err, matching.ErrVertexReused), "got %v", err)

	err = matching.Certify(g, []core.Pair{{Left: 3, Right: 0}})
	require.True(s.T(), errors.Is(err, core.ErrVertexOutOfRange), "got %v", err)

	require.NoError(s.T(), matching.Certify(g, matching.Solve(g).Pairs))
}
