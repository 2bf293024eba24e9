package matching_test

import (
	"os"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bimatch/core"
)

// scenario is one entry of testdata/scenarios.yaml.
type scenario struct {
	Name   string  `yaml:"name"`
	Edges  [][]int `yaml:"edges"`
	Size   int     `yaml:"size"`
	Unique [][]int `yaml:"unique"`
}

// loadScenarios decodes the fixture file.
func loadScenarios(t *testing.T) []scenario {
	t.Helper()
	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var out []scenario
	require.NoError(t, yaml.Unmarshal(raw, &out))
	require.NotEmpty(t, out)

	return out
}

// intEdges converts [[l, r], ...] fixture rows to edges.
func intEdges(t *testing.T, rows [][]int) []core.Edge[int, int] {
	t.Helper()
	out := make([]core.Edge[int, int], 0, len(rows))
	for _, row := range rows {
		require.Len(t, row, 2, "edge rows are [left, right]")
		out = append(out, core.NewEdge(row[0], row[1]))
	}

	return out
}

// sortedInt orders int edges by (left, right) for comparison.
func sortedInt(edges []core.Edge[int, int]) []core.Edge[int, int] {
	out := append([]core.Edge[int, int](nil), edges...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Left != out[j].Left {
			return out[i].Left < out[j].Left
		}
		return out[i].Right < out[j].Right
	})

	return out
}

// requireSameEdges fails with a cmp diff when the edge sets differ.
func requireSameEdges(t *testing.T, want, got []core.Edge[int, int]) {
	t.Helper()
	if diff := cmp.Diff(sortedInt(want), sortedInt(got)); diff != "" {
		t.Fatalf("matching mismatch (-want +got):\n%s", diff)
	}
}
