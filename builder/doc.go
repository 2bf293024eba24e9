// Package builder generates deterministic bipartite edge lists for tests,
// benchmarks and examples of the matching package.
//
// Every generator is a Constructor; BuildEdges resolves the options and runs
// the constructors in order, concatenating their edges:
//
//	edges, err := builder.BuildEdges(
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.PlantedPerfect(100, 200), // maximum matching = 100
//	    builder.Star(5),                  // + 1
//	)
//
// Constructors never share vertices: each one numbers its left and right
// vertices after those of the constructors before it, so the maximum matching
// of a composition is the sum of the parts.
//
// Vertex IDs are "<leftPrefix><id>" and "<rightPrefix><id>" where id is
// rendered by the IDFn (decimal by default; see WithIDScheme, WithHexIDs,
// WithExcelColumnIDs) and prefixes default to "L"/"R" (WithPartitionPrefix).
//
// Topologies and their maximum matching size:
//
//	CompleteBipartite(n1, n2)  K_{n1,n2}                      min(n1, n2)
//	Star(n)                    one left vertex, n right        1
//	DisjointPairs(n)           L_i — R_i                       n
//	Staircase(n)               forces one (2n-1)-edge path     n
//	RandomBipartite(n1, n2, p) Bernoulli(p) per cross pair     —
//	PlantedPerfect(n, extra)   L_i — R_i + extra random edges  n
//	Lopsided(n, extra)         as above, right side 2n         n
//
// Randomness comes only from the configured *rand.Rand (WithSeed/WithRand);
// stochastic constructors without one fail with ErrNeedRandSource. For a
// fixed seed, option set and constructor order the output is identical.
//
// Errors (branch with errors.Is):
//
//	ErrTooFewVertices, ErrBadSize, ErrInvalidProbability, ErrNeedRandSource,
//	ErrConstructFailed.
package builder
