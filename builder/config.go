// SPDX-License-Identifier: MIT
// Package: bimatch/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn       = DefaultIDFn  ("0","1","2",...)
//   • rng        = nil          (pure/deterministic unless seeded)
//   • left/right = "L" / "R"
//   • shuffle    = false        (edges in emission order)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: partition-local index -> ID suffix.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Partition ID prefixes. Empty → defaults resolved below.
	leftPrefix  string
	rightPrefix string

	// Permute the final edge list with rng.
	shuffle bool
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// leftID renders the global left index i.
func (c builderConfig) leftID(i int) string {
	return c.leftPrefix + c.idFn(i)
}

// rightID renders the global right index j.
func (c builderConfig) rightID(j int) string {
	return c.rightPrefix + c.idFn(j)
}
