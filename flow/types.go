// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for network construction and solving.
var (
	// ErrSourceNotFound is returned when the source index is outside the network.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the sink index is outside the network.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrBadCapacity is returned for a negative arc capacity.
	ErrBadCapacity = errors.New("flow: negative capacity")
)

// FlowOptions configures Dinic and EdmondsKarp.
//   - Ctx: cancellation; checked once per phase and once per augmentation.
//   - Logger: receives a Debug record per augmentation.
//   - LevelRebuildInterval: Dinic only; rebuild the level graph every N
//     augmentations (0 = only when the blocking flow is exhausted).
type FlowOptions struct {
	Ctx                  context.Context
	Logger               *zap.Logger
	LevelRebuildInterval int
}

// DefaultOptions returns FlowOptions with a background context, a no-op
// logger and no forced level rebuilds.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:    context.Background(),
		Logger: zap.NewNop(),
	}
}

// normalize fills zero-valued fields with defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}
