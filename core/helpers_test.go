// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"github.com/katalvlaran/bimatch/core"
)

// Common vertex IDs used across core tests.
const (
	WorkerA = "A"
	WorkerB = "B"
	WorkerC = "C"

	ShiftX = "X"
	ShiftY = "Y"
	ShiftZ = "Z"
)

// triangleEdges is a small fixture with one duplicate and a repeated left.
//
//	A ─ X, A ─ Y, B ─ X, A ─ X (dup), C ─ Z
func triangleEdges() []core.Edge[string, string] {
	return []core.Edge[string, string]{
		core.NewEdge(WorkerA, ShiftX),
		core.NewEdge(WorkerA, ShiftY),
		core.NewEdge(WorkerB, ShiftX),
		core.NewEdge(WorkerA, ShiftX),
		core.NewEdge(WorkerC, ShiftZ),
	}
}
