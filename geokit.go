// SPDX-License-Identifier: MIT
// Package: geokit
//
// geokit.go — the root facade: owns buffer sizing and allocation so callers
// who do not need the zero-allocation core can work with plain slices and
// errors instead of scratch buffers and debug assertions.
//
// AI-Hints:
//   - Triangulate and Clip allocate on every call; for a hot loop, drop down
//     to triangulate.EarClip / the clip package directly and reuse buffers.
//   - Clip's ring capacity heuristic is generous but not proven sufficient
//     for adversarial input; ErrRingCapacity signals it was not enough.
package geokit

import (
	"github.com/katalvlaran/geokit/clip"
	"github.com/katalvlaran/geokit/geom"
	"github.com/katalvlaran/geokit/triangulate"
)

// ringHeadroomFactor bounds how much intersection-node headroom Clip
// reserves per ring, relative to the input vertex count. Each edge of a
// convex polygon crosses another convex polygon at most twice; this is comfortably generous
// for the concave, non-adversarial inputs this facade targets, not a proof
// of sufficiency (see ErrRingCapacity).
const ringHeadroomFactor = 4

// BoolOp selects one of the four Greiner–Hormann Boolean results, per the
// clip package's Direction-pair table.
type BoolOp int

const (
	// Intersection is A ∩ B.
	Intersection BoolOp = iota
	// Union is A ∪ B.
	Union
	// Difference is A \ B.
	Difference
	// ReverseDifference is B \ A.
	ReverseDifference
)

func (op BoolOp) directions() (a, b clip.Direction) {
	switch op {
	case Union:
		return clip.Backward, clip.Backward
	case Difference:
		return clip.Backward, clip.Forward
	case ReverseDifference:
		return clip.Forward, clip.Backward
	default: // Intersection
		return clip.Forward, clip.Forward
	}
}

// Triangulate ear-clips a simple polygon and returns its triangle index
// stream. Indices are 0-based into vertices.
//
// Triangulate sizes its own output buffer to the worst case (3*(n-2)
// indices), so it never truncates for capacity reasons; a result shorter
// than that means EarClip's stall counter aborted on non-simple input.
// Triangulate never returns ErrIndexCapacity.
func Triangulate(vertices []geom.Point, cw bool) ([]int, error) {
	n := len(vertices)
	if n < 3 {
		return nil, ErrTooFewVertices
	}

	scratch := make([]int, n)
	maxIndices := 3 * (n - 2)
	out := make([]int, maxIndices)

	written := triangulate.EarClip(vertices, cw, scratch, 0, triangulate.CCW, out)

	return out[:written], nil
}

// Clip computes one of the four Greiner–Hormann Boolean results between
// two simple polygons a and b, returning the result as a slice of output
// polygons (each a slice of vertices in ring order). An empty (non-nil)
// result slice means the operation produced no polygon.
func Clip(a, b []geom.Point, op BoolOp) ([][]geom.Point, error) {
	if len(a) < 3 || len(b) < 3 {
		return nil, ErrTooFewVertices
	}

	dirA, dirB := op.directions()

	aCap := len(a) * ringHeadroomFactor
	bCap := len(b) * ringHeadroomFactor
	aBacking := make([]clip.Node, aCap)
	bBacking := make([]clip.Node, bCap)

	ringA := clip.BuildRing(a, aBacking)
	ringB := clip.BuildRing(b, bBacking)

	complete := clip.FindIntersections(&ringA, &ringB)
	clip.MarkEntryExit(&ringA, &ringB, dirA, dirB)

	maxPolygons := ringA.Size + ringB.Size + 1
	maxVertices := ringA.Size + ringB.Size
	entries := make([]clip.PolygonEntry, maxPolygons)
	pool := make([]geom.Point, maxVertices)

	polyCount, vertexCount := clip.EmitPolygons(&ringA, &ringB, entries, pool)

	result := make([][]geom.Point, polyCount)
	for i := 0; i < polyCount; i++ {
		e := entries[i]
		result[i] = pool[e.Offset : e.Offset+e.Count]
	}

	if !complete {
		// ringHeadroomFactor underestimated the intersection count: Phase 1
		// stopped early rather than writing past either ring's backing array,
		// so result reflects only the crossings found before it ran out of room.
		return result, ErrRingCapacity
	}

	if vertexCount >= maxVertices {
		// pool was sized generously from the ring sizes Phase 1 settled on,
		// so filling it exactly is the only truncation signal available here.
		return result, ErrIndexCapacity
	}

	return result, nil
}
