// SPDX-License-Identifier: MIT
// Package: geokit
//
// errors.go — sentinel errors for the geokit facade.
//
// Error policy (explicit and strict, matching the teacher's builder package):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • The core subpackages (geom/triangulate/clip) never return errors of
//     their own — they signal capacity exhaustion via truncated counts (or,
//     for clip.FindIntersections, a completeness bool) and a debug-build
//     assertion (internal/assert). This facade is the first layer that
//     turns "did it fit" into an error a caller can act on.
package geokit

import "errors"

// ErrTooFewVertices indicates fewer than 3 vertices were supplied to an
// operation that requires a polygon (triangulation, clipping).
var ErrTooFewVertices = errors.New("geokit: polygon needs at least 3 vertices")

// ErrIndexCapacity indicates the vertex pool Clip sized for itself was
// filled before the full result fit; Clip still returns the truncated
// polygons it managed to write alongside this error. Triangulate sizes its
// buffer to the worst case and never returns it.
var ErrIndexCapacity = errors.New("geokit: output buffer too small, result truncated")

// ErrRingCapacity indicates a clip Ring's backing buffer ran out of room
// for intersection nodes before Phase 1 finished; Clip still returns
// whatever polygons it managed to emit from the crossings found so far.
var ErrRingCapacity = errors.New("geokit: ring buffer too small for intersections")
