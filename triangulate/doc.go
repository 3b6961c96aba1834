// Package triangulate ear-clips a simple, hole-free polygon into a
// triangle index stream suitable for direct consumption by a graphics
// index buffer.
//
// What
//
//   - EarClip repeatedly finds an "ear" — three consecutive live vertices
//     whose triangle matches the polygon's own orientation and contains no
//     other live vertex — emits its three indices, and removes the middle
//     vertex from the live set, until only two vertices remain.
//   - All working memory (the rotating query window over a scratch index
//     list, the output index buffer) is caller-supplied; EarClip never
//     allocates.
//
// Why
//
//   - A triangle index stream is what a GPU index buffer wants directly:
//     no further tessellation step is needed downstream.
//
// Complexity (n = len(vertices))
//
//   - Time:   O(n^3) worst case (ear test is O(n) per candidate, up to
//     O(n) candidates per ear, n-2 ears).
//   - Memory: O(1) beyond the caller-supplied scratch and output buffers.
//
// Degenerate input
//
//   - EarClip never panics on a non-simple or pathological polygon: a
//     stall counter aborts the loop after 2*size consecutive non-ear
//     iterations, and the indices emitted so far are returned (§ Non-goals:
//     self-intersecting and holed polygons are not validated against).
//   - If out is too small for the full triangle count, EarClip truncates
//     to whole triangles and returns the count actually written.
package triangulate
