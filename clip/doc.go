// Package clip implements Boolean clipping of two simple, hole-free 2D
// polygons via the Greiner–Hormann algorithm: intersection, union, and
// the two asymmetric differences, producing zero or more output polygons.
//
// What
//
//   - BuildRing (Phase 0) turns a flat vertex array into an
//     intersection-augmented doubly-linked Ring over a caller-supplied
//     backing array of Node.
//   - FindIntersections (Phase 1) walks every original-edge pair between
//     two rings, inserts paired intersection nodes at the computed
//     crossings (preserving alpha order along each edge), and nudges any
//     vertex a crossing would otherwise coincide with.
//   - MarkEntryExit (Phase 2) classifies each intersection on each ring as
//     an entry or an exit, parametrised per ring by a Direction.
//   - EmitPolygons / EmitSinglePolygon (Phase 3) walk both rings, crossing
//     over at paired intersections, and write the resulting polygon(s)
//     into a caller-supplied vertex pool.
//
// Why
//
//   - The four Boolean operations (intersection, union, A\B, B\A) all
//     reduce to the same traversal, parametrised only by which ring's
//     entry/exit parity is inverted (see the Direction table below).
//
// Operation selection
//
//	DirA     | DirB     | Result
//	Forward  | Forward  | A ∩ B
//	Backward | Forward  | A \ B
//	Forward  | Backward | B \ A
//	Backward | Backward | A ∪ B
//
// Memory model
//
//   - Every Ring is built over a caller-supplied []Node backing array
//     sized generously enough to hold the original vertices plus every
//     intersection Phase 1 may insert; clip never allocates or resizes.
//   - Call the phases in order (0, 1, 2, 3) on a freshly built pair of
//     rings; Phase 3 is read-only with respect to topology but mutates
//     each Node's Processed flag.
//
// Degenerate input
//
//   - Phase 1 perturbs a vertex by a small, nondimensional displacement
//     whenever an intersection would otherwise land on it, so Phase 2's
//     entry/exit toggling never has to reason about a crossing coincident
//     with a vertex. Adversarial input can in principle loop during this
//     perturbation; callers are expected to supply generally well-formed
//     simple polygons (see Non-goals: self-intersecting polygons and
//     polygons with holes are not supported).
package clip
