// SPDX-License-Identifier: MIT
// Package: geokit/shapes
//
// Package shapes generates canonical simple polygons directly into
// caller-supplied vertex buffers, in the same zero-allocation style as
// triangulate and clip. It provides known-good, known-orientation polygon
// fixtures; the triangulate and clip tests in this module do not use it
// and write their vertex lists out by hand.
//
// Every generator returns the number of vertices written and takes a
// buffer, never allocating one itself; Option values customize center,
// radius, and rotation the way builder.BuilderOption customizes graph
// construction in the teacher library this package is modeled on.
//
// Five generators are provided: RegularPolygon, Rectangle/Square, Star,
// LShape, and Annulus (the ring-of-points generator, WithPointCount-sized).
package shapes
