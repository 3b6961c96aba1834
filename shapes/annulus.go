// SPDX-License-Identifier: MIT
// Package: geokit/shapes
//
// annulus.go — Annulus generator: a single simple polygon that zigzags
// between an outer and inner radius closely enough to read, at typical
// point counts, as an annulus (ring) outline rather than a star. Unlike
// Star (large outer/inner gap, meant to be seen as sharp points), Annulus
// is meant to be triangulated or clipped as a dense, roughly-circular ring
// shape — this kernel has no hole-in-a-polygon representation, so a true
// annulus (two disjoint contours) is out of reach; this is the single-
// contour approximation of one.
package shapes

import (
	"math"

	"github.com/katalvlaran/geokit/geom"
)

// Annulus writes a ring-of-points polygon into out: cfg.pointCount vertex
// pairs (default defaultPointCount, override with WithPointCount)
// alternating between outerRadius and innerRadius as the angle sweeps a
// full turn, centered at cfg.center. innerRadius must be in
// (0, outerRadius); len(out) must be at least 2*cfg.pointCount.
func Annulus(outerRadius, innerRadius float32, out []geom.Point, opts ...Option) (int, error) {
	if innerRadius <= 0 || innerRadius >= outerRadius {
		return 0, ErrTooFewSides
	}

	cfg := newConfig(outerRadius, opts...)
	points := cfg.pointCount
	if points < minRegularSides {
		return 0, ErrTooFewSides
	}

	n := 2 * points
	if len(out) < n {
		return 0, ErrBufferCapacity
	}

	step := math.Pi / float64(points)
	for i := 0; i < n; i++ {
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		theta := step * float64(i)
		p := geom.Point{
			X: r * float32(math.Cos(theta)),
			Y: r * float32(math.Sin(theta)),
		}
		out[i] = cfg.rotate(p).Add(cfg.center)
	}

	return n, nil
}
