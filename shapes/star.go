// SPDX-License-Identifier: MIT
// Package: geokit/shapes
//
// star.go — Star generator: a concave polygon alternating outer and inner
// radii, useful as a non-convex ear-clip fixture (a regular polygon alone
// never exercises the reflex-vertex branch of the ear test).
package shapes

import (
	"math"

	"github.com/katalvlaran/geokit/geom"
)

const minStarPoints = 3

// Star writes a 2*points-vertex star (points outer tips, points inner
// notches, alternating) into out, starting at the outer tip on angle 0.
// outerRadius and innerRadius set the two radii directly; innerRadius
// must be in (0, outerRadius). WithRadius has no effect on Star.
func Star(points int, outerRadius, innerRadius float32, out []geom.Point, opts ...Option) (int, error) {
	if points < minStarPoints {
		return 0, ErrTooFewSides
	}
	if innerRadius <= 0 || innerRadius >= outerRadius {
		return 0, ErrTooFewSides
	}
	n := 2 * points
	if len(out) < n {
		return 0, ErrBufferCapacity
	}

	cfg := newConfig(outerRadius, opts...)
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
