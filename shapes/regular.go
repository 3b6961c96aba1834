// SPDX-License-Identifier: MIT
// Package: geokit/shapes
//
// regular.go — RegularPolygon(n) generator.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewSides).
//   • Vertices are emitted in counter-clockwise order starting from angle
//     0 (before rotation), at radius cfg.radius from cfg.center.
//   • len(out) ≥ n (else ErrBufferCapacity, nothing written).
//
// Complexity: O(n) time, O(1) extra space.
package shapes

import (
	"math"

	"github.com/katalvlaran/geokit/geom"
)

const minRegularSides = 3

// RegularPolygon writes an n-gon inscribed in a circle of radius
// cfg.radius (default 1) centered at cfg.center (default origin) into out,
// returning the vertex count written.
func RegularPolygon(n int, out []geom.Point, opts ...Option) (int, error) {
	if n < minRegularSides {
		return 0, ErrTooFewSides
	}
	if len(out) < n {
		return 0, ErrBufferCapacity
	}

	cfg := newConfig(1, opts...)
	step := 2 * math.Pi / float64(n)

	for i := 0; i < n; i++ {
		theta := step * float64(i)
		p := geom.Point{
			X: cfg.radius * float32(math.Cos(theta)),
			Y: cfg.radius * float32(math.Sin(theta)),
		}
		out[i] = cfg.rotate(p).Add(cfg.center)
	}

	return n, nil
}
