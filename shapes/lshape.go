// SPDX-License-Identifier: MIT
// Package: geokit/shapes
//
// lshape.go — LShape generator: the six-vertex concave "L" formed by
// removing a size x size corner notch from a side x side square. It is a
// known-area concave fixture: an L is exactly what one square minus an
// overlapping, diagonally offset square of the same size leaves.
package shapes

import "github.com/katalvlaran/geokit/geom"

const lShapeVertexCount = 6

// LShape writes a side x side square with a size x size notch removed from
// its top-right corner, centered at cfg.center, vertices counter-clockwise
// starting at the bottom-left corner. size must be in (0, side).
func LShape(side, size float32, out []geom.Point, opts ...Option) (int, error) {
	if side <= 0 || size <= 0 || size >= side {
		return 0, ErrTooFewSides
	}
	if len(out) < lShapeVertexCount {
		return 0, ErrBufferCapacity
	}

	cfg := newConfig(1, opts...)
	h := side / 2

	corners := [lShapeVertexCount]geom.Point{
		{X: -h, Y: -h},
		{X: h, Y: -h},
		{X: h, Y: h - size},
		{X: h - size, Y: h - size},
		{X: h - size, Y: h},
		{X: -h, Y: h},
	}
	for i, c := range corners {
		out[i] = cfg.rotate(c).Add(cfg.center)
	}

	return lShapeVertexCount, nil
}
