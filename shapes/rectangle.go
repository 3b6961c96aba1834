// SPDX-License-Identifier: MIT
// Package: geokit/shapes
//
// rectangle.go — Rectangle and Square generators.
package shapes

import "github.com/katalvlaran/geokit/geom"

const rectangleVertexCount = 4

// Rectangle writes a width x height rectangle centered at cfg.center
// (default origin), vertices in counter-clockwise order starting at the
// bottom-left corner, into out. WithRadius has no effect on Rectangle; use
// width and height directly. Panics are limited to option constructors, so
// non-positive width/height simply return ErrTooFewSides.
func Rectangle(width, height float32, out []geom.Point, opts ...Option) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, ErrTooFewSides
	}
	if len(out) < rectangleVertexCount {
		return 0, ErrBufferCapacity
	}

	cfg := newConfig(1, opts...)
	hw, hh := width/2, height/2

	corners := [rectangleVertexCount]geom.Point{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	for i, c := range corners {
		out[i] = cfg.rotate(c).Add(cfg.center)
	}

	return rectangleVertexCount, nil
}

// Square is Rectangle with equal sides.
func Square(side float32, out []geom.Point, opts ...Option) (int, error) {
	return Rectangle(side, side, out, opts...)
}
