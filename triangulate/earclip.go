package triangulate

import (
	"github.com/katalvlaran/geokit/geom"
	"github.com/katalvlaran/geokit/internal/assert"
)

// EarClip triangulates the simple polygon vertices by ear clipping,
// writing triangle indices (each offset by begin) into out and returning
// the number of indices written (always a multiple of 3).
//
// cw is the orientation of vertices (see geom.IsClockwise); emit selects
// the winding of emitted triangles. scratch must have length >= len(vertices)
// and is used as the rotating query window's backing array; EarClip
// overwrites it freely and makes no claim about its contents afterward.
//
// If out is too small to hold every triangle, EarClip emits as many whole
// triangles as fit and returns that (truncated) count. If vertices does not
// describe a simple polygon, an internal stall counter aborts the loop
// early and EarClip returns whatever was emitted before the abort.
func EarClip(vertices []geom.Point, cw bool, scratch []int, begin int, emit Winding, out []int) int {
	n := len(vertices)
	if n < 3 {
		return 0
	}
	assert.That(len(scratch) >= n, "scratch must be at least len(vertices)")

	size := n
	for i := 0; i < size; i++ {
		scratch[i] = i
	}

	written := 0
	a, b, current := 0, 1, 2
	stall := 0

	for size > 2 {
		c := current
		if isEar(vertices, scratch[:size], a, b, c, cw) {
			if written+3 > len(out) {
				assert.That(false, "out has no room for another triangle")
				break
			}
			ia, ib, ic := scratch[a], scratch[b], scratch[c]
			if emit.isCW() == cw {
				out[written], out[written+1], out[written+2] = ia+begin, ib+begin, ic+begin
			} else {
				out[written], out[written+1], out[written+2] = ia+begin, ic+begin, ib+begin
			}
			written += 3

			copy(scratch[b:size-1], scratch[b+1:size])
			size--
			stall = 0

			current = a
			if current >= size {
				current -= size
			}
			if current >= 2 {
				a, b = current-2, current-1
			} else if current >= 1 {
				a, b = size-(2-current), current-1
			} else {
				a, b = size-2, size-1
			}
		} else {
			a = b
			b = current
			current++
			if current >= size {
				current = 0
				a, b = size-2, size-1
			}
			stall++
			if stall > 2*size {
				break
			}
		}
	}

	return written
}

// isEar reports whether the triangle (window[a], window[b], window[c])
// is an ear: it must match the polygon's own orientation, and no other
// live vertex (any index in window besides positions a, b, c) may lie
// inside it.
func isEar(vertices []geom.Point, window []int, a, b, c int, cw bool) bool {
	va, vb, vc := vertices[window[a]], vertices[window[b]], vertices[window[c]]
	if triangleIsClockwise(va, vb, vc) != cw {
		return false
	}
	for i, idx := range window {
		if i == a || i == b || i == c {
			continue
		}
		if pointInTriangle(va, vb, vc, vertices[idx]) {
			return false
		}
	}
	return true
}

func triangleIsClockwise(a, b, c geom.Point) bool {
	return b.Sub(a).Cross(c.Sub(a)) >= 0
}

// pointInTriangle tests v against triangle (a, b, c) via barycentric
// coordinates projected onto the two edge vectors from a. The triangle is
// closed: v on an edge or vertex counts as inside.
func pointInTriangle(a, b, c, v geom.Point) bool {
	bv, cv, pv := b.Sub(a), c.Sub(a), v.Sub(a)

	bc := bv.Dot(cv)
	vc := pv.Dot(cv)
	vb := pv.Dot(bv)
	cc := cv.Dot(cv)
	bb := bv.Dot(bv)

	denom := bb*cc - bc*bc
	if denom == 0 {
		return false
	}
	invDenom := 1 / denom
	r := (cc*vb - bc*vc) * invDenom
	s := (bb*vc - bc*vb) * invDenom

	return r >= 0 && s >= 0 && r+s <= 1
}
