// SPDX-License-Identifier: MIT
// Package shapes_test contains unit tests for the canonical polygon generators.
package shapes_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/geokit/geom"
	"github.com/katalvlaran/geokit/shapes"
	"github.com/stretchr/testify/require"
)

func polygonArea(vs []geom.Point) float32 {
	var sum float32
	n := len(vs)
	last := n - 1
	for i := 0; i < n; i++ {
		sum += vs[last].X*vs[i].Y - vs[last].Y*vs[i].X
		last = i
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

func TestRegularPolygon_VertexCountAndRadius(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 6)
	n, err := shapes.RegularPolygon(6, out, shapes.WithRadius(2))
	require.NoError(t, err)
	require.Equal(t, 6, n)

	for _, p := range out {
		r := math.Hypot(float64(p.X), float64(p.Y))
		require.InDelta(t, 2.0, r, 1e-4)
	}
}

func TestRegularPolygon_TooFewSides(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 2)
	_, err := shapes.RegularPolygon(2, out)
	require.ErrorIs(t, err, shapes.ErrTooFewSides)
}

func TestRegularPolygon_BufferTooSmall(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 3)
	_, err := shapes.RegularPolygon(8, out)
	require.ErrorIs(t, err, shapes.ErrBufferCapacity)
}

func TestRegularPolygon_CenterAndRotationTranslate(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 4)
	n, err := shapes.RegularPolygon(4, out, shapes.WithRadius(1), shapes.WithRotation(0.3), shapes.WithCenter(geom.Point{X: 5, Y: -5}))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	var cx, cy float32
	for _, p := range out {
		cx += p.X
		cy += p.Y
	}
	cx /= float32(n)
	cy /= float32(n)
	require.InDelta(t, 5.0, cx, 1e-4)
	require.InDelta(t, -5.0, cy, 1e-4)
}

func TestRectangle_Area(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 4)
	n, err := shapes.Rectangle(2, 3, out)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.InDelta(t, 6.0, polygonArea(out), 1e-5)
}

func TestSquare_IsSpecialRectangle(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 4)
	n, err := shapes.Square(2, out)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.InDelta(t, 4.0, polygonArea(out), 1e-5)
}

func TestRectangle_InvalidDimensions(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 4)
	_, err := shapes.Rectangle(0, 3, out)
	require.ErrorIs(t, err, shapes.ErrTooFewSides)
}

func TestStar_VertexCount(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 10)
	n, err := shapes.Star(5, 2, 1, out)
	require.NoError(t, err)
	require.Equal(t, 10, n)
}

func TestStar_InvalidInnerRadius(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 10)
	_, err := shapes.Star(5, 1, 2, out)
	require.ErrorIs(t, err, shapes.ErrTooFewSides)
}

func TestLShape_Area(t *testing.T) {
	t.Parallel()

	// A 2x2 square with a 1x1 notch removed: area 3.
	out := make([]geom.Point, 6)
	n, err := shapes.LShape(2, 1, out)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	require.InDelta(t, 3.0, polygonArea(out), 1e-5)
}

func TestLShape_NotchMustBeSmallerThanSide(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 6)
	_, err := shapes.LShape(2, 2, out)
	require.ErrorIs(t, err, shapes.ErrTooFewSides)
}

func TestAnnulus_DefaultPointCount(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 64)
	n, err := shapes.Annulus(2, 1, out)
	require.NoError(t, err)
	require.Equal(t, 64, n) // 2 * defaultPointCount(32)

	for i, p := range out {
		r := math.Hypot(float64(p.X), float64(p.Y))
		if i%2 == 0 {
			require.InDelta(t, 2.0, r, 1e-4)
		} else {
			require.InDelta(t, 1.0, r, 1e-4)
		}
	}
}

func TestAnnulus_WithPointCount(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 16)
	n, err := shapes.Annulus(3, 2, out, shapes.WithPointCount(8))
	require.NoError(t, err)
	require.Equal(t, 16, n)
}

func TestAnnulus_InvalidInnerRadius(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 16)
	_, err := shapes.Annulus(1, 2, out)
	require.ErrorIs(t, err, shapes.ErrTooFewSides)
}

func TestAnnulus_BufferTooSmall(t *testing.T) {
	t.Parallel()

	out := make([]geom.Point, 4)
	_, err := shapes.Annulus(2, 1, out, shapes.WithPointCount(8))
	require.ErrorIs(t, err, shapes.ErrBufferCapacity)
}
