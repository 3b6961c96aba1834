// SPDX-License-Identifier: MIT
package clip

import (
	"testing"

	"github.com/katalvlaran/geokit/geom"
	"github.com/stretchr/testify/require"
)

func TestPointInPolygon_InsideAndOutside(t *testing.T) {
	t.Parallel()

	backing := make([]Node, 4)
	r := BuildRing(square(), backing) // unit square [0,1]x[0,1]

	require.True(t, pointInPolygon(&r, geom.Point{X: 0.5, Y: 0.5}))
	require.False(t, pointInPolygon(&r, geom.Point{X: 2, Y: 2}))
}

func TestMarkEntryExit_OverlappingSquares_AlternatesExit(t *testing.T) {
	t.Parallel()

	a := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	b := []geom.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}

	aBacking, bBacking := make([]Node, 8), make([]Node, 8)
	ringA := BuildRing(a, aBacking)
	ringB := BuildRing(b, bBacking)
	FindIntersections(&ringA, &ringB)
	MarkEntryExit(&ringA, &ringB, Forward, Forward)

	var exitCount, entryCount int
	for i := ringA.OriginalSize; i < ringA.Size; i++ {
		if ringA.Nodes[i].Flags&FlagExit != 0 {
			exitCount++
		} else {
			entryCount++
		}
	}
	require.Equal(t, 1, exitCount)
	require.Equal(t, 1, entryCount)
}
