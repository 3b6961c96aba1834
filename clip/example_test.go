// SPDX-License-Identifier: MIT
package clip_test

import (
	"fmt"

	"github.com/katalvlaran/geokit/clip"
	"github.com/katalvlaran/geokit/geom"
)

// ExampleEmitPolygons intersects two overlapping unit-scale squares and
// prints the single resulting polygon's vertex count and area.
func ExampleEmitPolygons() {
	a := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}, {X: 0, Y: 2}}
	b := []geom.Point{{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}}

	aBacking, bBacking := make([]clip.Node, 8), make([]clip.Node, 8)
	ringA := clip.BuildRing(a, aBacking)
	ringB := clip.BuildRing(b, bBacking)

	clip.FindIntersections(&ringA, &ringB)
	clip.MarkEntryExit(&ringA, &ringB, clip.Forward, clip.Forward)

	var entries [2]clip.PolygonEntry
	pool := make([]geom.Point, 16)
	polyCount, _ := clip.EmitPolygons(&ringA, &ringB, entries[:], pool)

	vs := pool[entries[0].Offset : entries[0].Offset+entries[0].Count]
	var area float32
	n := len(vs)
	last := n - 1
	for i := 0; i < n; i++ {
		area += vs[last].X*vs[i].Y - vs[last].Y*vs[i].X
		last = i
	}
	if area < 0 {
		area = -area
	}
	area /= 2

	fmt.Printf("%d %.1f\n", polyCount, area)
	// Output:
	// 1 1.0
}
