package clip

import (
	"github.com/katalvlaran/geokit/geom"
	"github.com/katalvlaran/geokit/internal/assert"
)

// EmitPolygons is Phase 3: it walks a and b jointly, crossing between
// rings at paired intersection nodes, writing each resulting polygon's
// vertices into pool and its [Offset, Offset+Count) window into polygons. It
// returns the number of polygons emitted and the total vertices consumed.
//
// If no unprocessed intersection is ever found, EmitPolygons falls back
// to the containment case: if a's first vertex lies inside b, a's
// original vertices are emitted as-is; else if b's first vertex lies
// inside a, b's are; else nothing is emitted. This matches the source
// behavior for the intersection operation; see DESIGN.md for why it is
// also used, deliberately, for the other three operations.
//
// If appending a vertex would overflow pool, or opening a polygon would
// overflow polygons, EmitPolygons truncates: it finalizes the counts
// written so far and returns. No partially emitted polygon is rolled back.
func EmitPolygons(a, b *Ring, polygons []PolygonEntry, pool []geom.Point) (polygonCount, vertexCount int) {
	if a.Size < 1 {
		return 0, 0
	}

	curRing, otherRing := a, b
	currentPoly := -1
	put := 0
	hasIntersections := false

	closeCurrent := func() {
		if currentPoly >= 0 && currentPoly < polygonCount {
			polygons[currentPoly].Count = put - polygons[currentPoly].Offset
		}
	}

	i := curRing.Nodes[0].Next
	for i != 0 {
		current := &curRing.Nodes[i]

		if current.Flags&(FlagIntersection|FlagProcessed) == FlagIntersection {
			current.Flags |= FlagProcessed
			hasIntersections = true

			closeCurrent()
			if polygonCount+1 > len(polygons) {
				assert.That(false, "polygons has no room for another polygon")
				return polygonCount, put
			}
			currentPoly = polygonCount
			polygonCount++
			polygons[currentPoly] = PolygonEntry{Offset: put}

			start := i
			startRing := curRing
			for {
				if current.Flags&FlagExit != 0 {
					for {
						i = current.Prev
						current = &curRing.Nodes[i]
						current.Flags |= FlagProcessed
						if put >= len(pool) {
							assert.That(false, "pool has no room for another vertex")
							closeCurrent()
							return polygonCount, put
						}
						pool[put] = current.Pos
						put++
						if current.Flags&FlagIntersection != 0 {
							break
						}
					}
				} else {
					for {
						i = current.Next
						current = &curRing.Nodes[i]
						current.Flags |= FlagProcessed
						if put >= len(pool) {
							assert.That(false, "pool has no room for another vertex")
							closeCurrent()
							return polygonCount, put
						}
						pool[put] = current.Pos
						put++
						if current.Flags&FlagIntersection != 0 {
							break
						}
					}
				}

				i = current.Neighbor
				curRing, otherRing = otherRing, curRing
				current = &curRing.Nodes[i]
				current.Flags |= FlagProcessed

				if i == start && curRing == startRing {
					break
				}
			}
		}

		i = current.Next
	}

	if !hasIntersections {
		if pointInPolygon(b, a.Nodes[0].Pos) {
			polygonCount, put = emitOriginal(a, polygons, polygonCount, pool, put)
		} else if b.Size > 0 && pointInPolygon(a, b.Nodes[0].Pos) {
			polygonCount, put = emitOriginal(b, polygons, polygonCount, pool, put)
		}
	}

	currentPoly = polygonCount - 1
	closeCurrent()

	return polygonCount, put
}

// emitOriginal appends ring's original vertices (capped by remaining pool
// room) as a single new polygon, returning the updated polygon and vertex
// counts.
func emitOriginal(ring *Ring, polygons []PolygonEntry, polygonCount int, pool []geom.Point, put int) (int, int) {
	if polygonCount+1 > len(polygons) {
		assert.That(false, "polygons has no room for another polygon")
		return polygonCount, put
	}

	n := ring.OriginalSize
	if room := len(pool) - put; n > room {
		assert.That(false, "pool has no room for every original vertex")
		n = room
	}
	for j := 0; j < n; j++ {
		pool[put+j] = ring.Nodes[j].Pos
	}
	polygons[polygonCount] = PolygonEntry{Offset: put, Count: n}
	put += n
	polygonCount++

	return polygonCount, put
}

// EmitSinglePolygon is the convenience wrapper for callers who only expect
// a single output polygon; it invokes EmitPolygons with room for exactly
// one and returns that polygon's vertex count.
func EmitSinglePolygon(a, b *Ring, pool []geom.Point) int {
	var entries [1]PolygonEntry
	EmitPolygons(a, b, entries[:], pool)
	return entries[0].Count
}
