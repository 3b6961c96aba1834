package clip

import (
	"github.com/katalvlaran/geokit/geom"
	"github.com/katalvlaran/geokit/internal/assert"
)

// BuildRing is Phase 0: it converts a flat vertex array into a Ring over
// the caller-supplied backing array, with OriginalSize and Size both set
// to len(vertices) and Next/Prev forming the polygon's natural circular
// order. backing must have length >= len(vertices); the surplus capacity
// is reserved for the intersection nodes Phase 1 may later append.
func BuildRing(vertices []geom.Point, backing []Node) Ring {
	n := len(vertices)
	assert.That(len(backing) >= n, "backing must be at least len(vertices)")

	for i := 0; i < n; i++ {
		backing[i] = Node{
			Pos:  vertices[i],
			Next: (i + 1) % n,
			Prev: (i - 1 + n) % n,
		}
	}

	return Ring{Nodes: backing, OriginalSize: n, Size: n}
}

// insertAfter allocates the next free physical slot and links it into the
// ring immediately after anchor, returning its index and true. If the ring
// is already at Capacity, it writes nothing and returns (0, false): the
// geokitdebug assertion still fires for visibility, but the bounds check
// itself is unconditional, so a release build truncates instead of writing
// past Nodes and panicking.
func (r *Ring) insertAfter(anchor int) (int, bool) {
	assert.That(r.Size < r.Capacity(), "ring has no room for another node")
	if r.Size >= r.Capacity() {
		return 0, false
	}

	idx := r.Size
	oldNext := r.Nodes[anchor].Next

	r.Nodes[idx] = Node{Prev: anchor, Next: oldNext}
	r.Nodes[oldNext].Prev = idx
	r.Nodes[anchor].Next = idx
	r.Size++

	return idx, true
}

// findInsertAnchor walks backward from start across already-inserted
// intersection nodes whose Alpha exceeds alpha, returning the last node
// (an intersection or the original edge start) at which a new
// intersection with this alpha should be inserted to preserve strictly
// increasing alpha order along the edge.
func findInsertAnchor(r *Ring, start int, alpha float32) int {
	at := start
	for r.Nodes[at].Flags&FlagIntersection != 0 && r.Nodes[at].Alpha > alpha {
		at = r.Nodes[at].Prev
	}
	return at
}
