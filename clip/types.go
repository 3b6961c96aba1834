package clip

import "github.com/katalvlaran/geokit/geom"

// Flags is a bitset of per-node state used by Phases 1 through 3.
type Flags uint8

const (
	// FlagIntersection marks a node created by Phase 1 at an edge-edge
	// crossing, as opposed to an original polygon vertex.
	FlagIntersection Flags = 1 << iota
	// FlagExit marks an intersection node as the point where a traversal
	// leaves the other polygon, set by Phase 2. Unset means entry.
	FlagExit
	// FlagProcessed marks a node Phase 3 has already emitted or crossed
	// over, so the outer scan and inner walk never revisit it.
	FlagProcessed
)

// Node is a single ring vertex: either one of the polygon's original
// vertices, or an intersection Phase 1 inserted between two of them.
//
// Next and Prev are physical indices into the owning Ring's node array,
// forming a circular doubly-linked list; Neighbor is a physical index
// into the *other* ring's node array and is only meaningful when
// FlagIntersection is set, identifying this node's paired twin at the
// same position. Alpha is the parametric position (0..1) along the
// original edge this node was inserted on; it too is only meaningful for
// intersection nodes.
type Node struct {
	Pos      geom.Point
	Next     int
	Prev     int
	Neighbor int
	Alpha    float32
	Flags    Flags
}

// Ring is a contiguous node array representing one polygon's vertices plus
// any intersection nodes Phase 1 has inserted.
//
// Nodes at indices [0, OriginalSize) are always the original polygon
// vertices in input order, at stable physical indices; physical index 0
// is always an original vertex and is used by Phase 3 as a ring-walk
// termination sentinel. Intersection nodes occupy [OriginalSize, Size),
// appended in insertion order, also at stable physical indices once
// assigned. Next/Prev form a single circular list over all live nodes in
// geometric walk order, which need not match physical array order.
//
// Nodes is the caller-supplied backing array; its length is the Ring's
// Capacity. Ring never reallocates: Capacity must exceed the original
// vertex count by enough headroom to hold every intersection Phase 1 may
// insert, or FindIntersections stops early and returns false (a debug
// build also asserts at the point of exhaustion; see internal/assert).
type Ring struct {
	Nodes        []Node
	OriginalSize int
	Size         int
}

// Capacity returns the number of nodes Nodes can hold.
func (r *Ring) Capacity() int {
	return len(r.Nodes)
}

// Direction selects which way a ring is walked when Phase 2 toggles
// inside/outside parity at each intersection; see the package doc's
// operation-selection table.
type Direction int

const (
	// Forward uses the ring's natural inside/outside classification.
	Forward Direction = iota
	// Backward inverts it.
	Backward
)

// PolygonEntry is one emitted polygon: a half-open window [Offset,
// Offset+Count) into the shared vertex pool Phase 3 was given.
type PolygonEntry struct {
	Offset int
	Count  int
}
